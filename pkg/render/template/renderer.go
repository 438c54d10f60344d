package template

import (
	"io"
)

// TemplateRenderer is the seam the page renderer and the recommender prompt
// builder rely on. Implementations render named templates from their loader
// or raw template strings.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
