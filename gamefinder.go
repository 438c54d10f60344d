// Package gamefinder renders the game finder page and wires a controller to
// it. Front ends that only need a working page start here; the packages under
// pkg/ expose each piece separately.
package gamefinder

import (
	"context"
	"fmt"

	"github.com/goliatone/go-gamefinder/pkg/finder"
	"github.com/goliatone/go-gamefinder/pkg/model"
	"github.com/goliatone/go-gamefinder/pkg/renderers/vanilla"
)

// SearchFilters aliases the submission payload.
type SearchFilters = model.SearchFilters

// GameResult aliases one search hit.
type GameResult = model.GameResult

// PageData aliases the page copy and element configuration.
type PageData = vanilla.PageData

// RenderPage renders the finder page HTML with the default renderer.
func RenderPage(ctx context.Context, page PageData, opts ...vanilla.Option) ([]byte, error) {
	renderer, err := vanilla.New(opts...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, page)
}

// NewController renders page, resolves its elements and returns an
// initialised controller bound to them.
func NewController(ctx context.Context, page PageData, fns ...finder.OptionFn) (*finder.Controller, error) {
	renderer, err := vanilla.New(vanilla.WithStylesheet(""))
	if err != nil {
		return nil, fmt.Errorf("gamefinder: renderer: %w", err)
	}
	doc, err := renderer.Document(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("gamefinder: render page: %w", err)
	}
	elements, err := finder.ElementsFromDocument(doc, page.WithDefaults().IDs)
	if err != nil {
		return nil, fmt.Errorf("gamefinder: %w", err)
	}
	ctrl, err := finder.New(elements, fns...)
	if err != nil {
		return nil, fmt.Errorf("gamefinder: %w", err)
	}
	if err := ctrl.Init(); err != nil {
		return nil, fmt.Errorf("gamefinder: %w", err)
	}
	return ctrl, nil
}
