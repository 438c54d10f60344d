// Package template defines the renderer-agnostic template interface used by
// the page renderer and the recommender prompt. The gotemplate subpackage
// provides the pongo2-backed implementation.
package template
