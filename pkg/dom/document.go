package dom

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Document is a parsed host page.
type Document struct {
	root *Element
}

// ErrNoRoot is returned when the parsed input contains no html element.
var ErrNoRoot = errors.New("dom: document has no root element")

// Parse reads an HTML page. Comments and the doctype are dropped; Render
// always emits an HTML5 doctype.
func Parse(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("dom: missing reader")
	}
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return &Document{root: fromNode(c)}, nil
		}
	}
	return nil, ErrNoRoot
}

// Root returns the html element.
func (d *Document) Root() *Element {
	if d == nil {
		return nil
	}
	return d.root
}

// Body returns the body element.
func (d *Document) Body() *Element {
	return d.Root().Find(HasTag("body"))
}

// GetElementByID returns the first element with the id or nil.
func (d *Document) GetElementByID(id string) *Element {
	if d == nil || id == "" {
		return nil
	}
	if d.root.ID() == id {
		return d.root
	}
	return d.root.Find(HasAttr("id", id))
}

// Render writes the page including the doctype.
func (d *Document) Render(w io.Writer) error {
	if d == nil || d.root == nil {
		return ErrNoRoot
	}
	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	return d.root.Render(w)
}
