package dom

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type nodeKind int

const (
	elementNode nodeKind = iota
	textNode
)

// Element is a node in the host document. Text content is stored as text
// children so markup and text interleave in document order.
type Element struct {
	kind     nodeKind
	tag      string
	text     string
	attrs    []html.Attribute
	parent   *Element
	children []*Element

	listeners map[string][]*listener
	nextID    int
}

// NewElement constructs a detached element with the given tag name.
func NewElement(tag string) *Element {
	return &Element{kind: elementNode, tag: strings.ToLower(strings.TrimSpace(tag))}
}

// NewText constructs a detached text node.
func NewText(text string) *Element {
	return &Element{kind: textNode, text: text}
}

// Tag returns the lower-case tag name, or "" for text nodes.
func (e *Element) Tag() string {
	if e == nil || e.kind != elementNode {
		return ""
	}
	return e.tag
}

// IsText reports whether e is a text node.
func (e *Element) IsText() bool {
	return e != nil && e.kind == textNode
}

// ID returns the id attribute.
func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// SetID sets the id attribute.
func (e *Element) SetID(id string) *Element {
	return e.SetAttr("id", id)
}

// Attr returns the attribute value and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute, preserving its original position.
func (e *Element) SetAttr(name, value string) *Element {
	if e == nil || e.kind != elementNode {
		return e
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return e
	}
	for i, a := range e.attrs {
		if a.Namespace == "" && a.Key == name {
			e.attrs[i].Val = value
			return e
		}
	}
	e.attrs = append(e.attrs, html.Attribute{Key: name, Val: value})
	return e
}

// RemoveAttr deletes an attribute when present.
func (e *Element) RemoveAttr(name string) *Element {
	if e == nil {
		return e
	}
	name = strings.ToLower(name)
	out := e.attrs[:0]
	for _, a := range e.attrs {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		out = append(out, a)
	}
	e.attrs = out
	return e
}

// HasAttr reports whether the attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// Data reads a data-* attribute (dataset access).
func (e *Element) Data(key string) string {
	v, _ := e.Attr("data-" + key)
	return v
}

// SetData writes a data-* attribute.
func (e *Element) SetData(key, value string) *Element {
	return e.SetAttr("data-"+key, value)
}

// ClassList returns a live view over the class attribute.
func (e *Element) ClassList() ClassList {
	return ClassList{el: e}
}

// Text returns the concatenated text content of e and its descendants.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	if e.kind == textNode {
		return e.text
	}
	var sb strings.Builder
	for _, child := range e.children {
		sb.WriteString(child.Text())
	}
	return sb.String()
}

// SetText replaces every child with a single text node.
func (e *Element) SetText(text string) *Element {
	if e == nil {
		return e
	}
	if e.kind == textNode {
		e.text = text
		return e
	}
	e.RemoveChildren()
	if text != "" {
		e.AppendChild(NewText(text))
	}
	return e
}

// Value returns the form value: textarea content or the value attribute.
func (e *Element) Value() string {
	if e.Tag() == "textarea" {
		return e.Text()
	}
	v, _ := e.Attr("value")
	return v
}

// SetValue writes the form value.
func (e *Element) SetValue(value string) *Element {
	if e.Tag() == "textarea" {
		return e.SetText(value)
	}
	return e.SetAttr("value", value)
}

// Disabled reports the disabled attribute.
func (e *Element) Disabled() bool {
	return e.HasAttr("disabled")
}

// SetDisabled toggles the disabled attribute.
func (e *Element) SetDisabled(disabled bool) *Element {
	if disabled {
		return e.SetAttr("disabled", "")
	}
	return e.RemoveAttr("disabled")
}

// Display returns the inline display style, "" when unset.
func (e *Element) Display() string {
	style, _ := e.Attr("style")
	for _, decl := range strings.Split(style, ";") {
		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(strings.ToLower(key)) == "display" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// SetDisplay sets the inline display style, keeping other declarations.
func (e *Element) SetDisplay(value string) *Element {
	style, _ := e.Attr("style")
	decls := make([]string, 0, 2)
	for _, decl := range strings.Split(style, ";") {
		key, _, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSpace(strings.ToLower(key)) == "display" {
			continue
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	if value = strings.TrimSpace(value); value != "" {
		decls = append(decls, "display: "+value)
	}
	if len(decls) == 0 {
		return e.RemoveAttr("style")
	}
	return e.SetAttr("style", strings.Join(decls, "; "))
}

// Visible reports whether the element is not hidden by an inline
// display:none style or the hidden attribute.
func (e *Element) Visible() bool {
	return e.Display() != "none" && !e.HasAttr("hidden")
}

// Parent returns the parent element or nil.
func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return e.parent
}

// AppendChild attaches child as the last child of e, detaching it from any
// previous parent.
func (e *Element) AppendChild(child *Element) *Element {
	if e == nil || child == nil || e.kind != elementNode {
		return child
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// RemoveChildren detaches every child of e.
func (e *Element) RemoveChildren() {
	if e == nil {
		return
	}
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
}

func (e *Element) removeChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Children returns the element children of e (text nodes excluded).
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	out := make([]*Element, 0, len(e.children))
	for _, child := range e.children {
		if child.kind == elementNode {
			out = append(out, child)
		}
	}
	return out
}

// FirstElementChild returns the first element child or nil.
func (e *Element) FirstElementChild() *Element {
	if e == nil {
		return nil
	}
	for _, child := range e.children {
		if child.kind == elementNode {
			return child
		}
	}
	return nil
}

// Closest walks from e up through its ancestors and returns the first element
// matching m.
func (e *Element) Closest(m Matcher) *Element {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.kind == elementNode && m(cur) {
			return cur
		}
	}
	return nil
}

// FindAll returns descendants of e matching m in document order.
func (e *Element) FindAll(m Matcher) []*Element {
	var out []*Element
	e.walk(func(el *Element) {
		if m(el) {
			out = append(out, el)
		}
	})
	return out
}

// Find returns the first descendant matching m or nil.
func (e *Element) Find(m Matcher) *Element {
	if matches := e.FindAll(m); len(matches) > 0 {
		return matches[0]
	}
	return nil
}

func (e *Element) walk(fn func(*Element)) {
	if e == nil {
		return
	}
	for _, child := range e.children {
		if child.kind != elementNode {
			continue
		}
		fn(child)
		child.walk(fn)
	}
}

// Render writes the outer HTML of e.
func (e *Element) Render(w io.Writer) error {
	return html.Render(w, e.node())
}

// OuterHTML returns the rendered markup of e.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := e.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML returns the rendered markup of e's children.
func (e *Element) InnerHTML() string {
	if e == nil {
		return ""
	}
	var buf bytes.Buffer
	for _, child := range e.children {
		if err := html.Render(&buf, child.node()); err != nil {
			return ""
		}
	}
	return buf.String()
}

func (e *Element) node() *html.Node {
	if e.kind == textNode {
		return &html.Node{Type: html.TextNode, Data: e.text}
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     e.tag,
		DataAtom: atom.Lookup([]byte(e.tag)),
		Attr:     append([]html.Attribute(nil), e.attrs...),
	}
	for _, child := range e.children {
		n.AppendChild(child.node())
	}
	return n
}

func fromNode(n *html.Node) *Element {
	switch n.Type {
	case html.TextNode:
		return NewText(n.Data)
	case html.ElementNode:
		el := NewElement(n.Data)
		el.attrs = append(el.attrs, n.Attr...)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := fromNode(c); child != nil {
				el.AppendChild(child)
			}
		}
		return el
	default:
		return nil
	}
}
