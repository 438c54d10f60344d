package options

import (
	"context"

	"github.com/goliatone/go-gamefinder/pkg/dom"
)

// Mode selects how clicks change a group's active set.
type Mode int

const (
	// MultiSelect lets every button toggle independently.
	MultiSelect Mode = iota
	// SingleSelect keeps exactly one button active.
	SingleSelect
)

func (m Mode) String() string {
	if m == SingleSelect {
		return "single"
	}
	return "multi"
}

const (
	// ButtonClass marks option buttons inside a group container.
	ButtonClass = "option-button"
	// ActiveClass marks the active buttons.
	ActiveClass = "active"
)

// Config customises rendered buttons.
type Config struct {
	ButtonClass string
	ActiveClass string
}

// OptionFn mutates Config.
type OptionFn func(*Config)

// DefaultConfig returns the class names used by the finder page.
func DefaultConfig() Config {
	return Config{ButtonClass: ButtonClass, ActiveClass: ActiveClass}
}

// NewConfig applies fns over DefaultConfig and restores blank fields.
func NewConfig(fns ...OptionFn) Config {
	cfg := DefaultConfig()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&cfg)
	}
	if cfg.ButtonClass == "" {
		cfg.ButtonClass = ButtonClass
	}
	if cfg.ActiveClass == "" {
		cfg.ActiveClass = ActiveClass
	}
	return cfg
}

// WithButtonClass overrides the option button class.
func WithButtonClass(name string) OptionFn {
	return func(c *Config) {
		if c == nil {
			return
		}
		c.ButtonClass = name
	}
}

// WithActiveClass overrides the active marker class.
func WithActiveClass(name string) OptionFn {
	return func(c *Config) {
		if c == nil {
			return
		}
		c.ActiveClass = name
	}
}

// Group is a rendered set of option buttons.
type Group struct {
	container *dom.Element
	mode      Mode
	cfg       Config
	buttons   []*dom.Element
	detach    []func()
}

// Render appends one button per label to container, in order, and wires the
// click behaviour for mode. Single-select groups start with the first button
// active.
func Render(container *dom.Element, labels []string, mode Mode, fns ...OptionFn) *Group {
	g := &Group{
		container: container,
		mode:      mode,
		cfg:       NewConfig(fns...),
	}
	if container == nil {
		return g
	}

	for _, label := range labels {
		button := dom.NewElement("button").
			SetAttr("type", "button").
			SetAttr("class", g.cfg.ButtonClass).
			SetData("value", label).
			SetText(label)
		container.AppendChild(button)
		g.buttons = append(g.buttons, button)

		btn := button
		g.detach = append(g.detach, btn.AddEventListener(dom.EventClick, func(*dom.Event) {
			g.activate(btn)
		}))
	}

	if mode == SingleSelect && len(g.buttons) > 0 {
		g.buttons[0].ClassList().Add(g.cfg.ActiveClass)
	}
	return g
}

func (g *Group) activate(button *dom.Element) {
	if g.mode == MultiSelect {
		button.ClassList().Toggle(g.cfg.ActiveClass)
		return
	}
	parent := button.Parent()
	if parent == nil {
		parent = g.container
	}
	for _, sibling := range parent.FindAll(dom.HasClass(g.cfg.ButtonClass)) {
		sibling.ClassList().Remove(g.cfg.ActiveClass)
	}
	button.ClassList().Add(g.cfg.ActiveClass)
}

// Container returns the element the group renders into.
func (g *Group) Container() *dom.Element { return g.container }

// Mode returns the selection mode.
func (g *Group) Mode() Mode { return g.mode }

// Labels returns the rendered labels in order.
func (g *Group) Labels() []string {
	out := make([]string, 0, len(g.buttons))
	for _, button := range g.buttons {
		out = append(out, button.Data("value"))
	}
	return out
}

// Button returns the button rendered for label or nil.
func (g *Group) Button(label string) *dom.Element {
	for _, button := range g.buttons {
		if button.Data("value") == label {
			return button
		}
	}
	return nil
}

// Click clicks the button for label. It reports false for unknown labels.
func (g *Group) Click(ctx context.Context, label string) bool {
	button := g.Button(label)
	if button == nil {
		return false
	}
	button.Click(ctx)
	return true
}

// Selected returns the active labels in render order.
func (g *Group) Selected() []string {
	return SelectedWith(g.container, g.cfg)
}

// Select clicks buttons until the active set equals labels. Multi-select
// groups toggle each differing button once; single-select groups click the
// first known label. Unknown labels are ignored and reported back.
func (g *Group) Select(ctx context.Context, labels ...string) (unknown []string) {
	want := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if g.Button(label) == nil {
			unknown = append(unknown, label)
			continue
		}
		want[label] = struct{}{}
	}

	if g.mode == SingleSelect {
		for _, label := range labels {
			if _, ok := want[label]; ok {
				g.Click(ctx, label)
				break
			}
		}
		return unknown
	}

	for _, button := range g.buttons {
		_, wanted := want[button.Data("value")]
		if wanted != button.ClassList().Contains(g.cfg.ActiveClass) {
			button.Click(ctx)
		}
	}
	return unknown
}

// Detach removes the click listeners. Buttons stay in the container.
func (g *Group) Detach() {
	for _, fn := range g.detach {
		fn()
	}
	g.detach = nil
}
