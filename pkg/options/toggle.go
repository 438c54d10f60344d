package options

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-gamefinder/pkg/dom"
)

// ToggleButtonClass marks the buttons of the solo/group switch.
const ToggleButtonClass = "toggle-button"

// PlayMode is the value of the solo/group switch. Its string forms are the
// values stored on the toggle buttons.
type PlayMode int

const (
	PlaySolo PlayMode = iota
	PlayWithGroup
)

// String returns "false" for PlaySolo and "true" for PlayWithGroup.
func (m PlayMode) String() string {
	if m == PlayWithGroup {
		return "true"
	}
	return "false"
}

// WithGroup reports whether the player wants to play with a group.
func (m PlayMode) WithGroup() bool { return m == PlayWithGroup }

// ParsePlayMode maps "true"/"false" back to a PlayMode.
func ParsePlayMode(raw string) (PlayMode, error) {
	switch strings.TrimSpace(raw) {
	case "true":
		return PlayWithGroup, nil
	case "false":
		return PlaySolo, nil
	default:
		return PlaySolo, fmt.Errorf("options: invalid play mode %q", raw)
	}
}

// ErrNoActiveToggle is returned when no toggle button is active.
var ErrNoActiveToggle = errors.New("options: no active toggle button")

// Toggle is the delegated click handler bound to the solo/group container.
type Toggle struct {
	container *dom.Element
	detach    func()
}

// BindToggle attaches one listener to container; clicks on any
// .toggle-button inside it make that button the only active one.
func BindToggle(container *dom.Element) *Toggle {
	t := &Toggle{container: container}
	if container == nil {
		t.detach = func() {}
		return t
	}
	t.detach = container.AddEventListener(dom.EventClick, func(ev *dom.Event) {
		target := ev.Target
		if target == nil || !target.ClassList().Contains(ToggleButtonClass) {
			return
		}
		for _, button := range container.FindAll(dom.HasClass(ToggleButtonClass)) {
			button.ClassList().Remove(ActiveClass)
		}
		target.ClassList().Add(ActiveClass)
	})
	return t
}

// Container returns the bound element.
func (t *Toggle) Container() *dom.Element { return t.container }

// Value returns the mode of the active button.
func (t *Toggle) Value() (PlayMode, error) {
	if t == nil || t.container == nil {
		return PlaySolo, ErrNoActiveToggle
	}
	active := t.container.Find(dom.HasClass(ToggleButtonClass, ActiveClass))
	if active == nil {
		return PlaySolo, ErrNoActiveToggle
	}
	return ParsePlayMode(active.Data("value"))
}

// Select clicks the button carrying mode's value.
func (t *Toggle) Select(ctx context.Context, mode PlayMode) bool {
	if t == nil || t.container == nil {
		return false
	}
	button := t.container.Find(dom.All(
		dom.HasClass(ToggleButtonClass),
		dom.HasAttr("data-value", mode.String()),
	))
	if button == nil {
		return false
	}
	button.Click(ctx)
	return true
}

// Detach removes the delegated listener.
func (t *Toggle) Detach() {
	if t == nil || t.detach == nil {
		return
	}
	t.detach()
	t.detach = nil
}
