package dom

import "context"

// Common event types.
const (
	EventClick  = "click"
	EventSubmit = "submit"
)

// Listener handles a dispatched event.
type Listener func(*Event)

type listener struct {
	id int
	fn Listener
}

// Event is dispatched to an element and bubbles to its ancestors.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element

	ctx              context.Context
	defaultPrevented bool
	stopped          bool
}

// NewEvent creates an event bound to ctx. The context carries cancellation
// into listeners that perform blocking work (the submit listener's request).
func NewEvent(ctx context.Context, typ string) *Event {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Event{Type: typ, ctx: ctx}
}

// Context returns the context the event was dispatched with.
func (ev *Event) Context() context.Context {
	if ev == nil || ev.ctx == nil {
		return context.Background()
	}
	return ev.ctx
}

// PreventDefault cancels the element's default action.
func (ev *Event) PreventDefault() { ev.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// StopPropagation stops bubbling after the current element's listeners.
func (ev *Event) StopPropagation() { ev.stopped = true }

// AddEventListener registers fn for typ and returns a function that removes
// it again. Detaching twice is a no-op.
func (e *Element) AddEventListener(typ string, fn Listener) (detach func()) {
	if e == nil || fn == nil {
		return func() {}
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*listener)
	}
	e.nextID++
	id := e.nextID
	e.listeners[typ] = append(e.listeners[typ], &listener{id: id, fn: fn})
	return func() {
		list := e.listeners[typ]
		for i, l := range list {
			if l.id == id {
				e.listeners[typ] = append(list[:i:i], list[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount reports how many listeners are registered for typ.
func (e *Element) ListenerCount(typ string) int {
	if e == nil {
		return 0
	}
	return len(e.listeners[typ])
}

// Dispatch delivers ev to e and bubbles it up through the ancestors. It
// returns false when a listener prevented the default action.
func (e *Element) Dispatch(ev *Event) bool {
	if e == nil || ev == nil {
		return true
	}
	ev.Target = e
	for cur := e; cur != nil && !ev.stopped; cur = cur.parent {
		ev.CurrentTarget = cur
		// Copy so listeners may detach themselves while running.
		list := append([]*listener(nil), cur.listeners[ev.Type]...)
		for _, l := range list {
			l.fn(ev)
		}
	}
	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}

// Click simulates a user click. Disabled elements ignore clicks. A click on
// a submit button inside a form then submits that form, unless a click
// listener prevented the default action.
func (e *Element) Click(ctx context.Context) {
	if e == nil || e.Disabled() {
		return
	}
	ev := NewEvent(ctx, EventClick)
	if !e.Dispatch(ev) {
		return
	}
	if !e.isSubmitButton() {
		return
	}
	if form := e.Closest(HasTag("form")); form != nil {
		form.Dispatch(NewEvent(ctx, EventSubmit))
	}
}

func (e *Element) isSubmitButton() bool {
	switch e.Tag() {
	case "button":
		typ, ok := e.Attr("type")
		return !ok || typ == "submit"
	case "input":
		typ, _ := e.Attr("type")
		return typ == "submit"
	}
	return false
}
