package vdom

// Event describes a UI event delivered to a handler. Only the fields
// relevant to the event type are populated.
type Event struct {
	Type  string // "click", "input", "keydown", ...
	Value string // Current control value, for input/change
	Key   string // Key name, for keyboard events (e.g. "k", "Enter", "Escape")
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// Handler is an event callback.
type Handler func(Event)

// EventHandler pairs an event name with its callback. Handlers compare by
// pointer identity during diffing: reuse the same *EventHandler across
// renders to keep a binding stable, or construct a fresh one to force a
// rebind.
type EventHandler struct {
	Event string // "onclick", "oninput", etc.
	Fn    Handler
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, fn Handler) *EventHandler {
	if fn == nil {
		panic("vdom: nil handler for on" + name)
	}
	return &EventHandler{Event: "on" + name, Fn: fn}
}

// Mouse events

// OnClick handles click events.
func OnClick(fn Handler) *EventHandler { return event("click", fn) }

// OnDblClick handles double-click events.
func OnDblClick(fn Handler) *EventHandler { return event("dblclick", fn) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(fn Handler) *EventHandler { return event("mouseenter", fn) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(fn Handler) *EventHandler { return event("mouseleave", fn) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(fn Handler) *EventHandler { return event("keydown", fn) }

// OnKeyUp handles keyup events.
func OnKeyUp(fn Handler) *EventHandler { return event("keyup", fn) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(fn Handler) *EventHandler { return event("input", fn) }

// OnChange handles change events (fired when value is committed).
func OnChange(fn Handler) *EventHandler { return event("change", fn) }

// OnSubmit handles form submit events.
func OnSubmit(fn Handler) *EventHandler { return event("submit", fn) }

// OnFocus handles focus events.
func OnFocus(fn Handler) *EventHandler { return event("focus", fn) }

// OnBlur handles blur events.
func OnBlur(fn Handler) *EventHandler { return event("blur", fn) }

// On handles an arbitrary event by name.
func On(name string, fn Handler) *EventHandler { return event(name, fn) }
