// Package keybind maps keyboard chords to named actions.
//
// A chord is a '+'-separated list of modifiers and a final key, for
// example "ctrl+k" or "ctrl+shift+p". Chords are normalized on
// registration and on dispatch, so "Ctrl+K" and "ctrl+k" name the same
// binding.
package keybind

import (
	"fmt"
	"sort"
	"strings"

	"github.com/weft-ui/weft/pkg/vdom"
)

// Binding is a registered chord and the action it triggers.
type Binding struct {
	Chord  string
	Action string
}

// Registry holds chord bindings and dispatches key events against them.
// Like the rest of the UI core it belongs to a single goroutine.
type Registry struct {
	bindings map[string]string   // normalized chord -> action
	handlers map[string][]func() // action -> handlers
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[string]string),
		handlers: make(map[string][]func()),
	}
}

// Bind registers a chord for an action. Rebinding a chord replaces its
// previous action.
func (r *Registry) Bind(chord, action string) error {
	if action == "" {
		return fmt.Errorf("keybind: empty action for chord %q", chord)
	}
	normalized, err := Normalize(chord)
	if err != nil {
		return err
	}
	r.bindings[normalized] = action
	return nil
}

// Unbind removes a chord binding. Unknown chords are ignored.
func (r *Registry) Unbind(chord string) {
	normalized, err := Normalize(chord)
	if err != nil {
		return
	}
	delete(r.bindings, normalized)
}

// OnAction registers a handler invoked when the action's chord fires.
func (r *Registry) OnAction(action string, fn func()) {
	if fn == nil {
		panic("keybind: nil action handler")
	}
	r.handlers[action] = append(r.handlers[action], fn)
}

// Bindings returns the registered bindings sorted by chord.
func (r *Registry) Bindings() []Binding {
	out := make([]Binding, 0, len(r.bindings))
	for chord, action := range r.bindings {
		out = append(out, Binding{Chord: chord, Action: action})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Chord < out[j].Chord })
	return out
}

// HandleKey resolves a key event against the bindings and fires the
// matching action's handlers. It reports whether the event matched a
// binding, whether or not any handlers were registered.
func (r *Registry) HandleKey(ev vdom.Event) bool {
	chord := ChordOf(ev)
	if chord == "" {
		return false
	}
	action, ok := r.bindings[chord]
	if !ok {
		return false
	}
	for _, fn := range r.handlers[action] {
		fn()
	}
	return true
}

// ChordOf derives the normalized chord for a key event. Events without
// a key yield an empty chord.
func ChordOf(ev vdom.Event) string {
	if ev.Key == "" {
		return ""
	}
	var parts []string
	if ev.Ctrl {
		parts = append(parts, "ctrl")
	}
	if ev.Alt {
		parts = append(parts, "alt")
	}
	if ev.Shift {
		parts = append(parts, "shift")
	}
	if ev.Meta {
		parts = append(parts, "meta")
	}
	parts = append(parts, strings.ToLower(ev.Key))
	return strings.Join(parts, "+")
}

// Normalize canonicalizes a chord string: modifiers lowercased and
// ordered ctrl, alt, shift, meta, followed by a single lowercased key.
func Normalize(chord string) (string, error) {
	parts := strings.Split(chord, "+")
	mods := map[string]bool{}
	key := ""
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "":
			return "", fmt.Errorf("keybind: malformed chord %q", chord)
		case "ctrl", "control":
			mods["ctrl"] = true
		case "alt", "option":
			mods["alt"] = true
		case "shift":
			mods["shift"] = true
		case "meta", "cmd", "super":
			mods["meta"] = true
		default:
			if key != "" {
				return "", fmt.Errorf("keybind: multiple keys in chord %q", chord)
			}
			key = part
		}
	}
	if key == "" {
		return "", fmt.Errorf("keybind: chord %q has no key", chord)
	}

	var out []string
	for _, mod := range []string{"ctrl", "alt", "shift", "meta"} {
		if mods[mod] {
			out = append(out, mod)
		}
	}
	out = append(out, key)
	return strings.Join(out, "+"), nil
}
