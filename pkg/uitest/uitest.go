// Package uitest is a small harness for testing components against the
// in-memory document: mount, fire events, and assert on live HTML.
//
// Example:
//
//	h := uitest.Mount(t, NewCounter())
//	h.Click("button")
//	h.ExpectContains("Count: 1")
package uitest

import (
	"strings"
	"testing"

	"github.com/weft-ui/weft/pkg/comp"
	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/vdom"
)

// Harness wraps a mounted component and its document.
type Harness struct {
	t      *testing.T
	Doc    *dom.MemoryDocument
	Handle *comp.Handle
}

// Mount mounts a component on a fresh in-memory document and registers
// cleanup to destroy it when the test ends.
func Mount(t *testing.T, c comp.Component) *Harness {
	t.Helper()
	doc := dom.NewMemoryDocument()
	h := comp.Mount(doc, c)
	t.Cleanup(h.Destroy)
	return &Harness{t: t, Doc: doc, Handle: h}
}

// HTML returns the serialized live tree.
func (h *Harness) HTML() string {
	root, ok := h.Handle.Node().(*dom.MemoryNode)
	if !ok {
		h.t.Fatal("uitest: component has no live node")
	}
	return root.HTML()
}

// ExpectContains asserts that the live HTML contains the substring.
func (h *Harness) ExpectContains(expected string) {
	h.t.Helper()
	if html := h.HTML(); !strings.Contains(html, expected) {
		h.t.Errorf("expected live HTML to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the live HTML does not contain the
// substring.
func (h *Harness) ExpectNotContains(unexpected string) {
	h.t.Helper()
	if html := h.HTML(); strings.Contains(html, unexpected) {
		h.t.Errorf("expected live HTML to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// Click dispatches a click event at the first node matching the tag.
func (h *Harness) Click(tag string) {
	h.t.Helper()
	n := h.FindByTag(tag)
	if n == nil {
		h.t.Fatalf("uitest: no <%s> in live tree:\n%s", tag, truncate(h.HTML(), 500))
	}
	n.Dispatch(vdom.Event{Type: "click"})
}

// TypeText dispatches an input event with the given value at the first
// node matching the tag.
func (h *Harness) TypeText(tag, value string) {
	h.t.Helper()
	n := h.FindByTag(tag)
	if n == nil {
		h.t.Fatalf("uitest: no <%s> in live tree:\n%s", tag, truncate(h.HTML(), 500))
	}
	n.Dispatch(vdom.Event{Type: "input", Value: value})
}

// PressKey dispatches a keydown event at the live root.
func (h *Harness) PressKey(ev vdom.Event) {
	h.t.Helper()
	if ev.Type == "" {
		ev.Type = "keydown"
	}
	root, ok := h.Handle.Node().(*dom.MemoryNode)
	if !ok {
		h.t.Fatal("uitest: component has no live node")
	}
	root.Dispatch(ev)
}

// FindByTag returns the first node with the tag in document order, or
// nil if none exists.
func (h *Harness) FindByTag(tag string) dom.Node {
	return find(h.Handle.Node(), func(n dom.Node) bool {
		return !n.IsText() && n.Tag() == tag
	})
}

// FindByAttr returns the first node carrying the attribute value, or
// nil if none exists.
func (h *Harness) FindByAttr(key, value string) dom.Node {
	return find(h.Handle.Node(), func(n dom.Node) bool {
		if n.IsText() {
			return false
		}
		v, ok := n.Attr(key)
		return ok && v == value
	})
}

func find(n dom.Node, pred func(dom.Node) bool) dom.Node {
	if n == nil {
		return nil
	}
	if pred(n) {
		return n
	}
	for _, c := range n.Children() {
		if found := find(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
