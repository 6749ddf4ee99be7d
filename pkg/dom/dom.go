// Package dom defines the live-node contract the diff engine patches
// against, plus an in-memory document backing tests, demos, and the
// static exporter.
//
// A live node is the concrete on-screen counterpart of the VNode that
// produced it. The binding between the two is owned by exactly one
// component runtime and is never shared; the interfaces here deliberately
// expose only the mutations the patch set needs.
package dom

import "github.com/weft-ui/weft/pkg/vdom"

// Document creates live nodes and receives one-time stylesheet installs.
type Document interface {
	// CreateElement creates a detached element node.
	CreateElement(tag string) Node

	// CreateText creates a detached text node.
	CreateText(text string) Node

	// InstallStyle installs a component stylesheet. Called at most once
	// per mounted component.
	InstallStyle(css string)
}

// Node is a concrete live node. All methods must be called from the
// single UI goroutine that owns the node's subtree.
type Node interface {
	// Tag returns the element tag, or "" for text nodes.
	Tag() string

	// IsText reports whether this is a text node.
	IsText() bool

	// Text returns the text content of a text node.
	Text() string

	// SetText assigns text content in place.
	SetText(s string)

	// Attr returns a string attribute's current value.
	Attr(key string) (string, bool)

	// SetAttr sets a string attribute.
	SetAttr(key, value string)

	// SetFlag sets or clears a boolean flag attribute.
	SetFlag(key string, on bool)

	// RemoveAttr removes an attribute or flag.
	RemoveAttr(key string)

	// Flag reports whether a boolean flag is set.
	Flag(key string) bool

	// Bind attaches a handler under its event name (e.g. "onclick"),
	// replacing any handler previously bound to that name.
	Bind(event string, h *vdom.EventHandler)

	// Unbind detaches the handler bound under the event name.
	Unbind(event string)

	// Events returns the event names with bound handlers.
	Events() []string

	// Dispatch delivers an event to this node's handler for ev.Type,
	// bubbling to ancestors until handled. Returns true if a handler ran.
	Dispatch(ev vdom.Event) bool

	// Children returns the current child nodes in order.
	Children() []Node

	// InsertChild inserts a child at slot i.
	InsertChild(i int, n Node)

	// RemoveChild removes the child at slot i.
	RemoveChild(i int)

	// ReplaceChild replaces the child at slot i.
	ReplaceChild(i int, n Node)

	// Parent returns the parent node, or nil at the root.
	Parent() Node
}

// DetachHandlers unbinds every handler in the subtree rooted at n. Used
// at component teardown so destroyed trees cannot receive events.
func DetachHandlers(n Node) {
	if n == nil {
		return
	}
	for _, event := range n.Events() {
		n.Unbind(event)
	}
	for _, child := range n.Children() {
		DetachHandlers(child)
	}
}
