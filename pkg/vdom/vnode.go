package vdom

import "fmt"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text leaf
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node. A tree is immutable once constructed; a
// re-render builds a brand-new tree rather than mutating the prior one.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Attrs    Attrs    // Attributes and event handlers
	Children []*VNode // Child nodes
	Key      string   // Reconciliation key (carried, not yet consulted)
	Text     string   // For KindText
}

// Attrs holds attributes and event handlers by name.
type Attrs map[string]AttrValue

// IsInteractive returns true if this node binds at least one event handler.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for _, val := range v.Attrs {
		if val.kind == AttrEvent {
			return true
		}
	}
	return false
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// AttrKind discriminates the closed set of attribute value kinds.
type AttrKind uint8

const (
	AttrString AttrKind = iota // Plain string value
	AttrBool                   // Boolean flag (present/absent)
	AttrEvent                  // Event handler reference
)

// String returns the string representation of the AttrKind.
func (k AttrKind) String() string {
	switch k {
	case AttrString:
		return "String"
	case AttrBool:
		return "Bool"
	case AttrEvent:
		return "Event"
	default:
		return "Unknown"
	}
}

// AttrValue is a closed union over the three attribute value kinds, so the
// diff engine can match exhaustively per kind. The zero value is the empty
// string attribute.
type AttrValue struct {
	kind    AttrKind
	str     string
	flag    bool
	handler *EventHandler
}

// StringValue wraps a plain string attribute value.
func StringValue(s string) AttrValue {
	return AttrValue{kind: AttrString, str: s}
}

// BoolValue wraps a boolean flag attribute value.
func BoolValue(on bool) AttrValue {
	return AttrValue{kind: AttrBool, flag: on}
}

// EventValue wraps an event handler reference.
func EventValue(h *EventHandler) AttrValue {
	if h == nil {
		panic("vdom: nil event handler")
	}
	return AttrValue{kind: AttrEvent, handler: h}
}

// Kind returns the value's kind.
func (v AttrValue) Kind() AttrKind { return v.kind }

// Str returns the string value; empty for other kinds.
func (v AttrValue) Str() string { return v.str }

// Flag returns the boolean flag; false for other kinds.
func (v AttrValue) Flag() bool { return v.flag }

// Handler returns the event handler reference; nil for other kinds.
func (v AttrValue) Handler() *EventHandler { return v.handler }

// Equal reports whether two attribute values are interchangeable for
// diffing purposes. Event handlers compare by reference identity: a
// re-render that constructs a fresh handler forces a rebind.
func (v AttrValue) Equal(o AttrValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case AttrString:
		return v.str == o.str
	case AttrBool:
		return v.flag == o.flag
	case AttrEvent:
		return v.handler == o.handler
	default:
		return false
	}
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value AttrValue
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
