package dom

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/weft-ui/weft/pkg/vdom"
)

// MemoryDocument is an in-memory Document. It counts every mutation
// applied to its nodes, which lets tests assert that a no-op diff really
// touched nothing.
type MemoryDocument struct {
	mutations int
	styles    []string
}

// NewMemoryDocument creates an empty in-memory document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{}
}

// CreateElement creates a detached element node.
func (d *MemoryDocument) CreateElement(tag string) Node {
	return &MemoryNode{doc: d, tag: tag}
}

// CreateText creates a detached text node.
func (d *MemoryDocument) CreateText(text string) Node {
	return &MemoryNode{doc: d, text: true, content: text}
}

// InstallStyle records an installed stylesheet.
func (d *MemoryDocument) InstallStyle(css string) {
	d.styles = append(d.styles, css)
}

// Styles returns the installed stylesheets in install order.
func (d *MemoryDocument) Styles() []string {
	return d.styles
}

// Mutations returns the number of node mutations applied so far.
func (d *MemoryDocument) Mutations() int {
	return d.mutations
}

// ResetMutations zeroes the mutation counter.
func (d *MemoryDocument) ResetMutations() {
	d.mutations = 0
}

// MemoryNode is the in-memory Node implementation.
type MemoryNode struct {
	doc      *MemoryDocument
	parent   *MemoryNode
	text     bool
	tag      string
	content  string
	attrs    map[string]string
	flags    map[string]bool
	handlers map[string]*vdom.EventHandler
	children []*MemoryNode
}

func (n *MemoryNode) Tag() string  { return n.tag }
func (n *MemoryNode) IsText() bool { return n.text }
func (n *MemoryNode) Text() string { return n.content }

func (n *MemoryNode) SetText(s string) {
	n.content = s
	n.doc.mutations++
}

func (n *MemoryNode) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

func (n *MemoryNode) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
	n.doc.mutations++
}

func (n *MemoryNode) SetFlag(key string, on bool) {
	if n.flags == nil {
		n.flags = make(map[string]bool)
	}
	if on {
		n.flags[key] = true
	} else {
		delete(n.flags, key)
	}
	n.doc.mutations++
}

func (n *MemoryNode) Flag(key string) bool {
	return n.flags[key]
}

func (n *MemoryNode) RemoveAttr(key string) {
	delete(n.attrs, key)
	delete(n.flags, key)
	n.doc.mutations++
}

func (n *MemoryNode) Bind(event string, h *vdom.EventHandler) {
	if n.handlers == nil {
		n.handlers = make(map[string]*vdom.EventHandler)
	}
	n.handlers[event] = h
	n.doc.mutations++
}

func (n *MemoryNode) Unbind(event string) {
	delete(n.handlers, event)
	n.doc.mutations++
}

func (n *MemoryNode) Events() []string {
	events := make([]string, 0, len(n.handlers))
	for event := range n.handlers {
		events = append(events, event)
	}
	sort.Strings(events)
	return events
}

// Dispatch delivers ev to the handler bound for its type, bubbling up
// through ancestors until a handler runs.
func (n *MemoryNode) Dispatch(ev vdom.Event) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if h, ok := cur.handlers["on"+ev.Type]; ok && h.Fn != nil {
			h.Fn(ev)
			return true
		}
	}
	return false
}

func (n *MemoryNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *MemoryNode) InsertChild(i int, child Node) {
	mc := child.(*MemoryNode)
	mc.parent = n
	if i < 0 || i > len(n.children) {
		panic(fmt.Sprintf("dom: insert slot %d out of range under <%s>", i, n.tag))
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = mc
	n.doc.mutations++
}

func (n *MemoryNode) RemoveChild(i int) {
	if i < 0 || i >= len(n.children) {
		panic(fmt.Sprintf("dom: remove slot %d out of range under <%s>", i, n.tag))
	}
	n.children[i].parent = nil
	n.children = append(n.children[:i], n.children[i+1:]...)
	n.doc.mutations++
}

func (n *MemoryNode) ReplaceChild(i int, child Node) {
	if i < 0 || i >= len(n.children) {
		panic(fmt.Sprintf("dom: replace slot %d out of range under <%s>", i, n.tag))
	}
	mc := child.(*MemoryNode)
	n.children[i].parent = nil
	mc.parent = n
	n.children[i] = mc
	n.doc.mutations++
}

func (n *MemoryNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// HTML serializes the live subtree, mirroring vdom.RenderToString so
// tests can assert on what is actually on screen.
func (n *MemoryNode) HTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *MemoryNode) writeHTML(b *strings.Builder) {
	if n.text {
		b.WriteString(html.EscapeString(n.content))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.tag)

	keys := make([]string, 0, len(n.attrs)+len(n.flags))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	for k := range n.flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v, ok := n.attrs[k]; ok {
			fmt.Fprintf(b, ` %s="%s"`, k, html.EscapeString(v))
		} else if n.flags[k] {
			b.WriteByte(' ')
			b.WriteString(k)
		}
	}
	b.WriteByte('>')

	if vdom.IsVoidElement(n.tag) {
		return
	}

	for _, c := range n.children {
		c.writeHTML(b)
	}

	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}
