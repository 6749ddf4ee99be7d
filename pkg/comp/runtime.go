package comp

import (
	"fmt"

	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/vdom"
)

// Handle owns the binding between a component and its live node. It is
// the sole writer to that binding. All methods must be called from the
// single UI goroutine; the handle performs no locking.
type Handle struct {
	doc  dom.Document
	comp Component

	live dom.Node
	prev *vdom.VNode

	rendering bool
	dirty     bool
	destroyed bool
}

// Mount runs the component lifecycle: Attach, Init once, stylesheet
// install once, then the first render against an empty previous tree.
//
// Errors thrown by lifecycle hooks propagate to the caller; the runtime
// neither swallows nor retries them.
func Mount(doc dom.Document, c Component) *Handle {
	if c == nil {
		panic("comp: nil component")
	}
	h := &Handle{doc: doc, comp: c}

	if a, ok := c.(Attacher); ok {
		a.Attach(h)
	}
	if init, ok := c.(Initializer); ok {
		init.Init()
	}
	if s, ok := c.(Styler); ok {
		if css := s.Styles(); css != "" {
			doc.InstallStyle(css)
		}
	}

	h.Render()
	return h
}

// Render synchronously re-renders the component: Compose, diff against
// the stored previous tree, patch the live node, rebind, and record the
// new tree as previous. A render requested while another render of this
// handle is mid-flight is coalesced into one final pass with the latest
// state, so a re-render triggered from inside an event handler always
// settles on the just-updated tree.
//
// Render on a destroyed handle is a no-op.
func (h *Handle) Render() {
	if h.destroyed {
		return
	}
	if h.rendering {
		h.dirty = true
		return
	}
	h.rendering = true
	defer func() { h.rendering = false }()

	for {
		h.dirty = false

		next := h.comp.Compose()
		if next == nil {
			panic("comp: Compose returned nil")
		}

		if h.prev == nil {
			h.live = dom.Mount(h.doc, next)
		} else {
			patches := vdom.Diff(h.prev, next)
			live, err := dom.Apply(h.doc, h.live, patches)
			if err != nil {
				// The stored tree no longer matches the live node: a
				// caller violated the serialization contract. Fail loudly
				// rather than leave a corrupt binding.
				panic(fmt.Sprintf("comp: inconsistent live tree: %v", err))
			}
			h.live = live
		}
		h.prev = next

		if !h.dirty {
			return
		}
	}
}

// Node returns the live root node, or nil before mount or after destroy.
func (h *Handle) Node() dom.Node {
	return h.live
}

// Live reports whether the handle still owns a live tree. Asynchronous
// Init completions must check Live before calling Render.
func (h *Handle) Live() bool {
	return !h.destroyed && h.live != nil
}

// Destroy detaches every handler bound by the live tree, releases the
// binding, and calls the component's Destroy hook if present. It does not
// unsubscribe the component from stores; that is the caller's contract.
func (h *Handle) Destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true

	if h.live != nil {
		dom.DetachHandlers(h.live)
		h.live = nil
	}
	h.prev = nil

	if f, ok := h.comp.(Finalizer); ok {
		f.Destroy()
	}
}
