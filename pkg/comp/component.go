// Package comp wraps a component's lifecycle around the diff engine.
//
// A component is a long-lived, stateful unit owning one live node subtree.
// Mount runs Init once, installs the component's stylesheet once, renders,
// and hands back a Handle; Handle.Render re-renders synchronously; Destroy
// tears the binding down. There is no scheduler and no commit phase: every
// render performs its diff and patch before returning.
package comp

import "github.com/weft-ui/weft/pkg/vdom"

// Component produces the VNode tree for its current state.
//
// Compose must be idempotent against partially initialized state: a render
// may run before asynchronous work started in Init completes.
type Component interface {
	Compose() *vdom.VNode
}

// Initializer is implemented by components needing one-time setup before
// the first render. Init runs synchronously at mount; long-running work
// belongs in a goroutine that checks Handle.Live before touching the tree
// on completion.
type Initializer interface {
	Init()
}

// Styler is implemented by components carrying a scoped stylesheet. The
// sheet is installed on the document once, at mount.
type Styler interface {
	Styles() string
}

// Finalizer is implemented by components needing teardown when their
// handle is destroyed.
type Finalizer interface {
	Destroy()
}

// Attacher is implemented by components that keep a reference to their
// handle, typically so event handlers can request re-renders. Attach runs
// before Init.
type Attacher interface {
	Attach(h *Handle)
}
