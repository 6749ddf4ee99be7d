package site

import (
	"github.com/weft-ui/weft/pkg/comp"
	"github.com/weft-ui/weft/pkg/store"
	"github.com/weft-ui/weft/pkg/vdom"
)

// Counter is the click-counter demo.
type Counter struct {
	handle *comp.Handle
	count  *store.Store[int]
	click  *vdom.EventHandler
	unsub  func()
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	c := &Counter{count: store.New(0)}
	c.click = vdom.OnClick(func(vdom.Event) {
		c.count.Update(func(n int) int { return n + 1 })
	})
	return c
}

func (c *Counter) Attach(h *comp.Handle) { c.handle = h }

func (c *Counter) Init() {
	c.unsub = c.count.Subscribe(func(int) {
		if c.handle.Live() {
			c.handle.Render()
		}
	})
}

func (c *Counter) Destroy() {
	if c.unsub != nil {
		c.unsub()
	}
}

func (c *Counter) Styles() string {
	return `.counter { font-size: 1.5rem; padding: 0.5rem 1.5rem; cursor: pointer; }`
}

func (c *Counter) Compose() *vdom.VNode {
	return vdom.Button(
		vdom.Class("counter"),
		c.click,
		vdom.Textf("Count: %d", c.count.Get()),
	)
}
