package site

import (
	"github.com/weft-ui/weft/internal/terrain"
	"github.com/weft-ui/weft/pkg/comp"
	"github.com/weft-ui/weft/pkg/store"
	"github.com/weft-ui/weft/pkg/vdom"
)

// TerrainDemo renders a procedural ASCII heightmap with controls for
// reseeding and detail.
type TerrainDemo struct {
	handle *comp.Handle
	opts   *store.Store[terrain.Options]

	reseed *vdom.EventHandler
	detail *vdom.EventHandler
	unsub  func()
}

// NewTerrainDemo creates the demo with default terrain parameters.
func NewTerrainDemo() *TerrainDemo {
	d := &TerrainDemo{opts: store.New(terrain.DefaultOptions())}
	d.reseed = vdom.OnClick(func(vdom.Event) {
		d.opts.Update(func(o terrain.Options) terrain.Options {
			o.Seed++
			return o
		})
	})
	d.detail = vdom.OnClick(func(vdom.Event) {
		d.opts.Update(func(o terrain.Options) terrain.Options {
			o.Octaves = o.Octaves%6 + 1
			return o
		})
	})
	return d
}

func (d *TerrainDemo) Attach(h *comp.Handle) { d.handle = h }

func (d *TerrainDemo) Init() {
	d.unsub = d.opts.Subscribe(func(terrain.Options) {
		if d.handle.Live() {
			d.handle.Render()
		}
	})
}

func (d *TerrainDemo) Destroy() {
	if d.unsub != nil {
		d.unsub()
	}
}

func (d *TerrainDemo) Styles() string {
	return `.terrain-map { font-family: monospace; line-height: 1; white-space: pre; }`
}

func (d *TerrainDemo) Compose() *vdom.VNode {
	opts := d.opts.Get()
	ascii := terrain.RenderASCII(terrain.Generate(opts))

	return vdom.Div(
		vdom.Class("terrain"),
		vdom.Div(
			vdom.Class("terrain-controls"),
			vdom.Button(vdom.Class("terrain-reseed"), d.reseed, vdom.Text("Reseed")),
			vdom.Button(vdom.Class("terrain-detail"), d.detail, vdom.Textf("Octaves: %d", opts.Octaves)),
		),
		vdom.Pre(vdom.Class("terrain-map"), vdom.Text(ascii)),
	)
}
