package site

import (
	"github.com/weft-ui/weft/internal/kebab"
	"github.com/weft-ui/weft/pkg/comp"
	"github.com/weft-ui/weft/pkg/store"
	"github.com/weft-ui/weft/pkg/vdom"
)

// KebabConverter is the live kebab-case converter demo.
type KebabConverter struct {
	handle *comp.Handle
	input  *store.Store[string]
	typing *vdom.EventHandler
	unsub  func()
}

// NewKebabConverter creates the converter with an empty input.
func NewKebabConverter() *KebabConverter {
	k := &KebabConverter{input: store.New("")}
	k.typing = vdom.OnInput(func(ev vdom.Event) {
		k.input.Set(ev.Value)
	})
	return k
}

func (k *KebabConverter) Attach(h *comp.Handle) { k.handle = h }

func (k *KebabConverter) Init() {
	k.unsub = k.input.Subscribe(func(string) {
		if k.handle.Live() {
			k.handle.Render()
		}
	})
}

func (k *KebabConverter) Destroy() {
	if k.unsub != nil {
		k.unsub()
	}
}

func (k *KebabConverter) Styles() string {
	return `.kebab-output { font-family: monospace; padding: 0.25rem 0.5rem; }`
}

func (k *KebabConverter) Compose() *vdom.VNode {
	in := k.input.Get()
	out := kebab.ToKebab(in)

	children := []*vdom.VNode{
		vdom.Label(vdom.For("kebab-input"), vdom.Text("Identifier")),
		vdom.Input(
			vdom.ID("kebab-input"),
			vdom.Type("text"),
			vdom.Placeholder("someCamelCase_name"),
			vdom.Value(in),
			k.typing,
		),
	}
	if out != "" {
		children = append(children,
			vdom.Code(vdom.Class("kebab-output"), vdom.Text(out)))
	}

	return vdom.Div(vdom.Class("kebab-converter"), children)
}
