package site

import (
	"strings"

	"github.com/weft-ui/weft/pkg/comp"
	"github.com/weft-ui/weft/pkg/keybind"
	"github.com/weft-ui/weft/pkg/store"
	"github.com/weft-ui/weft/pkg/vdom"
)

// Command is a named action the palette can run.
type Command struct {
	Name string
	Run  func()
}

// CommandPalette is the ctrl+k command palette demo: a keyboard-summoned
// overlay that filters commands as you type.
type CommandPalette struct {
	handle   *comp.Handle
	keys     *keybind.Registry
	open     *store.Store[bool]
	query    *store.Store[string]
	commands []Command

	keydown *vdom.EventHandler
	typing  *vdom.EventHandler
	unsubs  []func()
}

// NewCommandPalette creates a palette over the given commands. The
// palette owns its own keybind registry; ctrl+k toggles it.
func NewCommandPalette(commands []Command) *CommandPalette {
	p := &CommandPalette{
		keys:     keybind.NewRegistry(),
		open:     store.New(false),
		query:    store.New(""),
		commands: commands,
	}

	p.keys.Bind("ctrl+k", "palette.toggle")
	p.keys.OnAction("palette.toggle", p.Toggle)

	p.keydown = vdom.OnKeyDown(func(ev vdom.Event) {
		if ev.Key == "Escape" {
			p.Close()
			return
		}
		p.keys.HandleKey(ev)
	})
	p.typing = vdom.OnInput(func(ev vdom.Event) {
		p.query.Set(ev.Value)
	})
	return p
}

// Toggle opens or closes the palette, clearing the query on open.
func (p *CommandPalette) Toggle() {
	if p.open.Get() {
		p.Close()
		return
	}
	p.query.Set("")
	p.open.Set(true)
}

// Close hides the palette.
func (p *CommandPalette) Close() {
	p.open.Set(false)
}

func (p *CommandPalette) Attach(h *comp.Handle) { p.handle = h }

func (p *CommandPalette) Init() {
	rerender := func() {
		if p.handle.Live() {
			p.handle.Render()
		}
	}
	p.unsubs = append(p.unsubs,
		p.open.Subscribe(func(bool) { rerender() }),
		p.query.Subscribe(func(string) { rerender() }),
	)
}

func (p *CommandPalette) Destroy() {
	for _, unsub := range p.unsubs {
		unsub()
	}
}

func (p *CommandPalette) Styles() string {
	return `.palette-open { position: fixed; inset: 20% 25%; }
.palette-list { list-style: none; margin: 0; padding: 0; }`
}

func (p *CommandPalette) Compose() *vdom.VNode {
	if !p.open.Get() {
		return vdom.Div(
			vdom.Class("palette"),
			vdom.TabIndex(0),
			p.keydown,
			vdom.P(
				vdom.Text("Press "),
				vdom.Kbd(vdom.Text("ctrl+k")),
				vdom.Text(" to open the command palette"),
			),
		)
	}

	return vdom.Div(
		vdom.Class("palette palette-open"),
		vdom.TabIndex(0),
		vdom.Role("dialog"),
		vdom.AriaLabel("Command palette"),
		p.keydown,
		vdom.Input(
			vdom.Type("text"),
			vdom.Class("palette-input"),
			vdom.Placeholder("Type a command"),
			vdom.Value(p.query.Get()),
			vdom.Autofocus(),
			p.typing,
		),
		vdom.Ul(vdom.Class("palette-list"), p.items()),
	)
}

// items builds the filtered command list. Click handlers are rebuilt
// each render; the diff rebinds them by identity.
func (p *CommandPalette) items() []*vdom.VNode {
	query := strings.ToLower(p.query.Get())

	var items []*vdom.VNode
	for _, cmd := range p.commands {
		if query != "" && !strings.Contains(strings.ToLower(cmd.Name), query) {
			continue
		}
		run := cmd.Run
		items = append(items, vdom.Li(
			vdom.Class("palette-item"),
			vdom.OnClick(func(vdom.Event) {
				if run != nil {
					run()
				}
				p.Close()
			}),
			vdom.Text(cmd.Name),
		))
	}

	if len(items) == 0 {
		items = append(items, vdom.Li(
			vdom.Class("palette-empty"),
			vdom.Text("No matching commands"),
		))
	}
	return items
}
