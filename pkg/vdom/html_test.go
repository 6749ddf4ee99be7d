package vdom

import "testing"

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{"text", Text("hello"), "hello"},
		{"text escaped", Text("<b> & co"), "&lt;b&gt; &amp; co"},
		{"empty div", Div(), "<div></div>"},
		{"attrs sorted", Div(ID("x"), Class("c")), `<div class="c" id="x"></div>`},
		{"attr escaped", Div(TitleAttr(`say "hi"`)), `<div title="say &#34;hi&#34;"></div>`},
		{"flag set", Button(Disabled(), Text("go")), `<button disabled>go</button>`},
		{"flag unset omitted", Input(Checked(false), Type("checkbox")), `<input type="checkbox">`},
		{"void element", Br(), "<br>"},
		{"nested", Ul(Li(Text("a")), Li(Text("b"))), "<ul><li>a</li><li>b</li></ul>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderToString(tt.node); got != tt.want {
				t.Errorf("RenderToString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderToStringDropsHandlers(t *testing.T) {
	got := RenderToString(Button(OnClick(func(Event) {}), Text("go")))
	if got != "<button>go</button>" {
		t.Errorf("RenderToString = %q, handlers must have no HTML form", got)
	}
}

func TestRenderToStringNil(t *testing.T) {
	if got := RenderToString(nil); got != "" {
		t.Errorf("RenderToString(nil) = %q, want empty", got)
	}
}
