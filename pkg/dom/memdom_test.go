package dom

import (
	"testing"

	"github.com/weft-ui/weft/pkg/vdom"
)

func mountFresh(t *testing.T, vn *vdom.VNode) (*MemoryDocument, Node) {
	t.Helper()
	doc := NewMemoryDocument()
	n := Mount(doc, vn)
	doc.ResetMutations()
	return doc, n
}

func liveHTML(t *testing.T, n Node) string {
	t.Helper()
	mn, ok := n.(*MemoryNode)
	if !ok {
		t.Fatalf("node %T is not a MemoryNode", n)
	}
	return mn.HTML()
}

func TestMountBuildsTree(t *testing.T) {
	_, n := mountFresh(t, vdom.Div(vdom.Class("card"),
		vdom.H1(vdom.Text("Title")),
		vdom.Input(vdom.Type("text"), vdom.Autofocus()),
	))

	want := `<div class="card"><h1>Title</h1><input autofocus type="text"></div>`
	if got := liveHTML(t, n); got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
}

func TestMountBindsHandlers(t *testing.T) {
	clicked := 0
	h := vdom.OnClick(func(vdom.Event) { clicked++ })
	_, n := mountFresh(t, vdom.Button(h, vdom.Text("go")))

	if !n.Dispatch(vdom.Event{Type: "click"}) {
		t.Fatal("dispatch must find the bound handler")
	}
	if clicked != 1 {
		t.Errorf("clicked = %d, want 1", clicked)
	}
}

func TestDispatchBubbles(t *testing.T) {
	var got string
	h := vdom.OnClick(func(vdom.Event) { got = "outer" })
	_, n := mountFresh(t, vdom.Div(h, vdom.Span(vdom.Text("inner"))))

	inner := n.Children()[0]
	if !inner.Dispatch(vdom.Event{Type: "click"}) {
		t.Fatal("event must bubble to the ancestor handler")
	}
	if got != "outer" {
		t.Errorf("got %q, want outer", got)
	}
}

func TestDispatchUnhandled(t *testing.T) {
	_, n := mountFresh(t, vdom.Div(vdom.Text("x")))
	if n.Dispatch(vdom.Event{Type: "click"}) {
		t.Error("dispatch with no handler must report false")
	}
}

func TestApplyIdenticalTreeZeroMutations(t *testing.T) {
	build := func() *vdom.VNode {
		return vdom.Div(vdom.Class("card"),
			vdom.Ul(vdom.Li(vdom.Text("a")), vdom.Li(vdom.Text("b"))),
		)
	}
	doc, n := mountFresh(t, build())

	patches := vdom.Diff(build(), build())
	if _, err := Apply(doc, n, patches); err != nil {
		t.Fatal(err)
	}
	if doc.Mutations() != 0 {
		t.Errorf("mutations = %d, want 0 for identical trees", doc.Mutations())
	}
}

func TestApplySingleAttrChange(t *testing.T) {
	prev := vdom.Div(vdom.Class("a"), vdom.Span(vdom.Text("child")))
	next := vdom.Div(vdom.Class("b"), vdom.Span(vdom.Text("child")))
	doc, n := mountFresh(t, prev)

	if _, err := Apply(doc, n, vdom.Diff(prev, next)); err != nil {
		t.Fatal(err)
	}
	if doc.Mutations() != 1 {
		t.Errorf("mutations = %d, want exactly 1", doc.Mutations())
	}
	if got, _ := n.Attr("class"); got != "b" {
		t.Errorf("class = %q, want b", got)
	}
	if got := liveHTML(t, n.Children()[0]); got != "<span>child</span>" {
		t.Errorf("child = %q, children must be untouched", got)
	}
}

func TestApplyRootTagChangeReplaces(t *testing.T) {
	prev := vdom.Div(vdom.Class("x"), vdom.Text("content"))
	next := vdom.Span(vdom.Class("x"), vdom.Em(vdom.Text("content")))
	doc, n := mountFresh(t, prev)

	n2, err := Apply(doc, n, vdom.Diff(prev, next))
	if err != nil {
		t.Fatal(err)
	}
	if n2 == n {
		t.Error("root must be replaced, not patched")
	}
	want := `<span class="x"><em>content</em></span>`
	if got := liveHTML(t, n2); got != want {
		t.Errorf("HTML = %q, want %q", got, want)
	}
}

func TestApplyChildShrink(t *testing.T) {
	prev := vdom.Ul(vdom.Li(vdom.Text("X")), vdom.Li(vdom.Text("Y")), vdom.Li(vdom.Text("Z")))
	next := vdom.Ul(vdom.Li(vdom.Text("X")), vdom.Li(vdom.Text("Y")))
	doc, n := mountFresh(t, prev)

	keepX := n.Children()[0]
	keepY := n.Children()[1]

	if _, err := Apply(doc, n, vdom.Diff(prev, next)); err != nil {
		t.Fatal(err)
	}
	kids := n.Children()
	if len(kids) != 2 {
		t.Fatalf("children = %d, want 2", len(kids))
	}
	if kids[0] != keepX || kids[1] != keepY {
		t.Error("surviving children must not be re-created")
	}
}

func TestApplyRemoveLastChildLeavesEmptyParent(t *testing.T) {
	prev := vdom.Div(vdom.Text("only"))
	next := vdom.Div()
	doc, n := mountFresh(t, prev)

	if _, err := Apply(doc, n, vdom.Diff(prev, next)); err != nil {
		t.Fatal(err)
	}
	if len(n.Children()) != 0 {
		t.Errorf("children = %d, want 0, no dangling text node", len(n.Children()))
	}
	if got := liveHTML(t, n); got != "<div></div>" {
		t.Errorf("HTML = %q, want empty div", got)
	}
}

func TestApplyChildGrow(t *testing.T) {
	prev := vdom.Ul(vdom.Li(vdom.Text("X")))
	next := vdom.Ul(vdom.Li(vdom.Text("X")), vdom.Li(vdom.Text("Y")))
	doc, n := mountFresh(t, prev)

	keepX := n.Children()[0]

	if _, err := Apply(doc, n, vdom.Diff(prev, next)); err != nil {
		t.Fatal(err)
	}
	kids := n.Children()
	if len(kids) != 2 {
		t.Fatalf("children = %d, want 2", len(kids))
	}
	if kids[0] != keepX {
		t.Error("existing child must not be re-created")
	}
	if got := liveHTML(t, kids[1]); got != "<li>Y</li>" {
		t.Errorf("appended child = %q, want <li>Y</li>", got)
	}
}

func TestApplyTextChangeInPlace(t *testing.T) {
	prev := vdom.P(vdom.Text("a"))
	next := vdom.P(vdom.Text("b"))
	doc, n := mountFresh(t, prev)

	textNode := n.Children()[0]
	if _, err := Apply(doc, n, vdom.Diff(prev, next)); err != nil {
		t.Fatal(err)
	}
	if n.Children()[0] != textNode {
		t.Error("text node must be updated in place, not replaced")
	}
	if got := textNode.Text(); got != "b" {
		t.Errorf("text = %q, want b", got)
	}
}

func TestApplyHandlerRebind(t *testing.T) {
	firstRuns, secondRuns := 0, 0
	h1 := vdom.OnClick(func(vdom.Event) { firstRuns++ })
	h2 := vdom.OnClick(func(vdom.Event) { secondRuns++ })

	prev := vdom.Button(h1)
	next := vdom.Button(h2)
	doc, n := mountFresh(t, prev)

	if _, err := Apply(doc, n, vdom.Diff(prev, next)); err != nil {
		t.Fatal(err)
	}
	n.Dispatch(vdom.Event{Type: "click"})
	if firstRuns != 0 {
		t.Error("old handler must be detached on rebind")
	}
	if secondRuns != 1 {
		t.Errorf("secondRuns = %d, want 1", secondRuns)
	}
}

func TestApplyHandlerUnbind(t *testing.T) {
	h := vdom.OnClick(func(vdom.Event) {})
	prev := vdom.Button(h)
	next := vdom.Button()
	doc, n := mountFresh(t, prev)

	if _, err := Apply(doc, n, vdom.Diff(prev, next)); err != nil {
		t.Fatal(err)
	}
	if n.Dispatch(vdom.Event{Type: "click"}) {
		t.Error("removed handler must no longer receive events")
	}
	if len(n.Events()) != 0 {
		t.Errorf("events = %v, want none", n.Events())
	}
}

func TestApplyHandlerToStringKindChange(t *testing.T) {
	fired := 0
	h := vdom.OnClick(func(vdom.Event) { fired++ })
	prev := vdom.Button(h)
	next := vdom.Button(vdom.Attr{Key: "onclick", Value: vdom.StringValue("alert('x')")})
	doc, n := mountFresh(t, prev)

	if _, err := Apply(doc, n, vdom.Diff(prev, next)); err != nil {
		t.Fatal(err)
	}
	if n.Dispatch(vdom.Event{Type: "click"}) {
		t.Error("handler superseded by a string attribute must be unbound")
	}
	if fired != 0 {
		t.Errorf("fired = %d, stale handler must not run", fired)
	}
	if got, _ := n.Attr("onclick"); got != "alert('x')" {
		t.Errorf("onclick = %q, want the string attribute", got)
	}
}

func TestApplyFlagToStringKindChange(t *testing.T) {
	prev := vdom.Button(vdom.Disabled())
	next := vdom.Button(vdom.Attr{Key: "disabled", Value: vdom.StringValue("disabled")})
	doc, n := mountFresh(t, prev)

	if _, err := Apply(doc, n, vdom.Diff(prev, next)); err != nil {
		t.Fatal(err)
	}
	if n.Flag("disabled") {
		t.Error("stale flag must be cleared when the key becomes a string attribute")
	}
	want := `<button disabled="disabled"></button>`
	if got := liveHTML(t, n); got != want {
		t.Errorf("HTML = %q, want %q (key must serialize once)", got, want)
	}
}

func TestApplyStalePathFailsLoudly(t *testing.T) {
	doc, n := mountFresh(t, vdom.Div(vdom.Text("x")))

	bogus := []vdom.Patch{{Op: vdom.PatchSetText, Path: []int{5}, Text: "y"}}
	if _, err := Apply(doc, n, bogus); err == nil {
		t.Error("patch against a stale path must error, not silently drop")
	}
}

func TestDetachHandlers(t *testing.T) {
	h := vdom.OnClick(func(vdom.Event) {})
	hk := vdom.OnKeyDown(func(vdom.Event) {})
	_, n := mountFresh(t, vdom.Div(h, vdom.Input(hk)))

	DetachHandlers(n)
	if n.Dispatch(vdom.Event{Type: "click"}) {
		t.Error("detached tree must not handle events")
	}
	if n.Children()[0].Dispatch(vdom.Event{Type: "keydown"}) {
		t.Error("detach must recurse into children")
	}
}
