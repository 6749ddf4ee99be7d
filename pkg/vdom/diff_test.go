package vdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffBothNil(t *testing.T) {
	if patches := Diff(nil, nil); len(patches) != 0 {
		t.Errorf("expected 0 patches, got %d", len(patches))
	}
}

func TestDiffFreshMount(t *testing.T) {
	next := Div(Text("hi"))
	patches := Diff(nil, next)

	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchReplaceNode {
		t.Errorf("Op = %v, want ReplaceNode", patches[0].Op)
	}
	if len(patches[0].Path) != 0 {
		t.Errorf("Path = %v, want root", patches[0].Path)
	}
	if patches[0].Node != next {
		t.Error("patch must carry the next tree")
	}
}

func TestDiffIdenticalTreeNoPatches(t *testing.T) {
	build := func() *VNode {
		return Div(Class("card"),
			H1(Text("Title")),
			Ul(Li(Text("a")), Li(Text("b"))),
		)
	}
	if patches := Diff(build(), build()); len(patches) != 0 {
		t.Errorf("expected 0 patches for identical trees, got %d: %v", len(patches), patches)
	}
}

func TestDiffTextChangeInPlace(t *testing.T) {
	patches := Diff(Text("a"), Text("b"))

	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchSetText {
		t.Errorf("Op = %v, want SetText (never replacement)", patches[0].Op)
	}
	if patches[0].Text != "b" {
		t.Errorf("Text = %q, want b", patches[0].Text)
	}
}

func TestDiffKindChangeReplaces(t *testing.T) {
	patches := Diff(Text("hello"), Div(Text("hello")))

	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchReplaceNode {
		t.Errorf("Op = %v, want ReplaceNode", patches[0].Op)
	}
}

func TestDiffTagChangeReplaces(t *testing.T) {
	prev := Div(Class("x"), Text("content"))
	next := Span(Class("x"), Text("content"))
	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchReplaceNode {
		t.Errorf("Op = %v, want ReplaceNode, tag changes are never patched in place", patches[0].Op)
	}
	if patches[0].Node != next {
		t.Error("replacement must carry the entire next subtree")
	}
}

func TestDiffSingleAttrChange(t *testing.T) {
	prev := Div(Class("a"), ID("box"), Span(Text("child")))
	next := Div(Class("b"), ID("box"), Span(Text("child")))
	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("expected exactly 1 patch, got %d: %v", len(patches), patches)
	}
	p := patches[0]
	if p.Op != PatchSetAttr || p.Key != "class" {
		t.Errorf("got %v %q, want SetAttr class", p.Op, p.Key)
	}
	if p.Value.Str() != "b" {
		t.Errorf("Value = %q, want b", p.Value.Str())
	}
	if len(p.Path) != 0 {
		t.Errorf("Path = %v, want root, children must be untouched", p.Path)
	}
}

func TestDiffAttrAddedAndRemoved(t *testing.T) {
	prev := Div(Class("a"), TitleAttr("old"))
	next := Div(Class("a"), ID("fresh"))
	patches := Diff(prev, next)

	if len(patches) != 2 {
		t.Fatalf("expected 2 patches, got %d", len(patches))
	}
	var sawRemove, sawSet bool
	for _, p := range patches {
		switch {
		case p.Op == PatchRemoveAttr && p.Key == "title":
			sawRemove = true
		case p.Op == PatchSetAttr && p.Key == "id" && p.Value.Str() == "fresh":
			sawSet = true
		default:
			t.Errorf("unexpected patch %v %q", p.Op, p.Key)
		}
	}
	if !sawRemove || !sawSet {
		t.Errorf("sawRemove=%v sawSet=%v, want both", sawRemove, sawSet)
	}
}

func TestDiffHandlerIdentity(t *testing.T) {
	h := OnClick(func(Event) {})

	// Same reference across renders: no patch.
	if patches := Diff(Button(h), Button(h)); len(patches) != 0 {
		t.Errorf("same handler ref: expected 0 patches, got %d", len(patches))
	}

	// Fresh reference: rebind via SetAttr.
	h2 := OnClick(func(Event) {})
	patches := Diff(Button(h), Button(h2))
	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchSetAttr || patches[0].Key != "onclick" {
		t.Errorf("got %v %q, want SetAttr onclick", patches[0].Op, patches[0].Key)
	}
	if patches[0].Value.Handler() != h2 {
		t.Error("patch must carry the new handler reference")
	}
}

func TestDiffHandlerRemoved(t *testing.T) {
	h := OnClick(func(Event) {})
	patches := Diff(Button(h), Button())

	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	p := patches[0]
	if p.Op != PatchRemoveAttr || p.Key != "onclick" {
		t.Errorf("got %v %q, want RemoveAttr onclick", p.Op, p.Key)
	}
	if p.Value.Kind() != AttrEvent {
		t.Error("RemoveAttr must carry the prior handler value for unbinding")
	}
}

func TestDiffAttrKindChange(t *testing.T) {
	h := OnClick(func(Event) {})
	prev := Button(h)
	next := Button(Attr{Key: "onclick", Value: StringValue("alert('x')")})
	patches := Diff(prev, next)

	// The old representation must be cleared before the new one lands,
	// so the superseded handler is unbound instead of left live.
	if len(patches) != 2 {
		t.Fatalf("expected 2 patches, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != PatchRemoveAttr || patches[0].Key != "onclick" {
		t.Errorf("patches[0] = %v %q, want RemoveAttr onclick", patches[0].Op, patches[0].Key)
	}
	if patches[0].Value.Handler() != h {
		t.Error("RemoveAttr must carry the prior handler for unbinding")
	}
	if patches[1].Op != PatchSetAttr || patches[1].Value.Str() != "alert('x')" {
		t.Errorf("patches[1] = %v %q, want SetAttr with the string value", patches[1].Op, patches[1].Value.Str())
	}
}

func TestDiffFlagToStringKindChange(t *testing.T) {
	prev := Button(Disabled())
	next := Button(Attr{Key: "disabled", Value: StringValue("disabled")})
	patches := Diff(prev, next)

	if len(patches) != 2 {
		t.Fatalf("expected 2 patches, got %d: %v", len(patches), patches)
	}
	if patches[0].Op != PatchRemoveAttr || patches[0].Value.Kind() != AttrBool {
		t.Errorf("patches[0] = %v kind %v, want RemoveAttr carrying the prior flag", patches[0].Op, patches[0].Value.Kind())
	}
	if patches[1].Op != PatchSetAttr || patches[1].Value.Kind() != AttrString {
		t.Errorf("patches[1] = %v kind %v, want SetAttr string", patches[1].Op, patches[1].Value.Kind())
	}
}

func TestDiffChildShrink(t *testing.T) {
	prev := Ul(Li(Text("X")), Li(Text("Y")), Li(Text("Z")))
	next := Ul(Li(Text("X")), Li(Text("Y")))
	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("expected exactly 1 patch, got %d: %v", len(patches), patches)
	}
	p := patches[0]
	if p.Op != PatchRemoveNode || p.Index != 2 {
		t.Errorf("got %v index %d, want RemoveNode index 2", p.Op, p.Index)
	}
}

func TestDiffChildShrinkTailOrder(t *testing.T) {
	prev := Ul(Li(Text("a")), Li(Text("b")), Li(Text("c")), Li(Text("d")))
	next := Ul(Li(Text("a")))
	patches := Diff(prev, next)

	want := []int{3, 2, 1}
	var got []int
	for _, p := range patches {
		if p.Op != PatchRemoveNode {
			t.Fatalf("unexpected op %v", p.Op)
		}
		got = append(got, p.Index)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("removal order mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffChildGrow(t *testing.T) {
	prev := Ul(Li(Text("X")))
	next := Ul(Li(Text("X")), Li(Text("Y")))
	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("expected exactly 1 patch, got %d: %v", len(patches), patches)
	}
	p := patches[0]
	if p.Op != PatchInsertNode || p.Index != 1 {
		t.Errorf("got %v index %d, want InsertNode index 1", p.Op, p.Index)
	}
	if p.Node.Children[0].Text != "Y" {
		t.Error("inserted subtree must match Y")
	}
}

func TestDiffNestedPath(t *testing.T) {
	prev := Div(Span(Text("a")), Div(P(Text("old"))))
	next := Div(Span(Text("a")), Div(P(Text("new"))))
	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(patches))
	}
	if diff := cmp.Diff([]int{1, 0, 0}, patches[0].Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffPositionalNotKeyed(t *testing.T) {
	// Reordering keyed children diffs as content changes: positional
	// reconciliation does not consult keys.
	prev := Ul(Li(Key("a"), Text("a")), Li(Key("b"), Text("b")))
	next := Ul(Li(Key("b"), Text("b")), Li(Key("a"), Text("a")))
	patches := Diff(prev, next)

	if len(patches) == 0 {
		t.Fatal("reordered list must produce content patches, not moves")
	}
	for _, p := range patches {
		if p.Op != PatchSetText {
			t.Errorf("unexpected op %v; positional diff rewrites text in place", p.Op)
		}
	}
}
