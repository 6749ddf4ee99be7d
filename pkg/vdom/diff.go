package vdom

// Diff compares two VNode trees and returns the patches needed to bring a
// live tree rendered from prev into agreement with next.
//
// The walk is a single top-down pass with no backtracking. A kind or tag
// mismatch replaces the whole subtree; tag changes are never patched in
// place. Children reconcile strictly positionally by index; Key is
// accepted on nodes as a future extension point but never consulted, so
// reordered lists diff as content changes.
//
// Diff only reads its inputs. Callers must serialize Diff/Apply cycles for
// a given live tree; handing Diff a prev that does not describe the live
// tree's last-applied shape is undefined behavior.
func Diff(prev, next *VNode) []Patch {
	var patches []Patch
	diff(prev, next, nil, &patches)
	return patches
}

// diff recursively compares nodes and appends patches. path addresses the
// node currently being compared.
func diff(prev, next *VNode, path []int, patches *[]Patch) {
	if prev == nil && next == nil {
		return
	}

	// Fresh mount: the applier creates the subtree recursively.
	if prev == nil {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			Path: clonePath(path),
			Node: next,
		})
		return
	}

	// Removal is emitted by the parent, which knows the child slot.
	if next == nil {
		return
	}

	// Different kind, or different tag: replace, never patch in place.
	if prev.Kind != next.Kind || (prev.Kind == KindElement && prev.Tag != next.Tag) {
		*patches = append(*patches, Patch{
			Op:   PatchReplaceNode,
			Path: clonePath(path),
			Node: next,
		})
		return
	}

	switch prev.Kind {
	case KindText:
		// Text changes are a value assignment, not a node replacement.
		if prev.Text != next.Text {
			*patches = append(*patches, Patch{
				Op:   PatchSetText,
				Path: clonePath(path),
				Text: next.Text,
			})
		}
	case KindElement:
		diffAttrs(prev, next, path, patches)
		diffChildren(prev, next, path, patches)
	}
}

// diffAttrs reconciles the attribute maps of two same-tag elements. Event
// handlers are attribute values like any other; an identity change shows
// up as a SetAttr that rebinds.
func diffAttrs(prev, next *VNode, path []int, patches *[]Patch) {
	for key, prevVal := range prev.Attrs {
		nextVal, ok := next.Attrs[key]
		if !ok {
			// RemoveAttr carries the prior value so the applier knows
			// whether to remove an attribute or unbind a handler.
			*patches = append(*patches, Patch{
				Op:    PatchRemoveAttr,
				Path:  clonePath(path),
				Key:   key,
				Value: prevVal,
			})
			continue
		}
		if !prevVal.Equal(nextVal) {
			if prevVal.Kind() != nextVal.Kind() {
				// Kind change: clear the old representation first, so a
				// superseded handler is unbound (and a stale flag removed)
				// rather than left live alongside the new value.
				*patches = append(*patches, Patch{
					Op:    PatchRemoveAttr,
					Path:  clonePath(path),
					Key:   key,
					Value: prevVal,
				})
			}
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				Path:  clonePath(path),
				Key:   key,
				Value: nextVal,
			})
		}
	}

	for key, nextVal := range next.Attrs {
		if _, ok := prev.Attrs[key]; !ok {
			*patches = append(*patches, Patch{
				Op:    PatchSetAttr,
				Path:  clonePath(path),
				Key:   key,
				Value: nextVal,
			})
		}
	}
}

// diffChildren reconciles children positionally by index.
func diffChildren(prev, next *VNode, path []int, patches *[]Patch) {
	pc, nc := prev.Children, next.Children

	shared := len(pc)
	if len(nc) < shared {
		shared = len(nc)
	}
	for i := 0; i < shared; i++ {
		diff(pc[i], nc[i], append(path, i), patches)
	}

	// Grown tail: appends in ascending order.
	for i := len(pc); i < len(nc); i++ {
		*patches = append(*patches, Patch{
			Op:    PatchInsertNode,
			Path:  clonePath(path),
			Index: i,
			Node:  nc[i],
		})
	}

	// Shrunk tail: removals highest-index-first so earlier slots stay
	// stable while patches apply in order.
	for i := len(pc) - 1; i >= len(nc); i-- {
		*patches = append(*patches, Patch{
			Op:    PatchRemoveNode,
			Path:  clonePath(path),
			Index: i,
		})
	}
}

// clonePath copies a path so emitted patches do not alias the walk buffer.
func clonePath(path []int) []int {
	out := make([]int, len(path))
	copy(out, path)
	return out
}
