package dom

import (
	"fmt"

	"github.com/weft-ui/weft/pkg/vdom"
)

// Mount creates a fresh live tree for vn, binding handlers as it goes.
func Mount(doc Document, vn *vdom.VNode) Node {
	if vn == nil {
		return nil
	}
	if vn.Kind == vdom.KindText {
		return doc.CreateText(vn.Text)
	}

	n := doc.CreateElement(vn.Tag)
	for key, val := range vn.Attrs {
		applyValue(n, key, val)
	}
	for i, child := range vn.Children {
		n.InsertChild(i, Mount(doc, child))
	}
	return n
}

// Apply applies a patch sequence to the live tree rooted at root and
// returns the (possibly replaced) root to rebind. Patches must come from
// a Diff whose prev argument describes root's last-applied shape;
// anything else is a caller bug and surfaces as an error here.
func Apply(doc Document, root Node, patches []vdom.Patch) (Node, error) {
	for _, p := range patches {
		if p.Op == vdom.PatchReplaceNode && len(p.Path) == 0 {
			// Root replacement: the old tree is discarded entirely.
			DetachHandlers(root)
			root = Mount(doc, p.Node)
			continue
		}
		if root == nil {
			return nil, fmt.Errorf("dom: patch %s against nil root", p.Op)
		}
		if err := applyPatch(doc, root, p); err != nil {
			return root, err
		}
	}
	return root, nil
}

func applyPatch(doc Document, root Node, p vdom.Patch) error {
	switch p.Op {
	case vdom.PatchSetText:
		target, err := resolve(root, p.Path)
		if err != nil {
			return err
		}
		target.SetText(p.Text)

	case vdom.PatchSetAttr:
		target, err := resolve(root, p.Path)
		if err != nil {
			return err
		}
		// Rebinding an event handler implicitly detaches the old one.
		applyValue(target, p.Key, p.Value)

	case vdom.PatchRemoveAttr:
		target, err := resolve(root, p.Path)
		if err != nil {
			return err
		}
		if p.Value.Kind() == vdom.AttrEvent {
			target.Unbind(p.Key)
		} else {
			target.RemoveAttr(p.Key)
		}

	case vdom.PatchInsertNode:
		parent, err := resolve(root, p.Path)
		if err != nil {
			return err
		}
		parent.InsertChild(p.Index, Mount(doc, p.Node))

	case vdom.PatchRemoveNode:
		parent, err := resolve(root, p.Path)
		if err != nil {
			return err
		}
		kids := parent.Children()
		if p.Index < 0 || p.Index >= len(kids) {
			return fmt.Errorf("dom: no child %d to remove under <%s>", p.Index, parent.Tag())
		}
		DetachHandlers(kids[p.Index])
		parent.RemoveChild(p.Index)

	case vdom.PatchReplaceNode:
		parent, err := resolve(root, p.Path[:len(p.Path)-1])
		if err != nil {
			return err
		}
		slot := p.Path[len(p.Path)-1]
		kids := parent.Children()
		if slot < 0 || slot >= len(kids) {
			return fmt.Errorf("dom: no child %d to replace under <%s>", slot, parent.Tag())
		}
		DetachHandlers(kids[slot])
		parent.ReplaceChild(slot, Mount(doc, p.Node))

	default:
		return fmt.Errorf("dom: unknown patch op %d", p.Op)
	}
	return nil
}

// applyValue writes one attribute value onto a live node, matching
// exhaustively per kind.
func applyValue(n Node, key string, v vdom.AttrValue) {
	switch v.Kind() {
	case vdom.AttrString:
		n.SetAttr(key, v.Str())
	case vdom.AttrBool:
		n.SetFlag(key, v.Flag())
	case vdom.AttrEvent:
		n.Bind(key, v.Handler())
	default:
		panic(fmt.Sprintf("dom: unknown attribute value kind %d for %q", v.Kind(), key))
	}
}

// resolve walks a child-index path from root.
func resolve(n Node, path []int) (Node, error) {
	for _, i := range path {
		kids := n.Children()
		if i < 0 || i >= len(kids) {
			return nil, fmt.Errorf("dom: no child %d under <%s>", i, n.Tag())
		}
		n = kids[i]
	}
	return n, nil
}
