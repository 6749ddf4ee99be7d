package vdom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = iota + 1 // Update text content in place
	PatchSetAttr                        // Set/update attribute (or rebind handler)
	PatchRemoveAttr                     // Remove attribute (or unbind handler)
	PatchInsertNode                     // Insert new child subtree
	PatchRemoveNode                     // Remove child subtree
	PatchReplaceNode                    // Replace node entirely
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchReplaceNode:
		return "ReplaceNode"
	default:
		return "Unknown"
	}
}

// Patch represents a single mutation to apply to a live tree.
//
// Path addresses the target node by child indices from the root. For
// InsertNode and RemoveNode the path addresses the parent and Index
// selects the child slot; for every other op the path addresses the node
// itself. A ReplaceNode with an empty path replaces the root.
type Patch struct {
	Op    PatchOp
	Path  []int     // Child-index path from the root
	Key   string    // Attribute key, for SetAttr/RemoveAttr
	Value AttrValue // New value for SetAttr; prior value for RemoveAttr
	Text  string    // New content, for SetText
	Node  *VNode    // Subtree to mount, for InsertNode/ReplaceNode
	Index int       // Child slot, for InsertNode/RemoveNode
}
