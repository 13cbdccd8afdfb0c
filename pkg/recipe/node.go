package recipe

// Role classifies a node's position in a composition tree.
type Role int

const (
	// RoleRoot marks the top-level expansion target of a Resolve call.
	RoleRoot Role = iota
	// RoleComposite marks a resolvable drug with a catalog record and
	// (possibly zero) sub-components.
	RoleComposite
	// RoleLeaf marks a component name with no matching catalog record.
	// Leaves are terminal and carry no attributes.
	RoleLeaf
	// RoleCircular marks a component whose name already appears in the
	// ancestor chain of the current expansion. Expansion stops there to
	// avoid infinite recursion.
	RoleCircular
)

// String returns the lowercase name of the role.
func (r Role) String() string {
	switch r {
	case RoleRoot:
		return "root"
	case RoleComposite:
		return "composite"
	case RoleLeaf:
		return "leaf"
	case RoleCircular:
		return "circular"
	default:
		return "unknown"
	}
}

// Attributes carries the catalog fields of a resolved drug. Attributes are
// present only on Root and Composite nodes, where a catalog record was found.
type Attributes struct {
	RecipeText    string
	Price         float64
	Effects       string
	Addictiveness float64
}

// CompositionNode represents one occurrence of a drug or component in a
// specific expansion path. The same drug name can appear as several distinct
// nodes when it is referenced from different branches.
//
// Children are partitioned into a visible and a hidden list. Exactly one of
// the two is non-empty for a node that has children; both are empty for leaf
// and circular nodes. Toggle operations move children between the lists but
// never drop or duplicate them.
type CompositionNode struct {
	// Label is the component name as it appeared in the parent recipe
	// (or the requested drug name for the root).
	Label string
	// Role classifies the node. See [Role].
	Role Role
	// Attrs holds catalog data, nil for leaf and circular nodes.
	Attrs *Attributes

	visible []*CompositionNode
	hidden  []*CompositionNode
}

// VisibleChildren returns the children currently shown, in recipe order.
// The returned slice is a read-only view; use [CompositionNode.Toggle] or
// [ToggleAll] to change visibility.
func (n *CompositionNode) VisibleChildren() []*CompositionNode { return n.visible }

// HiddenChildren returns the children currently hidden by a collapse.
func (n *CompositionNode) HiddenChildren() []*CompositionNode { return n.hidden }

// HasChildren reports whether the node has any children, visible or hidden.
func (n *CompositionNode) HasChildren() bool {
	return len(n.visible) > 0 || len(n.hidden) > 0
}

// HasHidden reports whether the node's children are currently collapsed.
func (n *CompositionNode) HasHidden() bool { return len(n.hidden) > 0 }

// ChildCount returns the total number of children across both partitions.
func (n *CompositionNode) ChildCount() int { return len(n.visible) + len(n.hidden) }

// Togglable reports whether a toggle on this node would have an effect.
// Leaf and circular nodes have no children and are not togglable.
func (n *CompositionNode) Togglable() bool { return n.HasChildren() }

// Toggle collapses the node's children if they are visible, or expands them
// if they are hidden. It is a no-op on nodes without children. The child set
// and its order are preserved across any sequence of toggles.
//
// Toggle only mutates the partition; callers re-run [Flatten] and [Layout]
// (or [View.Refresh]) to update the derived structure.
func (n *CompositionNode) Toggle() {
	switch {
	case len(n.visible) > 0:
		n.hidden = n.visible
		n.visible = nil
	case len(n.hidden) > 0:
		n.visible = n.hidden
		n.hidden = nil
	}
}

// ToggleAll normalizes the visibility of every node reachable from root,
// walking the union of visible and hidden children. With expand true every
// child set becomes visible; with expand false every child set is hidden at
// every level. Callers re-run [Flatten] and [Layout] afterwards.
func ToggleAll(root *CompositionNode, expand bool) {
	if root == nil {
		return
	}
	for _, c := range root.visible {
		ToggleAll(c, expand)
	}
	for _, c := range root.hidden {
		ToggleAll(c, expand)
	}
	if !root.HasChildren() {
		return
	}
	all := append(root.visible, root.hidden...)
	if expand {
		root.visible = all
		root.hidden = nil
	} else {
		root.hidden = all
		root.visible = nil
	}
}

// Walk calls fn for every node in the tree, visiting the union of visible
// and hidden children in order. The root is visited first.
func Walk(root *CompositionNode, fn func(*CompositionNode)) {
	if root == nil {
		return
	}
	fn(root)
	for _, c := range root.visible {
		Walk(c, fn)
	}
	for _, c := range root.hidden {
		Walk(c, fn)
	}
}
