package recipe

// FlatNode is one entry in the flattened, renderable view of a composition
// tree. IDs are assigned in pre-order traversal position and are stable for
// a given tree and visibility partition; they are rebuilt on every Flatten
// pass. X and Y are filled in by [Layout].
type FlatNode struct {
	ID    int
	Depth int
	X, Y  float64

	Label     string
	Role      Role
	Attrs     *Attributes
	HasHidden bool

	// Source points back to the composition node this entry was derived
	// from, so toggles can be applied through the flat view.
	Source *CompositionNode
}

// FlatEdge is a parent→child connection between two flattened nodes,
// identified by their pass-local IDs.
type FlatEdge struct {
	From int
	To   int
}

// Flatten walks the tree in pre-order following only visible children and
// produces the node list and edge list for rendering. Hidden children are
// skipped entirely: they receive no IDs and appear in neither output.
//
// IDs count up from 0 at the root in traversal order, so nodes[i].ID == i.
// Depth is the distance from the root. Edges are emitted per parent in
// child-visit order. Given the same tree and partition, Flatten always
// returns identical output.
func Flatten(root *CompositionNode) ([]FlatNode, []FlatEdge) {
	if root == nil {
		return nil, nil
	}
	var (
		nodes []FlatNode
		edges []FlatEdge
	)
	var visit func(n *CompositionNode, depth int)
	visit = func(n *CompositionNode, depth int) {
		id := len(nodes)
		nodes = append(nodes, FlatNode{
			ID:        id,
			Depth:     depth,
			Label:     n.Label,
			Role:      n.Role,
			Attrs:     n.Attrs,
			HasHidden: n.HasHidden(),
			Source:    n,
		})
		for _, c := range n.VisibleChildren() {
			edges = append(edges, FlatEdge{From: id, To: len(nodes)})
			visit(c, depth+1)
		}
	}
	visit(root, 0)
	return nodes, edges
}
