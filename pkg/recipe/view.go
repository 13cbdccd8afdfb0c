package recipe

// View owns the derived structure for one resolved composition tree: the
// flattened node and edge lists plus their layout. The underlying tree
// persists across toggles; only the flat snapshot is rebuilt.
//
// A View belongs to a single selection. Resolving a different drug means
// creating a new View, not mutating this one.
type View struct {
	Root *CompositionNode
	Geom Geometry

	// Nodes and Edges are the current flat snapshot. They are replaced
	// wholesale by Refresh; renderers must treat a handed-out snapshot
	// as immutable.
	Nodes []FlatNode
	Edges []FlatEdge
}

// NewView flattens and lays out root with the given geometry.
func NewView(root *CompositionNode, geom Geometry) *View {
	v := &View{Root: root, Geom: geom}
	v.Refresh()
	return v
}

// Refresh rebuilds the flat node/edge lists and recomputes the layout.
// It must be called after any toggle that did not go through the View.
func (v *View) Refresh() {
	v.Nodes, v.Edges = Flatten(v.Root)
	Layout(v.Nodes, v.Edges, v.Geom)
}

// Node returns the flat node with the given id from the current snapshot.
func (v *View) Node(id int) (*FlatNode, bool) {
	if id < 0 || id >= len(v.Nodes) {
		return nil, false
	}
	return &v.Nodes[id], true
}

// Toggle collapses or expands the node with the given id and refreshes the
// snapshot. It reports whether the toggle changed anything.
func (v *View) Toggle(id int) bool {
	n, ok := v.Node(id)
	if !ok || !n.Source.Togglable() {
		return false
	}
	n.Source.Toggle()
	v.Refresh()
	return true
}

// SetAll expands or collapses every level of the tree and refreshes the
// snapshot.
func (v *View) SetAll(expand bool) {
	ToggleAll(v.Root, expand)
	v.Refresh()
}
