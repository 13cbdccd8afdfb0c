package recipe

// Geometry configures the flowchart layout. It is purely geometric and has
// no effect on tree shape.
type Geometry struct {
	// RootX, RootY position the root node.
	RootX float64 `json:"root_x" toml:"root_x"`
	RootY float64 `json:"root_y" toml:"root_y"`
	// HSpacing is the horizontal distance between adjacent siblings.
	HSpacing float64 `json:"h_spacing" toml:"h_spacing"`
	// VSpacing is the vertical distance between a parent and its children.
	VSpacing float64 `json:"v_spacing" toml:"v_spacing"`
}

// DefaultGeometry returns the layout geometry used when no configuration
// is supplied.
func DefaultGeometry() Geometry {
	return Geometry{RootX: 400, RootY: 60, HSpacing: 160, VSpacing: 110}
}

// Layout assigns x/y coordinates to every flattened node in place. The root
// (id 0) is placed at (RootX, RootY); the k visible children of a node at
// (x, y) are centered beneath it, spanning (k-1)×HSpacing around x at
// y+VSpacing.
//
// This is a plain centered tree layout, not a collision-avoiding one:
// deeply unbalanced subtrees can overlap siblings at the same depth.
// Layout must be re-run after every toggle because the visible set changes.
func Layout(nodes []FlatNode, edges []FlatEdge, geom Geometry) {
	if len(nodes) == 0 {
		return
	}

	pos := make(map[int]int, len(nodes))
	for i, n := range nodes {
		pos[n.ID] = i
	}
	children := make(map[int][]int, len(nodes))
	for _, e := range edges {
		children[e.From] = append(children[e.From], e.To)
	}

	var place func(id int, x, y float64)
	place = func(id int, x, y float64) {
		i, ok := pos[id]
		if !ok {
			return
		}
		nodes[i].X = x
		nodes[i].Y = y

		kids := children[id]
		if len(kids) == 0 {
			return
		}
		span := float64(len(kids)-1) * geom.HSpacing
		for j, kid := range kids {
			place(kid, x-span/2+float64(j)*geom.HSpacing, y+geom.VSpacing)
		}
	}
	place(nodes[0].ID, geom.RootX, geom.RootY)
}
