package recipe

import (
	"math"
	"testing"

	"github.com/brewlab/mixtree/pkg/catalog"
)

const tol = 1e-9

func TestLayoutRootPosition(t *testing.T) {
	root := threeLevel(t)
	nodes, edges := Flatten(root)
	geom := Geometry{RootX: 250, RootY: 30, HSpacing: 100, VSpacing: 80}
	Layout(nodes, edges, geom)

	if nodes[0].X != 250 || nodes[0].Y != 30 {
		t.Errorf("root at (%v, %v), want (250, 30)", nodes[0].X, nodes[0].Y)
	}
}

func TestLayoutCentering(t *testing.T) {
	tests := []struct {
		name     string
		children int
	}{
		{name: "one child", children: 1},
		{name: "two children", children: 2},
		{name: "three children", children: 3},
		{name: "five children", children: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := ""
			for i := 0; i < tt.children; i++ {
				if i > 0 {
					recipe += " + "
				}
				recipe += string(rune('a' + i))
			}
			cat := testCatalog(catalog.Record{Name: "Mix", Recipe: recipe})
			nodes, edges := Flatten(NewResolver(cat).Resolve("Mix"))
			geom := DefaultGeometry()
			Layout(nodes, edges, geom)

			// Mean of children x equals the parent's x.
			var sum float64
			for _, n := range nodes[1:] {
				sum += n.X
				if got := n.Y; got != geom.RootY+geom.VSpacing {
					t.Errorf("child %q y = %v, want %v", n.Label, got, geom.RootY+geom.VSpacing)
				}
			}
			mean := sum / float64(tt.children)
			if math.Abs(mean-nodes[0].X) > tol {
				t.Errorf("mean child x = %v, want parent x %v", mean, nodes[0].X)
			}

			// Siblings are HSpacing apart, left to right.
			for i := 2; i < len(nodes); i++ {
				if gap := nodes[i].X - nodes[i-1].X; math.Abs(gap-geom.HSpacing) > tol {
					t.Errorf("gap between child %d and %d = %v, want %v", i-1, i, gap, geom.HSpacing)
				}
			}
		})
	}
}

func TestLayoutDepthSpacing(t *testing.T) {
	root := threeLevel(t)
	nodes, edges := Flatten(root)
	geom := DefaultGeometry()
	Layout(nodes, edges, geom)

	for _, n := range nodes {
		want := geom.RootY + float64(n.Depth)*geom.VSpacing
		if math.Abs(n.Y-want) > tol {
			t.Errorf("%q y = %v, want %v (depth %d)", n.Label, n.Y, want, n.Depth)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	// Must not panic on an empty snapshot.
	Layout(nil, nil, DefaultGeometry())
}
