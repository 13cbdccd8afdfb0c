package recipe

import (
	"testing"
)

func TestViewToggleRefreshes(t *testing.T) {
	v := NewView(threeLevel(t), DefaultGeometry())
	if len(v.Nodes) != 4 {
		t.Fatalf("initial nodes = %d, want 4", len(v.Nodes))
	}

	mid, ok := v.Node(1)
	if !ok || mid.Label != "Mid" {
		t.Fatalf("node 1 = %+v, want Mid", mid)
	}
	if !v.Toggle(1) {
		t.Fatal("toggle on Mid reported no effect")
	}
	if len(v.Nodes) != 3 {
		t.Errorf("nodes after collapse = %d, want 3", len(v.Nodes))
	}

	// IDs are rebuilt per pass: Leaf2 moves from id 3 to id 2.
	if n, _ := v.Node(2); n.Label != "Leaf2" {
		t.Errorf("node 2 = %q, want Leaf2", n.Label)
	}
}

func TestViewToggleOnLeafIsNoOp(t *testing.T) {
	v := NewView(threeLevel(t), DefaultGeometry())
	if v.Toggle(2) { // Leaf1
		t.Error("toggle on leaf reported an effect")
	}
	if v.Toggle(42) {
		t.Error("toggle on unknown id reported an effect")
	}
	if len(v.Nodes) != 4 {
		t.Errorf("nodes = %d, want 4 (unchanged)", len(v.Nodes))
	}
}

func TestViewSetAll(t *testing.T) {
	v := NewView(threeLevel(t), DefaultGeometry())

	v.SetAll(false)
	if len(v.Nodes) != 1 {
		t.Errorf("nodes after collapse-all = %d, want 1", len(v.Nodes))
	}

	v.SetAll(true)
	if len(v.Nodes) != 4 {
		t.Errorf("nodes after expand-all = %d, want 4", len(v.Nodes))
	}
	if v.Nodes[0].X != v.Geom.RootX || v.Nodes[0].Y != v.Geom.RootY {
		t.Errorf("root at (%v, %v), want geometry origin", v.Nodes[0].X, v.Nodes[0].Y)
	}
}
