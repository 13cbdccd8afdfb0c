package recipe

import (
	"reflect"
	"testing"

	"github.com/brewlab/mixtree/pkg/catalog"
)

// threeLevel builds: Top → (Mid, Leaf2); Mid → Leaf1.
func threeLevel(t *testing.T) *CompositionNode {
	t.Helper()
	cat := testCatalog(
		catalog.Record{Name: "Top", Recipe: "Mid + Leaf2"},
		catalog.Record{Name: "Mid", Recipe: "Leaf1"},
	)
	return NewResolver(cat).Resolve("Top")
}

func TestFlattenOrder(t *testing.T) {
	root := threeLevel(t)
	nodes, edges := Flatten(root)

	wantLabels := []string{"Top", "Mid", "Leaf1", "Leaf2"}
	wantDepths := []int{0, 1, 2, 1}
	if len(nodes) != len(wantLabels) {
		t.Fatalf("nodes = %d, want %d", len(nodes), len(wantLabels))
	}
	for i, n := range nodes {
		if n.ID != i {
			t.Errorf("nodes[%d].ID = %d, want %d", i, n.ID, i)
		}
		if n.Label != wantLabels[i] {
			t.Errorf("nodes[%d].Label = %q, want %q", i, n.Label, wantLabels[i])
		}
		if n.Depth != wantDepths[i] {
			t.Errorf("nodes[%d].Depth = %d, want %d", i, n.Depth, wantDepths[i])
		}
		if n.Source == nil {
			t.Errorf("nodes[%d].Source is nil", i)
		}
	}

	wantEdges := []FlatEdge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 0, To: 3}}
	if !reflect.DeepEqual(edges, wantEdges) {
		t.Errorf("edges = %v, want %v", edges, wantEdges)
	}
}

func TestFlattenDeterministic(t *testing.T) {
	root := threeLevel(t)
	n1, e1 := Flatten(root)
	n2, e2 := Flatten(root)
	if !reflect.DeepEqual(n1, n2) {
		t.Error("nodes differ between identical flatten passes")
	}
	if !reflect.DeepEqual(e1, e2) {
		t.Error("edges differ between identical flatten passes")
	}
}

func TestFlattenSkipsHidden(t *testing.T) {
	root := threeLevel(t)
	mid := root.VisibleChildren()[0]
	mid.Toggle() // hide Leaf1

	nodes, edges := Flatten(root)
	if len(nodes) != 3 {
		t.Fatalf("nodes = %d, want 3 after collapsing Mid", len(nodes))
	}
	for _, n := range nodes {
		if n.Label == "Leaf1" {
			t.Error("hidden node Leaf1 appeared in flatten output")
		}
		if n.Label == "Mid" && !n.HasHidden {
			t.Error("Mid.HasHidden = false, want true")
		}
	}
	wantEdges := []FlatEdge{{From: 0, To: 1}, {From: 0, To: 2}}
	if !reflect.DeepEqual(edges, wantEdges) {
		t.Errorf("edges = %v, want %v", edges, wantEdges)
	}
}

func TestFlattenCollapsedRootOnly(t *testing.T) {
	root := threeLevel(t)
	ToggleAll(root, false)

	nodes, edges := Flatten(root)
	if len(nodes) != 1 || nodes[0].Label != "Top" {
		t.Fatalf("nodes = %v, want only the root", nodes)
	}
	if len(edges) != 0 {
		t.Errorf("edges = %v, want none", edges)
	}
	if !nodes[0].HasHidden {
		t.Error("collapsed root HasHidden = false, want true")
	}
}

func TestFlattenNil(t *testing.T) {
	nodes, edges := Flatten(nil)
	if nodes != nil || edges != nil {
		t.Errorf("Flatten(nil) = %v, %v, want nil, nil", nodes, edges)
	}
}
