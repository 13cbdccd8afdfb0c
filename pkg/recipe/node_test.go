package recipe

import (
	"reflect"
	"testing"

	"github.com/brewlab/mixtree/pkg/catalog"
)

// checkPartition verifies that every node's visible and hidden lists
// partition its child set: exactly one list non-empty when children exist,
// both empty otherwise.
func checkPartition(t *testing.T, root *CompositionNode) {
	t.Helper()
	Walk(root, func(n *CompositionNode) {
		vis, hid := len(n.VisibleChildren()), len(n.HiddenChildren())
		if vis > 0 && hid > 0 {
			t.Errorf("node %q has both visible (%d) and hidden (%d) children", n.Label, vis, hid)
		}
		if n.Role == RoleLeaf || n.Role == RoleCircular {
			if vis+hid != 0 {
				t.Errorf("terminal node %q has children", n.Label)
			}
		}
	})
}

func TestToggleRoundTrip(t *testing.T) {
	root := threeLevel(t)
	before := labels(root.VisibleChildren())

	root.Toggle()
	if len(root.VisibleChildren()) != 0 {
		t.Fatal("visible children remain after collapse")
	}
	if got := labels(root.HiddenChildren()); !reflect.DeepEqual(got, before) {
		t.Errorf("hidden children = %v, want %v", got, before)
	}
	checkPartition(t, root)

	root.Toggle()
	if got := labels(root.VisibleChildren()); !reflect.DeepEqual(got, before) {
		t.Errorf("visible children after round trip = %v, want %v", got, before)
	}
	if len(root.HiddenChildren()) != 0 {
		t.Error("hidden children remain after expand")
	}
	checkPartition(t, root)
}

func TestToggleNoOpOnTerminalNodes(t *testing.T) {
	for _, n := range []*CompositionNode{
		{Label: "nothing", Role: RoleLeaf},
		{Label: "loop", Role: RoleCircular},
	} {
		if n.Togglable() {
			t.Errorf("%s node reports togglable", n.Role)
		}
		n.Toggle()
		if n.HasChildren() {
			t.Errorf("toggle on %s node created children", n.Role)
		}
	}
}

func TestTogglePreservesChildSet(t *testing.T) {
	root := threeLevel(t)
	total := root.ChildCount()

	for i := 0; i < 5; i++ {
		root.Toggle()
		if got := root.ChildCount(); got != total {
			t.Fatalf("child count = %d after %d toggles, want %d", got, i+1, total)
		}
		checkPartition(t, root)
	}
}

func TestToggleAllCollapse(t *testing.T) {
	root := threeLevel(t)
	ToggleAll(root, false)

	Walk(root, func(n *CompositionNode) {
		if len(n.VisibleChildren()) != 0 {
			t.Errorf("node %q still has visible children after collapse-all", n.Label)
		}
	})
	checkPartition(t, root)
}

func TestToggleAllExpandAfterMixedToggles(t *testing.T) {
	root := threeLevel(t)
	root.VisibleChildren()[0].Toggle() // collapse Mid
	root.Toggle()                      // collapse Top

	ToggleAll(root, true)
	Walk(root, func(n *CompositionNode) {
		if n.HasHidden() {
			t.Errorf("node %q still hidden after expand-all", n.Label)
		}
	})
	checkPartition(t, root)

	nodes, _ := Flatten(root)
	if len(nodes) != 4 {
		t.Errorf("flatten after expand-all = %d nodes, want 4", len(nodes))
	}
}

func TestWalkVisitsHiddenSubtrees(t *testing.T) {
	cat := testCatalog(
		catalog.Record{Name: "Top", Recipe: "Mid"},
		catalog.Record{Name: "Mid", Recipe: "Bottom"},
	)
	root := NewResolver(cat).Resolve("Top")
	root.Toggle() // hide Mid and everything below

	var seen []string
	Walk(root, func(n *CompositionNode) { seen = append(seen, n.Label) })
	want := []string{"Top", "Mid", "Bottom"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("walk = %v, want %v", seen, want)
	}
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleRoot, "root"},
		{RoleComposite, "composite"},
		{RoleLeaf, "leaf"},
		{RoleCircular, "circular"},
		{Role(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("Role(%d).String() = %q, want %q", tt.role, got, tt.want)
		}
	}
}
