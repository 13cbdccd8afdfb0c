package recipe

import (
	"testing"

	"github.com/brewlab/mixtree/pkg/catalog"
)

func testCatalog(records ...catalog.Record) *catalog.Catalog {
	return catalog.New(records)
}

func TestParseComponents(t *testing.T) {
	tests := []struct {
		name   string
		recipe string
		want   []string
	}{
		{name: "empty", recipe: "", want: nil},
		{name: "whitespace only", recipe: "   ", want: nil},
		{name: "NaN placeholder", recipe: "NaN", want: nil},
		{name: "single component", recipe: "Cuke", want: []string{"Cuke"}},
		{name: "two components", recipe: "Meth + Cuke", want: []string{"Meth", "Cuke"}},
		{name: "no surrounding space", recipe: "Meth+Cuke", want: []string{"Meth", "Cuke"}},
		{name: "empty tokens dropped", recipe: "Meth + + Cuke", want: []string{"Meth", "Cuke"}},
		{name: "trailing separator", recipe: "Meth +", want: []string{"Meth"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseComponents(tt.recipe)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseComponents(%q) = %v, want %v", tt.recipe, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("component %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveScenario(t *testing.T) {
	// A → B + C, B → C + A (back-reference), C has a record with no recipe.
	cat := testCatalog(
		catalog.Record{Name: "A", Recipe: "B + C"},
		catalog.Record{Name: "B", Recipe: "C + A"},
		catalog.Record{Name: "C", Recipe: ""},
	)
	root := NewResolver(cat).Resolve("A")

	if root.Role != RoleRoot {
		t.Fatalf("root role = %v, want root", root.Role)
	}
	kids := root.VisibleChildren()
	if len(kids) != 2 || kids[0].Label != "B" || kids[1].Label != "C" {
		t.Fatalf("root children = %v, want [B C]", labels(kids))
	}

	b := kids[0]
	bKids := b.VisibleChildren()
	if len(bKids) != 2 {
		t.Fatalf("B children = %v, want 2", labels(bKids))
	}
	if bKids[1].Role != RoleCircular {
		t.Errorf("B→A role = %v, want circular", bKids[1].Role)
	}
	if bKids[1].Attrs != nil {
		t.Errorf("circular node has attributes")
	}

	// C has a record with an empty recipe: a zero-child composite, not a leaf.
	for _, c := range []*CompositionNode{kids[1], bKids[0]} {
		if c.Role != RoleComposite {
			t.Errorf("C role = %v, want composite", c.Role)
		}
		if c.Attrs == nil {
			t.Errorf("C missing attributes")
		}
		if c.HasChildren() {
			t.Errorf("C has children, want none")
		}
	}
}

func TestResolveUnknownDrug(t *testing.T) {
	root := NewResolver(testCatalog()).Resolve("Mystery")
	if root.Role != RoleLeaf {
		t.Errorf("role = %v, want leaf", root.Role)
	}
	if root.Attrs != nil || root.HasChildren() {
		t.Errorf("leaf node carries attributes or children")
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	cat := testCatalog(
		catalog.Record{Name: "Jet Fuel", Recipe: "meth + ENERGY DRINK"},
		catalog.Record{Name: "Meth", Recipe: ""},
	)
	root := NewResolver(cat).Resolve("jet fuel")

	if root.Role != RoleRoot {
		t.Fatalf("role = %v, want root", root.Role)
	}
	kids := root.VisibleChildren()
	if len(kids) != 2 {
		t.Fatalf("children = %v, want 2", labels(kids))
	}
	if kids[0].Role != RoleComposite {
		t.Errorf("meth role = %v, want composite (case-insensitive match)", kids[0].Role)
	}
	if kids[0].Label != "meth" {
		t.Errorf("label = %q, want recipe spelling %q", kids[0].Label, "meth")
	}
	if kids[1].Role != RoleLeaf {
		t.Errorf("energy drink role = %v, want leaf", kids[1].Role)
	}
}

func TestResolveSiblingBranchesIndependent(t *testing.T) {
	// X appears in two sibling branches; the ancestor path of one branch
	// must not leak into the other, so both occurrences expand fully.
	cat := testCatalog(
		catalog.Record{Name: "Top", Recipe: "L + R"},
		catalog.Record{Name: "L", Recipe: "X"},
		catalog.Record{Name: "R", Recipe: "X"},
		catalog.Record{Name: "X", Recipe: "Base"},
	)
	root := NewResolver(cat).Resolve("Top")

	for _, side := range root.VisibleChildren() {
		xs := side.VisibleChildren()
		if len(xs) != 1 {
			t.Fatalf("%s children = %v, want [X]", side.Label, labels(xs))
		}
		x := xs[0]
		if x.Role != RoleComposite {
			t.Errorf("%s→X role = %v, want composite", side.Label, x.Role)
		}
		if len(x.VisibleChildren()) != 1 {
			t.Errorf("%s→X not expanded: children = %v", side.Label, labels(x.VisibleChildren()))
		}
	}
}

func TestResolveTerminatesOnFullyCyclicCatalog(t *testing.T) {
	// Every drug references every other: the worst-case cyclic graph.
	// Resolution must still terminate, bounded by the ancestor path.
	cat := testCatalog(
		catalog.Record{Name: "P", Recipe: "Q + R"},
		catalog.Record{Name: "Q", Recipe: "P + R"},
		catalog.Record{Name: "R", Recipe: "P + Q"},
	)
	root := NewResolver(cat).Resolve("P")

	maxDepth := 0
	var measure func(n *CompositionNode, depth int)
	measure = func(n *CompositionNode, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
		for _, c := range n.VisibleChildren() {
			measure(c, depth+1)
		}
	}
	measure(root, 0)

	// Depth is bounded by the number of distinct labels plus the
	// terminating circular node.
	if maxDepth > 3 {
		t.Errorf("tree depth = %d, want <= 3", maxDepth)
	}

	circular := 0
	Walk(root, func(n *CompositionNode) {
		if n.Role == RoleCircular {
			circular++
			if n.HasChildren() {
				t.Errorf("circular node %q has children", n.Label)
			}
		}
	})
	if circular == 0 {
		t.Error("no circular nodes in fully cyclic catalog")
	}
}

func TestResolveDuplicateNamesFirstWins(t *testing.T) {
	cat := testCatalog(
		catalog.Record{Name: "Blend", Recipe: "First"},
		catalog.Record{Name: "blend", Recipe: "Second"},
	)
	root := NewResolver(cat).Resolve("BLEND")
	kids := root.VisibleChildren()
	if len(kids) != 1 || kids[0].Label != "First" {
		t.Errorf("children = %v, want [First] (first record wins)", labels(kids))
	}
}

func labels(nodes []*CompositionNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Label
	}
	return out
}
