package chart

import (
	"bytes"
	"testing"

	"github.com/brewlab/mixtree/pkg/catalog"
	"github.com/brewlab/mixtree/pkg/recipe"
)

func testView(t *testing.T) *recipe.View {
	t.Helper()
	cat := catalog.New([]catalog.Record{
		{Name: "Jet Fuel", Recipe: "Meth + Energy Drink", Price: 50, Effects: "Energizing", Addictiveness: 0.6},
		{Name: "Meth", Recipe: ""},
	})
	root := recipe.NewResolver(cat).Resolve("Jet Fuel")
	return recipe.NewView(root, recipe.DefaultGeometry())
}

func TestFromView(t *testing.T) {
	v := testView(t)
	c := FromView("Jet Fuel", v)

	if c.Drug != "Jet Fuel" {
		t.Errorf("Drug = %q, want Jet Fuel", c.Drug)
	}
	if len(c.Nodes) != 3 || len(c.Edges) != 2 {
		t.Fatalf("nodes/edges = %d/%d, want 3/2", len(c.Nodes), len(c.Edges))
	}

	root := c.Nodes[0]
	if root.Role != "root" || root.Price != 50 || root.Recipe != "Meth + Energy Drink" {
		t.Errorf("root = %+v, want role/price/recipe from catalog", root)
	}
	if c.Nodes[2].Role != "leaf" || c.Nodes[2].Price != 0 {
		t.Errorf("leaf node = %+v, want no attributes", c.Nodes[2])
	}
	if c.Edges[0] != (Edge{From: 0, To: 1}) || c.Edges[1] != (Edge{From: 0, To: 2}) {
		t.Errorf("edges = %v", c.Edges)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	c := FromView("Jet Fuel", testView(t))

	data, err := Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(back.Nodes) != len(c.Nodes) || len(back.Edges) != len(c.Edges) {
		t.Errorf("round trip nodes/edges = %d/%d, want %d/%d",
			len(back.Nodes), len(back.Edges), len(c.Nodes), len(c.Edges))
	}
	if back.Geometry != c.Geometry {
		t.Errorf("geometry = %+v, want %+v", back.Geometry, c.Geometry)
	}
}

func TestReadWriteChart(t *testing.T) {
	c := FromView("Jet Fuel", testView(t))
	var buf bytes.Buffer
	if err := WriteChart(c, &buf); err != nil {
		t.Fatalf("WriteChart: %v", err)
	}
	back, err := ReadChart(&buf)
	if err != nil {
		t.Fatalf("ReadChart: %v", err)
	}
	if back.Drug != c.Drug || len(back.Nodes) != len(c.Nodes) {
		t.Errorf("round trip = %+v", back)
	}
}
