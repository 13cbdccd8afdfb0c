// Package chart defines the canonical serialization format for flattened
// flowcharts. It is the boundary between the recipe engine and external
// renderers: API responses, cached artifacts, and file exports all use this
// format, and import → export round-trips are lossless for everything a
// renderer needs.
package chart

import (
	"encoding/json"

	"github.com/brewlab/mixtree/pkg/recipe"
)

// Node is the serialized form of a flattened composition node.
type Node struct {
	ID        int     `json:"id" bson:"id"`
	Label     string  `json:"label" bson:"label"`
	Role      string  `json:"role" bson:"role"`
	Depth     int     `json:"depth" bson:"depth"`
	X         float64 `json:"x" bson:"x"`
	Y         float64 `json:"y" bson:"y"`
	HasHidden bool    `json:"has_hidden,omitempty" bson:"has_hidden,omitempty"`

	// Attribute fields are present only for root and composite nodes.
	Recipe        string  `json:"recipe,omitempty" bson:"recipe,omitempty"`
	Price         float64 `json:"price,omitempty" bson:"price,omitempty"`
	Effects       string  `json:"effects,omitempty" bson:"effects,omitempty"`
	Addictiveness float64 `json:"addictiveness,omitempty" bson:"addictiveness,omitempty"`
}

// Edge is a parent→child connection between serialized nodes.
type Edge struct {
	From int `json:"from" bson:"from"`
	To   int `json:"to" bson:"to"`
}

// Chart is one complete flowchart snapshot: the drug it was resolved from,
// the geometry it was laid out with, and the flattened nodes and edges.
type Chart struct {
	Drug     string          `json:"drug" bson:"drug"`
	Geometry recipe.Geometry `json:"geometry" bson:"geometry"`
	Nodes    []Node          `json:"nodes" bson:"nodes"`
	Edges    []Edge          `json:"edges" bson:"edges"`
}

// FromView converts a view's current snapshot to its serialization format.
// Output order follows the snapshot, so identical views serialize
// identically.
func FromView(drug string, v *recipe.View) Chart {
	out := Chart{
		Drug:     drug,
		Geometry: v.Geom,
		Nodes:    make([]Node, len(v.Nodes)),
		Edges:    make([]Edge, len(v.Edges)),
	}
	for i, n := range v.Nodes {
		out.Nodes[i] = fromFlat(n)
	}
	for i, e := range v.Edges {
		out.Edges[i] = Edge{From: e.From, To: e.To}
	}
	return out
}

// Marshal encodes the chart as indented JSON.
func Marshal(c Chart) ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// Unmarshal decodes JSON bytes into a Chart.
func Unmarshal(data []byte) (Chart, error) {
	var c Chart
	if err := json.Unmarshal(data, &c); err != nil {
		return Chart{}, err
	}
	return c, nil
}

func fromFlat(n recipe.FlatNode) Node {
	out := Node{
		ID:        n.ID,
		Label:     n.Label,
		Role:      n.Role.String(),
		Depth:     n.Depth,
		X:         n.X,
		Y:         n.Y,
		HasHidden: n.HasHidden,
	}
	if n.Attrs != nil {
		out.Recipe = n.Attrs.RecipeText
		out.Price = n.Attrs.Price
		out.Effects = n.Attrs.Effects
		out.Addictiveness = n.Attrs.Addictiveness
	}
	return out
}
