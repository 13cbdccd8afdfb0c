// Package render turns flowchart snapshots into Graphviz DOT and rasterized
// artifacts. It is a consumer of the chart format only: nothing here mutates
// the composition tree or its flattened view.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/brewlab/mixtree/pkg/chart"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes price, effects, and addictiveness in node labels
	// when the node carries attributes.
	Detailed bool
}

// ToDOT converts a chart to Graphviz DOT format. Node shapes and colors
// encode roles: the root is emphasized, leaves are plain, circular
// references are drawn dashed red, and collapsed nodes get a "+" badge.
// The resulting string can be rendered with [SVG] or [PNG].
func ToDOT(c chart.Chart, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph mixtree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, n := range c.Nodes {
		attrs := nodeAttrs(n, opts)
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range c.Edges {
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n chart.Node, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", nodeLabel(n, opts))}
	switch n.Role {
	case "root":
		attrs = append(attrs, "fillcolor=lightblue", "penwidth=2")
	case "circular":
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=mistyrose", "color=red")
	case "leaf":
		attrs = append(attrs, "fillcolor=whitesmoke")
	}
	return attrs
}

func nodeLabel(n chart.Node, opts Options) string {
	label := n.Label
	if n.HasHidden {
		label += " [+]"
	}
	if n.Role == "circular" {
		label += "\n(circular)"
	}
	if !opts.Detailed || (n.Role != "root" && n.Role != "composite") {
		return label
	}

	parts := []string{fmt.Sprintf("$%.0f", n.Price)}
	if n.Effects != "" {
		parts = append(parts, n.Effects)
	}
	parts = append(parts, fmt.Sprintf("addictiveness: %.2f", n.Addictiveness))
	return label + "\n" + strings.Join(parts, "\n")
}
