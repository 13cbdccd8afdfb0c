package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brewlab/mixtree/pkg/chart"
	apperrors "github.com/brewlab/mixtree/pkg/errors"
)

// resolveCommand creates the resolve command for printing a composition tree.
func (c *CLI) resolveCommand() *cobra.Command {
	var flags catalogFlags
	var output string
	var detailed, refresh, noCache bool

	cmd := &cobra.Command{
		Use:   "resolve <drug>",
		Short: "Resolve a drug recipe into its full composition tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" {
				if err := apperrors.ValidateOutputPath(output); err != nil {
					return err
				}
			}
			opts, cfg, err := flags.options(args[0])
			if err != nil {
				return err
			}
			opts.Detailed = detailed
			opts.Refresh = refresh
			opts.Logger = c.Logger

			runner, err := c.newRunner(cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			result, err := runner.Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Resolved %s", args[0]))

			printTree(result.Chart, detailed)
			printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.ChartHit)

			if output != "" {
				if err := chart.WriteChartFile(result.Chart, output); err != nil {
					return err
				}
				printFile(output)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write flowchart JSON to file")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show prices, effects and addictiveness")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

// printTree prints the flowchart as an indented tree with box-drawing
// connectors. Nodes arrive in pre-order, so depth alone determines the
// branch structure.
func printTree(ch chart.Chart, detailed bool) {
	children := make(map[int][]int)
	for _, e := range ch.Edges {
		children[e.From] = append(children[e.From], e.To)
	}

	var walk func(id int, prefix string, last bool)
	walk = func(id int, prefix string, last bool) {
		node := ch.Nodes[id]

		connector := "├─ "
		childPrefix := prefix + "│  "
		if last {
			connector = "└─ "
			childPrefix = prefix + "   "
		}
		if node.Depth == 0 {
			connector = ""
			childPrefix = ""
		}

		fmt.Println(prefix + StyleDim.Render(connector) + nodeLabel(node, detailed))

		kids := children[id]
		for i, kid := range kids {
			walk(kid, childPrefix, i == len(kids)-1)
		}
	}
	if len(ch.Nodes) > 0 {
		walk(0, "", true)
	}
}

// nodeLabel formats a single tree line with role-dependent styling.
func nodeLabel(node chart.Node, detailed bool) string {
	label := node.Label
	switch node.Role {
	case "root":
		label = StyleTitle.Render(label)
	case "circular":
		label = styleCircular.Render(label) + " " + StyleDim.Render("(circular)")
	case "leaf":
		label = styleLeaf.Render(label)
	default:
		label = StyleValue.Render(label)
	}
	if node.HasHidden {
		label += " " + StyleHighlight.Render("[+]")
	}

	if detailed && node.Role != "leaf" && node.Role != "circular" {
		var parts []string
		if node.Price > 0 {
			parts = append(parts, fmt.Sprintf("$%.0f", node.Price))
		}
		if node.Effects != "" {
			parts = append(parts, node.Effects)
		}
		if node.Addictiveness > 0 {
			parts = append(parts, fmt.Sprintf("addictiveness %.2f", node.Addictiveness))
		}
		if len(parts) > 0 {
			label += " " + StyleDim.Render("("+strings.Join(parts, " · ")+")")
		}
	}
	return label
}
