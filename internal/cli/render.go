package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/brewlab/mixtree/pkg/errors"
	"github.com/brewlab/mixtree/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "svg", "png", "dot", "json"
	detailed bool     // include prices, effects and addictiveness in node labels
	refresh  bool     // bypass cached results
	noCache  bool     // disable caching entirely
}

// renderCommand creates the render command for exporting flowcharts.
func (c *CLI) renderCommand() *cobra.Command {
	var flags catalogFlags
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <drug>",
		Short: "Render a drug flowchart to SVG, PNG, DOT or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.output != "" {
				if err := apperrors.ValidateOutputPath(opts.output); err != nil {
					return err
				}
			}
			return c.runRender(cmd, args[0], &flags, &opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show prices, effects and addictiveness")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

// runRender executes the pipeline and writes one file per requested format.
func (c *CLI) runRender(cmd *cobra.Command, drug string, flags *catalogFlags, opts *renderOpts) error {
	pipeOpts, cfg, err := flags.options(drug)
	if err != nil {
		return err
	}
	pipeOpts.Formats = opts.formats
	pipeOpts.Detailed = opts.detailed
	pipeOpts.Refresh = opts.refresh
	pipeOpts.Logger = c.Logger

	runner, err := c.newRunner(cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Rendering %s", drug))
	spin.Start()

	result, err := runner.Execute(cmd.Context(), pipeOpts)
	if err != nil {
		spin.StopWithError(fmt.Sprintf("Rendering %s failed", drug))
		return err
	}
	spin.StopWithSuccess(fmt.Sprintf("Rendered %s", drug))
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)

	base := basePath(opts.output, drug)
	for _, format := range opts.formats {
		path := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			path = opts.output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output flag and drug name.
// A recognized format extension on the output path is stripped so multiple
// formats do not stack extensions.
func basePath(output, drug string) string {
	if output == "" {
		return sanitizeFilename(drug)
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// sanitizeFilename converts a drug name to a safe file name.
func sanitizeFilename(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "/", "_")
	return name
}
