package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/brewlab/mixtree/pkg/recipe"
)

// viewCommand creates the view command for interactive tree exploration.
func (c *CLI) viewCommand() *cobra.Command {
	var flags catalogFlags
	var detailed bool

	cmd := &cobra.Command{
		Use:   "view <drug>",
		Short: "Explore a drug composition tree interactively",
		Long: `View opens an interactive terminal UI for the drug's composition tree.
Ingredients with sub-recipes can be expanded and collapsed one by one or
all at once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := flags.options(args[0])
			if err != nil {
				return err
			}
			opts.Logger = c.Logger

			runner, err := c.newRunner(cfg, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			cat, _, err := runner.LoadCatalog(cmd.Context(), opts)
			if err != nil {
				return err
			}

			root := recipe.NewResolver(cat).Resolve(args[0])
			view := recipe.NewView(root, opts.Geometry)

			model := newViewModel(args[0], view, detailed)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show prices, effects and addictiveness")

	return cmd
}
