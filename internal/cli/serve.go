package cli

import (
	"github.com/spf13/cobra"

	"github.com/brewlab/mixtree/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var flags catalogFlags
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve flowcharts over an HTTP API",
		Long: `Serve starts the mixtree HTTP API. The catalog source is shared by all
requests; drugs are resolved per request and rendered artifacts are cached
across them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, cfg, err := flags.options("")
			if err != nil {
				return err
			}

			runner, err := c.newRunner(cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			if addr == "" {
				addr = cfg.Server.Addr
			}

			srv := server.New(runner, server.Config{
				Addr:   addr,
				Base:   base,
				Logger: c.Logger,
			})
			printInfo("Serving on %s", addr)
			return srv.ListenAndServe()
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")

	return cmd
}
