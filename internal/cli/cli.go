// Package cli implements the mixtree command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/brewlab/mixtree/pkg/buildinfo"
	"github.com/brewlab/mixtree/pkg/cache"
	"github.com/brewlab/mixtree/pkg/config"
	"github.com/brewlab/mixtree/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "mixtree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "mixtree",
		Short:        "Mixtree visualizes drug recipes as composition flowcharts",
		Long:         `Mixtree is a CLI tool for exploring drug mixing recipes. It resolves a recipe into its full ingredient tree, detects circular recipes, and renders the result as an interactive or exported flowchart.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner using the cache backend from cfg.
func (c *CLI) newRunner(cfg config.Config, noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(cfg.Cache, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(cfg config.CacheConfig, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Backend == "none" {
		return cache.NewNullCache(), nil
	}
	if cfg.Backend == "redis" {
		return cache.NewRedisCache(context.Background(), cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}
	dir := cfg.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/mixtree/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// catalogFlags are the flags shared by every command that reads a catalog.
type catalogFlags struct {
	configPath      string
	catalogPath     string
	mongoURI        string
	mongoDatabase   string
	mongoCollection string
}

// register adds the shared catalog flags to cmd.
func (f *catalogFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default ~/.config/mixtree/config.toml)")
	cmd.Flags().StringVarP(&f.catalogPath, "catalog", "c", "", "catalog JSON file")
	cmd.Flags().StringVar(&f.mongoURI, "mongo-uri", "", "MongoDB connection URI (alternative to --catalog)")
	cmd.Flags().StringVar(&f.mongoDatabase, "mongo-db", "", "MongoDB database name")
	cmd.Flags().StringVar(&f.mongoCollection, "mongo-collection", "", "MongoDB collection name")
}

// options builds pipeline options from the shared flags and the config file.
func (f *catalogFlags) options(drug string) (pipeline.Options, config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return pipeline.Options{}, config.Config{}, err
	}
	return pipeline.Options{
		CatalogPath:     f.catalogPath,
		MongoURI:        f.mongoURI,
		MongoDatabase:   f.mongoDatabase,
		MongoCollection: f.mongoCollection,
		Drug:            drug,
		Geometry:        cfg.Geometry(),
	}, cfg, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
