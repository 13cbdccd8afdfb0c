package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brewlab/mixtree/pkg/cache"
	"github.com/brewlab/mixtree/pkg/catalog"
	"github.com/brewlab/mixtree/pkg/chart"
	apperrors "github.com/brewlab/mixtree/pkg/errors"
	"github.com/brewlab/mixtree/pkg/observability"
	"github.com/brewlab/mixtree/pkg/recipe"
	"github.com/brewlab/mixtree/pkg/render"
)

// Runner executes the pipeline with caching. It is stateless apart from the
// cache and logger, so one Runner can serve many requests with different
// options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching and a nil keyer
// selects the default SHA-256 keyer.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Catalog is the loaded record catalog.
	Catalog *catalog.Catalog

	// CatalogHash identifies the catalog content.
	CatalogHash string

	// Chart is the flattened, laid-out flowchart for the selected drug.
	Chart chart.Chart

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LoadTime   time.Duration
	ChartTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits per stage.
type CacheInfo struct {
	ChartHit  bool
	RenderHit bool
}

// Execute runs the complete load → chart → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.catalogSource())
	cat, catalogHash, err := r.LoadCatalog(ctx, opts)
	observability.Pipeline().OnLoadComplete(ctx, opts.catalogSource(), catLen(cat), time.Since(loadStart), err)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	result.Catalog = cat
	result.CatalogHash = catalogHash
	result.Stats.LoadTime = time.Since(loadStart)

	r.Logger.Info("loaded catalog",
		"records", cat.Len(),
		"duration", result.Stats.LoadTime)

	chartStart := time.Now()
	observability.Pipeline().OnResolveStart(ctx, opts.Drug)
	ch, chartHit, err := r.BuildChart(ctx, cat, catalogHash, opts)
	observability.Pipeline().OnResolveComplete(ctx, opts.Drug, len(ch.Nodes), time.Since(chartStart), err)
	if err != nil {
		return nil, fmt.Errorf("build chart: %w", err)
	}
	result.Chart = ch
	result.CacheInfo.ChartHit = chartHit
	result.Stats.ChartTime = time.Since(chartStart)
	result.Stats.NodeCount = len(ch.Nodes)
	result.Stats.EdgeCount = len(ch.Edges)

	r.Logger.Info("built flowchart",
		"drug", opts.Drug,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.ChartTime)

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderArtifacts(ctx, ch, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadCatalog reads the catalog from the configured source and returns it
// with a content hash used in cache keys.
func (r *Runner) LoadCatalog(ctx context.Context, opts Options) (*catalog.Catalog, string, error) {
	if opts.MongoURI != "" {
		src := &catalog.MongoSource{
			URI:        opts.MongoURI,
			Database:   opts.MongoDatabase,
			Collection: opts.MongoCollection,
		}
		cat, err := src.Load(ctx)
		if err != nil {
			return nil, "", err
		}
		var buf bytes.Buffer
		if err := catalog.WriteJSON(cat, &buf); err != nil {
			return nil, "", err
		}
		return cat, cache.Hash(buf.Bytes()), nil
	}

	data, err := os.ReadFile(opts.CatalogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "catalog %s not found", opts.CatalogPath)
		}
		return nil, "", fmt.Errorf("read %s: %w", opts.CatalogPath, err)
	}
	cat, err := catalog.ReadJSON(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	return cat, cache.Hash(data), nil
}

// BuildChart resolves the drug and produces its flattened, laid-out chart,
// consulting the cache first unless a refresh was requested.
func (r *Runner) BuildChart(ctx context.Context, cat *catalog.Catalog, catalogHash string, opts Options) (chart.Chart, bool, error) {
	key := r.Keyer.ChartKey(catalogHash, opts.Drug, chartKeyOpts(opts.Geometry))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if cached, err := chart.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "chart")
				return cached, true, nil
			}
			// Corrupt entry: fall through and recompute.
		}
	}
	observability.Cache().OnCacheMiss(ctx, "chart")

	root := recipe.NewResolver(cat).Resolve(opts.Drug)
	view := recipe.NewView(root, opts.Geometry)
	ch := chart.FromView(opts.Drug, view)

	if data, err := chart.Marshal(ch); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLChart)
		observability.Cache().OnCacheSet(ctx, "chart", len(data))
	}
	return ch, false, nil
}

// RenderArtifacts produces every requested format, serving all of them from
// cache when possible. The bool reports whether every artifact was cached.
func (r *Runner) RenderArtifacts(ctx context.Context, ch chart.Chart, opts Options) (map[string][]byte, bool, error) {
	data, err := chart.Marshal(ch)
	if err != nil {
		return nil, false, fmt.Errorf("serialize chart: %w", err)
	}
	chartHash := cache.Hash(data)

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(chartHash, cache.ArtifactKeyOpts{Format: format, Detailed: opts.Detailed})
		if !opts.Refresh {
			if cached, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = cached
				continue
			}
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		allCached = false

		out, err := r.renderFormat(ctx, ch, data, format, opts)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = out
		_ = r.Cache.Set(ctx, key, out, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(out))
	}

	return artifacts, allCached, nil
}

func (r *Runner) renderFormat(ctx context.Context, ch chart.Chart, chartJSON []byte, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return chartJSON, nil
	case FormatDOT:
		return []byte(render.ToDOT(ch, render.Options{Detailed: opts.Detailed})), nil
	case FormatSVG:
		return render.SVG(ctx, render.ToDOT(ch, render.Options{Detailed: opts.Detailed}))
	case FormatPNG:
		return render.PNG(ctx, render.ToDOT(ch, render.Options{Detailed: opts.Detailed}))
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// catLen is a nil-safe catalog length for instrumentation.
func catLen(cat *catalog.Catalog) int {
	if cat == nil {
		return 0
	}
	return cat.Len()
}

func chartKeyOpts(g recipe.Geometry) cache.ChartKeyOpts {
	return cache.ChartKeyOpts{
		RootX:    g.RootX,
		RootY:    g.RootY,
		HSpacing: g.HSpacing,
		VSpacing: g.VSpacing,
	}
}
