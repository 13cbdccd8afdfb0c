// Package cache provides pluggable byte caching for pipeline results.
//
// Three backends are included: a file cache for CLI usage, a Redis cache for
// server deployments, and a null cache that disables caching entirely. Keys
// are derived from content hashes via a [Keyer], so a changed catalog, drug,
// geometry, or format never serves a stale artifact.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs per cached stage.
const (
	// TTLChart is the lifetime of cached flowchart JSON.
	TTLChart = 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 7 * 24 * time.Hour
)

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// ChartKey identifies a flattened chart by catalog content, drug
	// name, and layout geometry.
	ChartKey(catalogHash, drug string, opts ChartKeyOpts) string

	// ArtifactKey identifies a rendered artifact by chart content and
	// render options.
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string
}

// ChartKeyOpts are the options that affect chart derivation.
type ChartKeyOpts struct {
	RootX    float64
	RootY    float64
	HSpacing float64
	VSpacing float64
}

// ArtifactKeyOpts are the options that affect artifact rendering.
type ArtifactKeyOpts struct {
	Format   string
	Detailed bool
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// ChartKey generates a key for chart caching.
func (k *DefaultKeyer) ChartKey(catalogHash, drug string, opts ChartKeyOpts) string {
	return hashKey("chart", catalogHash, drug, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", chartHash, opts)
}
