// Package pipeline provides the core flowchart pipeline for mixtree.
//
// This package implements the load → resolve → layout → render flow shared
// by the CLI and the HTTP API. Centralizing it keeps behavior identical
// across entry points and gives both a single caching layer.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read the drug catalog from a JSON file or MongoDB
//  2. Chart: resolve the selected drug, flatten the tree, compute the layout
//  3. Render: produce output artifacts (json, dot, svg, png)
//
// Stages can be run independently or together via [Runner.Execute].
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	apperrors "github.com/brewlab/mixtree/pkg/errors"
	"github.com/brewlab/mixtree/pkg/recipe"
)

// Output format names.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, dot, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Catalog source: exactly one of CatalogPath or MongoURI is required.
	CatalogPath     string `json:"catalog_path,omitempty"`
	MongoURI        string `json:"mongo_uri,omitempty"`
	MongoDatabase   string `json:"mongo_database,omitempty"`
	MongoCollection string `json:"mongo_collection,omitempty"`

	// Drug is the name to resolve. Required.
	Drug string `json:"drug"`

	// Geometry configures the layout. Zero value means defaults.
	Geometry recipe.Geometry `json:"geometry,omitempty"`

	// Render options.
	Formats  []string `json:"formats,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`

	// Refresh bypasses cached results.
	Refresh bool `json:"refresh,omitempty"`

	// Logger receives progress output. Not serialized.
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks required fields and fills defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Drug == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "drug is required")
	}
	if err := apperrors.ValidateDrugName(o.Drug); err != nil {
		return err
	}
	if o.CatalogPath == "" && o.MongoURI == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "catalog path or mongo URI is required")
	}
	if o.MongoURI != "" && (o.MongoDatabase == "" || o.MongoCollection == "") {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "mongo database and collection are required with a mongo URI")
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if (o.Geometry == recipe.Geometry{}) {
		o.Geometry = recipe.DefaultGeometry()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// catalogSource names the catalog source for logging and instrumentation.
func (o Options) catalogSource() string {
	if o.MongoURI != "" {
		return "mongo"
	}
	return o.CatalogPath
}
