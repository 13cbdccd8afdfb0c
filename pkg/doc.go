// Package pkg provides the core libraries for mixtree flowchart generation.
//
// # Overview
//
// Mixtree turns drug mixing recipes into composition flowcharts: every
// ingredient that itself has a recipe expands into its own subtree, down to
// base ingredients. The pkg directory is organized into focused areas:
//
//  1. [recipe] - Domain logic (recipe resolution, flattening, layout, expand/collapse)
//  2. [catalog] - Recipe catalog loading (JSON files, MongoDB)
//  3. [chart] - Serialization types for flattened flowcharts
//  4. [render] - DOT generation and Graphviz rasterization
//  5. [pipeline] - Orchestration (load → chart → render) with caching
//  6. [cache] - Pluggable cache backends (file, Redis)
//
// # Architecture
//
// The typical data flow through mixtree:
//
//	Catalog (JSON file or MongoDB)
//	         ↓
//	recipe.Resolver  →  composition tree (cycle-safe)
//	         ↓
//	recipe.Flatten + Layout  →  positioned nodes and edges
//	         ↓
//	chart.FromView  →  serializable flowchart
//	         ↓
//	render.ToDOT / SVG / PNG
//
// The CLI (internal/cli) and the HTTP API (internal/server) are thin layers
// over [pipeline.Runner], so both share one cache and identical semantics.
package pkg
