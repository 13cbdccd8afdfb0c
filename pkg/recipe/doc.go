// Package recipe implements the composition-tree engine at the heart of
// mixtree: recursive expansion of a drug recipe into a tree of components,
// flattening that tree into a renderable node/edge list, centered flowchart
// layout, and the expand/collapse state transitions that keep the derived
// structure consistent.
//
// # Pipeline
//
// The stages mirror the data flow of the application:
//
//	catalog → Resolver.Resolve → *CompositionNode
//	        → Flatten           → ([]FlatNode, []FlatEdge)
//	        → Layout            → x/y coordinates on each FlatNode
//
// A [View] bundles one resolved tree with its derived flat structure and
// re-derives nodes and edges after every toggle. Renderers consume the
// FlatNode/FlatEdge snapshot read-only.
//
// # Error model
//
// Resolution never fails: a component name with no catalog record becomes a
// [RoleLeaf] node, a name already present in the current ancestor chain
// becomes a [RoleCircular] node, and an empty or malformed recipe text simply
// yields zero components. Expansion is bounded by the ancestor-path check and
// terminates on arbitrarily cyclic catalogs.
//
// All types in this package are single-goroutine: a tree is owned by one
// active selection at a time, and a flat snapshot handed to a concurrent
// renderer must be treated as immutable for the duration of the draw.
package recipe
