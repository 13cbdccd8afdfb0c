package recipe

import (
	"maps"
	"strings"

	"github.com/brewlab/mixtree/pkg/catalog"
)

// noRecipe is the placeholder some catalog exports use for drugs without
// a component list. It is treated the same as an empty recipe.
const noRecipe = "NaN"

// Lookup is the read-only record source consumed by the Resolver.
// *catalog.Catalog satisfies it.
type Lookup interface {
	// Find returns the record matching name (case-insensitive) and
	// whether one was found.
	Find(name string) (catalog.Record, bool)
}

// Resolver expands drug names into composition trees using a catalog.
// A Resolver is stateless apart from its catalog reference and can be
// reused across selections.
type Resolver struct {
	catalog Lookup
}

// NewResolver creates a resolver backed by the given catalog.
func NewResolver(c Lookup) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve expands drugName into a composition tree. The returned node has
// role [RoleRoot] when a catalog record exists, or [RoleLeaf] when it does
// not. All children start visible.
//
// Resolve never fails: missing records become leaves, cyclic references
// become [RoleCircular] nodes, and empty recipes yield zero children.
// Expansion depth is bounded by the number of distinct names in any
// ancestor chain, so Resolve terminates on fully cyclic catalogs.
func (r *Resolver) Resolve(drugName string) *CompositionNode {
	return r.expand(drugName, nil, true)
}

// expand builds the node for name given the set of lowercased ancestor
// labels. The path is cloned before descending so sibling branches never
// see each other's labels as ancestors.
func (r *Resolver) expand(name string, path map[string]struct{}, top bool) *CompositionNode {
	key := strings.ToLower(name)
	if _, onPath := path[key]; onPath {
		return &CompositionNode{Label: name, Role: RoleCircular}
	}

	rec, found := r.catalog.Find(name)
	if !found {
		return &CompositionNode{Label: name, Role: RoleLeaf}
	}

	role := RoleComposite
	if top {
		role = RoleRoot
	}
	node := &CompositionNode{
		Label: name,
		Role:  role,
		Attrs: &Attributes{
			RecipeText:    rec.Recipe,
			Price:         rec.Price,
			Effects:       rec.Effects,
			Addictiveness: rec.Addictiveness,
		},
	}

	components := ParseComponents(rec.Recipe)
	if len(components) == 0 {
		return node
	}

	for _, comp := range components {
		branch := maps.Clone(path)
		if branch == nil {
			branch = make(map[string]struct{}, 1)
		}
		branch[key] = struct{}{}
		node.visible = append(node.visible, r.expand(comp, branch, false))
	}
	return node
}

// ParseComponents splits a recipe text into its ordered component names.
// Components are separated by "+" with optional surrounding whitespace;
// empty tokens are discarded. An empty recipe or the literal "NaN" yields
// no components.
func ParseComponents(recipeText string) []string {
	trimmed := strings.TrimSpace(recipeText)
	if trimmed == "" || trimmed == noRecipe {
		return nil
	}
	var components []string
	for _, tok := range strings.Split(trimmed, "+") {
		if tok = strings.TrimSpace(tok); tok != "" {
			components = append(components, tok)
		}
	}
	return components
}
