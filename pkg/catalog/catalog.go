// Package catalog provides the read-only drug record catalog consumed by the
// recipe resolver. A catalog is an ordered collection of records loaded from
// a JSON file or a MongoDB collection; lookup is case-insensitive and
// deterministic (first match in catalog order wins on duplicate names).
package catalog

import (
	"strings"
)

// Record is a single drug entry in the source catalog.
//
// Recipe is a free-form component list separated by "+" (e.g. "Meth + Cuke").
// An empty recipe or the literal placeholder "NaN" means the drug has no
// listed components. Name uniqueness is assumed but not enforced.
type Record struct {
	Name          string  `json:"name" bson:"name"`
	Recipe        string  `json:"recipe" bson:"recipe"`
	Price         float64 `json:"price" bson:"price"`
	Effects       string  `json:"effects" bson:"effects"`
	Addictiveness float64 `json:"addictiveness" bson:"addictiveness"`
}

// Catalog is an ordered, immutable collection of records with a
// case-insensitive name index.
type Catalog struct {
	records []Record
	index   map[string]int // lowercased name -> first position in records
}

// New builds a catalog from records, preserving order. When two records
// share a name (ignoring case), lookups resolve to the earlier one.
func New(records []Record) *Catalog {
	c := &Catalog{
		records: records,
		index:   make(map[string]int, len(records)),
	}
	for i, r := range records {
		key := strings.ToLower(r.Name)
		if _, exists := c.index[key]; !exists {
			c.index[key] = i
		}
	}
	return c
}

// Find returns the record matching name, ignoring case.
// The second return value reports whether a record was found.
func (c *Catalog) Find(name string) (Record, bool) {
	i, ok := c.index[strings.ToLower(name)]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

// Records returns all records in catalog order.
// The returned slice must not be modified.
func (c *Catalog) Records() []Record { return c.records }

// Names returns the record names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.records))
	for i, r := range c.records {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }
