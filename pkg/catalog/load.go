package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON decodes a catalog from r.
//
// The input must be a JSON array of record objects:
//
//	[
//	  {"name": "Grandaddy Purple", "recipe": "", "price": 35},
//	  {"name": "Jet Fuel", "recipe": "Meth + Energy Drink", "price": 50}
//	]
//
// Record order is preserved; it determines lookup priority for duplicate
// names. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Catalog, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(records), nil
}

// LoadFile reads a JSON catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes the catalog as an indented JSON array to w.
// The output round-trips through [ReadJSON].
func WriteJSON(c *Catalog, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.Records()); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}
