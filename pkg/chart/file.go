package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteChart writes a chart as indented JSON to w.
func WriteChart(c Chart, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteChartFile writes a chart to a JSON file at path.
func WriteChartFile(c Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteChart(c, f)
}

// ReadChart decodes a JSON chart from r.
func ReadChart(r io.Reader) (Chart, error) {
	var c Chart
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Chart{}, fmt.Errorf("decode: %w", err)
	}
	return c, nil
}

// ReadChartFile reads a JSON chart file from path.
func ReadChartFile(path string) (Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return Chart{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadChart(f)
}
