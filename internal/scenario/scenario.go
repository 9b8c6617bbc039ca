// Package scenario loads the literal boundary scenarios from spec.md §8
// (S1-S6) out of a YAML fixture file instead of Go literals, giving the
// teacher's yaml.v3 dependency a genuine home in this repo rather than
// leaving it a transitive-only testify dependency.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Point mirrors vorolath.Point's shape for decoding; kept separate so this
// package never imports the root package (scenario is a test-support leaf,
// loaded from the root package's own _test.go files).
type Point struct {
	X, Y float64
}

// GraphEdgeExpectation describes one expected boundary segment of a site's
// ring: its neighbor site index, or -1 for a clip-border segment.
type GraphEdgeExpectation struct {
	Neighbor int `yaml:"neighbor"`
}

// SiteExpectation describes the expected shape of one surviving site's
// cell.
type SiteExpectation struct {
	GraphEdgeCount int `yaml:"graph_edge_count"`
}

// Scenario is one named boundary case from spec.md §8.
type Scenario struct {
	Name        string            `yaml:"name"`
	Points      []Point           `yaml:"points"`
	RectMin     *Point            `yaml:"rect_min"`
	RectMax     *Point            `yaml:"rect_max"`
	SiteCount   int               `yaml:"site_count"`
	TotalEdges  int               `yaml:"total_edges,omitempty"`
	NoZeroEdges bool              `yaml:"no_zero_length_edges,omitempty"`
	Sites       []SiteExpectation `yaml:"sites,omitempty"`
}

// File is the top-level shape of testdata/scenarios.yaml.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and decodes a scenarios YAML fixture file from path.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("scenario: decode %s: %w", path, err)
	}
	return f.Scenarios, nil
}
