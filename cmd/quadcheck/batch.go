package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/quad"
)

// batchEntry is one labeled vertex set in a YAML batch file:
//
//	- name: unit square
//	  vertices: [[0, 0], [1, 0], [1, 1], [0, 1]]
type batchEntry struct {
	Name     string       `yaml:"name"`
	Vertices [][2]float64 `yaml:"vertices"`
}

// loadBatch reads and validates a YAML batch file.
func loadBatch(path string) ([]batchEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	var entries []batchEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse batch file: %w", err)
	}

	for i, e := range entries {
		if len(e.Vertices) != 4 {
			return nil, fmt.Errorf("entry %d (%q): want 4 vertices, got %d", i, e.Name, len(e.Vertices))
		}
	}
	return entries, nil
}

// classifyBatch classifies every entry of a batch file, printing one
// "name: shape" line per entry. Entries with malformed vertices report the
// error inline and do not abort the rest of the batch.
func classifyBatch(cmd *cobra.Command, path string, tol quad.Tolerances) error {
	entries, err := loadBatch(path)
	if err != nil {
		return err
	}

	for _, e := range entries {
		var pts [4]quad.Point
		for i, v := range e.Vertices {
			pts[i] = quad.Pt(v[0], v[1])
		}

		res, err := quad.Classify(pts, tol)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %v\n", e.Name, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", e.Name, res.Shape)
	}
	return nil
}
