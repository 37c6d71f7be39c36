package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/sunburst/pkg/label"
)

// WritePlacements encodes placements as an indented JSON array. A nil
// slice is written as [].
func WritePlacements(w io.Writer, ps []label.Placement) error {
	if ps == nil {
		ps = []label.Placement{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ps); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportPlacements writes placements to a JSON file at path.
func ExportPlacements(path string, ps []label.Placement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePlacements(f, ps); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
