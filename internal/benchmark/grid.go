// Package benchmark supplies the static reference hour-bucket grid the
// benchmark differ compares user heatmaps against. The default grid models a
// conventional weekday schedule; deployments can override it with a JSON file
// of the same 7x24 shape.
package benchmark

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/workpulse/backend/internal/models"
)

//go:embed default_grid.json
var defaultGridJSON []byte

// Default returns the built-in reference grid.
func Default() (*models.BenchmarkGrid, error) {
	return parse(defaultGridJSON)
}

// LoadFile reads an operator-supplied override grid from disk.
func LoadFile(path string) (*models.BenchmarkGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark grid: %w", err)
	}
	return parse(data)
}

// parse decodes and shape-checks a 7x24 JSON array of hours.
func parse(data []byte) (*models.BenchmarkGrid, error) {
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse benchmark grid: %w", err)
	}
	if len(rows) != 7 {
		return nil, fmt.Errorf("benchmark grid must have 7 weekday rows, got %d", len(rows))
	}

	var grid models.BenchmarkGrid
	for i, row := range rows {
		if len(row) != 24 {
			return nil, fmt.Errorf("benchmark grid row %d must have 24 hours, got %d", i, len(row))
		}
		copy(grid[i][:], row)
	}
	return &grid, nil
}
