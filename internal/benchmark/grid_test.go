package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	grid, err := Default()
	require.NoError(t, err)

	// Core weekday working hours carry the reference load; Sundays are
	// fully clear in the default schedule.
	assert.Equal(t, 8.0, grid[0][10])
	assert.Equal(t, 8.0, grid[4][14])
	for hour := 0; hour < 24; hour++ {
		assert.Zero(t, grid[6][hour], "sunday hour %d", hour)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	require.NoError(t, os.WriteFile(path, defaultGridJSON, 0o644))

	grid, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 8.0, grid[0][10])
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParse_BadShape(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{"},
		{name: "too few rows", data: "[[1,2,3]]"},
		{name: "short row", data: `[[1],[1],[1],[1],[1],[1],[1]]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
