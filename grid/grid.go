// Package grid provides a row-major 2-D float64 grid with deterministic
// generators and bounded diagnostic summaries.
package grid

import (
	"errors"
	"fmt"
)

// Errors returned by grid constructors.
var (
	ErrInvalidSize = errors.New("grid: dimensions must be positive")
	ErrRaggedRows  = errors.New("grid: all rows must have the same length")
)

// Grid is a dense rows x cols matrix backed by a single row-major slice.
type Grid struct {
	rows int
	cols int
	data []float64
}

// New allocates a zero-filled grid with the given dimensions.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cols, rows)
	}
	return &Grid{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// FromRows builds a grid from a slice of equally sized rows.
// The values are copied; the input remains owned by the caller.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidSize
	}

	cols := len(rows[0])
	g, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, i, len(row), cols)
		}
		copy(g.Row(i), row)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the value at row i, column j.
func (g *Grid) At(i, j int) float64 {
	return g.data[i*g.cols+j]
}

// Set stores v at row i, column j.
func (g *Grid) Set(i, j int, v float64) {
	g.data[i*g.cols+j] = v
}

// Row returns row i as a slice sharing the grid's backing storage.
// Writes through the slice are visible in the grid.
func (g *Grid) Row(i int) []float64 {
	return g.data[i*g.cols : (i+1)*g.cols]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)
	return &Grid{rows: g.rows, cols: g.cols, data: data}
}

// Equal reports whether two grids have identical shape and values.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Describe returns a bounded three-line summary of the grid: a label,
// the shape as "cols x rows", and the first and last elements. It never
// renders the full contents, so the output stays small at any grid size.
func (g *Grid) Describe(name string) string {
	return fmt.Sprintf("%s:\n  %d x %d\n  [%g, ... , %g]",
		name, g.cols, g.rows, g.data[0], g.data[len(g.data)-1])
}
