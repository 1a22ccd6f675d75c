// Package testutil provides shared helpers for grid and filter tests.
package testutil

import (
	"testing"

	"github.com/cwbudde/algo-grid2d/grid"
)

// IndexSumGrid builds a side x side grid with value(i,j) = i + j,
// failing the test on constructor errors.
func IndexSumGrid(t *testing.T, side int) *grid.Grid {
	t.Helper()
	g, err := grid.IndexSum(side)
	if err != nil {
		t.Fatalf("index-sum grid side=%d: %v", side, err)
	}
	return g
}

// GridFromRows builds a grid from literal rows, failing the test on
// constructor errors.
func GridFromRows(t *testing.T, rows [][]float64) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("grid from rows: %v", err)
	}
	return g
}
