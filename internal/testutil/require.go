package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-grid2d/grid"
)

// RequireShape fails t if g does not have the given dimensions.
func RequireShape(t *testing.T, g *grid.Grid, rows, cols int) {
	t.Helper()
	if g.Rows() != rows || g.Cols() != cols {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", g.Rows(), g.Cols(), rows, cols)
	}
}

// RequireGridEqual fails t if got and want differ in shape or in any
// element (exact comparison).
func RequireGridEqual(t *testing.T, got, want *grid.Grid) {
	t.Helper()
	RequireShape(t, got, want.Rows(), want.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			if got.At(i, j) != want.At(i, j) {
				t.Fatalf("element (%d,%d): got %v, want %v", i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
}

// RequireGridNearlyEqual fails t if got and want differ in shape or if
// any element pair exceeds eps (absolute tolerance).
func RequireGridNearlyEqual(t *testing.T, got, want *grid.Grid, eps float64) {
	t.Helper()
	RequireShape(t, got, want.Rows(), want.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			diff := math.Abs(got.At(i, j) - want.At(i, j))
			if diff > eps {
				t.Fatalf("element (%d,%d): got %v, want %v (diff %v > eps %v)",
					i, j, got.At(i, j), want.At(i, j), diff, eps)
			}
		}
	}
}
