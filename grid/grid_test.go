package grid

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	g, err := New(3, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("shape: got %dx%d, want 3x4", g.Rows(), g.Cols())
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			if g.At(i, j) != 0 {
				t.Errorf("element (%d,%d) = %v, want 0", i, j, g.At(i, j))
			}
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
	}{
		{"zero rows", 0, 4},
		{"zero cols", 4, 0},
		{"negative rows", -1, 4},
		{"negative cols", 4, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows, tt.cols)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("expected ErrInvalidSize, got %v", err)
			}
		})
	}
}

func TestFromRows(t *testing.T) {
	g, err := FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("shape: got %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	if g.At(1, 2) != 6 {
		t.Errorf("element (1,2) = %v, want 6", g.At(1, 2))
	}
}

func TestFromRowsErrors(t *testing.T) {
	_, err := FromRows(nil)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize for nil input, got %v", err)
	}

	_, err = FromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, ErrRaggedRows) {
		t.Errorf("expected ErrRaggedRows, got %v", err)
	}
}

func TestSetAndRowSharing(t *testing.T) {
	g, err := New(2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g.Set(0, 1, 7)
	if g.At(0, 1) != 7 {
		t.Fatalf("At after Set: got %v, want 7", g.At(0, 1))
	}

	// Row shares backing storage
	g.Row(1)[0] = 9
	if g.At(1, 0) != 9 {
		t.Errorf("At after Row write: got %v, want 9", g.At(1, 0))
	}
}

func TestCloneIsDeep(t *testing.T) {
	g, err := FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}

	c.Set(0, 0, 99)
	if g.At(0, 0) != 1 {
		t.Error("mutating the clone changed the original")
	}
}

func TestEqual(t *testing.T) {
	a, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := FromRows([][]float64{{1, 2}, {3, 4}})
	c, _ := FromRows([][]float64{{1, 2}, {3, 5}})
	d, _ := FromRows([][]float64{{1, 2, 3, 4}})

	if !a.Equal(b) {
		t.Error("identical grids should be equal")
	}
	if a.Equal(c) {
		t.Error("grids with different values should not be equal")
	}
	if a.Equal(d) {
		t.Error("grids with different shapes should not be equal")
	}
}

func TestDescribe(t *testing.T) {
	g, err := FromRows([][]float64{
		{0, 1, 2},
		{1, 2, 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "input:\n  3 x 2\n  [0, ... , 3]"
	if got := g.Describe("input"); got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}

	// Idempotent: repeated calls yield identical text
	if g.Describe("input") != g.Describe("input") {
		t.Error("Describe should be idempotent")
	}
}
