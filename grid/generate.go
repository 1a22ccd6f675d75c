package grid

import "fmt"

// IndexSum generates a side x side grid with value(i,j) = i + j.
// The fill is deterministic and position-dependent, which makes
// indexing mistakes in downstream filtering visible in the output.
func IndexSum(side int) (*Grid, error) {
	g, err := New(side, side)
	if err != nil {
		return nil, fmt.Errorf("grid: index-sum fill: %w", err)
	}
	for i := 0; i < side; i++ {
		row := g.Row(i)
		for j := range row {
			row[j] = float64(i + j)
		}
	}
	return g, nil
}

// Constant generates a side x side grid with every element set to v.
func Constant(side int, v float64) (*Grid, error) {
	g, err := New(side, side)
	if err != nil {
		return nil, fmt.Errorf("grid: constant fill: %w", err)
	}
	for i := range g.data {
		g.data[i] = v
	}
	return g, nil
}

// Ones generates a side x side grid of ones.
func Ones(side int) (*Grid, error) {
	return Constant(side, 1)
}
