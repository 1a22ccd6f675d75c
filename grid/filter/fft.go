package filter

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-grid2d/grid"
)

// CorrelateValidFFT performs valid-mode cross-correlation in the
// frequency domain: both grids are zero-padded to power-of-two
// dimensions, transformed row- then column-wise, the image spectrum is
// multiplied by the conjugate kernel spectrum, and the valid region is
// read from the inverse transform. The circular wrap of the product
// never reaches the valid region, so no output rearrangement is needed.
//
// This is the efficient path for large kernels; for small ones the
// padding and transforms outweigh the direct algorithm.
func CorrelateValidFFT(image, kernel *grid.Grid) (*grid.Grid, error) {
	if err := checkValid(image, kernel); err != nil {
		return nil, err
	}

	h := image.Rows()
	w := image.Cols()
	n := nextPowerOf2(h)
	m := nextPowerOf2(w)

	rowPlan, err := algofft.NewPlan64(m)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to create row FFT plan: %w", err)
	}
	colPlan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to create column FFT plan: %w", err)
	}

	a := padComplex(image, n, m)
	b := padComplex(kernel, n, m)

	if err := transform2D(a, rowPlan, colPlan, false); err != nil {
		return nil, err
	}
	if err := transform2D(b, rowPlan, colPlan, false); err != nil {
		return nil, err
	}

	// Multiply the image spectrum by the conjugate kernel spectrum;
	// in the spatial domain this is cross-correlation.
	for i := range a {
		arow := a[i]
		brow := b[i]
		for j := range arow {
			bc := complex(real(brow[j]), -imag(brow[j]))
			arow[j] *= bc
		}
	}

	if err := transform2D(a, rowPlan, colPlan, true); err != nil {
		return nil, err
	}

	out, err := grid.New(h-kernel.Rows()+1, w-kernel.Cols()+1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.Rows(); i++ {
		dst := out.Row(i)
		src := a[i]
		for j := range dst {
			dst[j] = real(src[j])
		}
	}
	return out, nil
}

// padComplex copies g into the top-left corner of an n x m complex grid.
func padComplex(g *grid.Grid, n, m int) [][]complex128 {
	rows := make([][]complex128, n)
	for i := range rows {
		rows[i] = make([]complex128, m)
	}
	for i := 0; i < g.Rows(); i++ {
		src := g.Row(i)
		dst := rows[i]
		for j, v := range src {
			dst[j] = complex(v, 0)
		}
	}
	return rows
}

// transform2D applies a separable 2-D FFT in place: each row through
// rowPlan, then each column through colPlan via a scratch buffer.
func transform2D(rows [][]complex128, rowPlan, colPlan *algofft.Plan[complex128], inverse bool) error {
	apply := func(plan *algofft.Plan[complex128], dst, src []complex128) error {
		if inverse {
			return plan.Inverse(dst, src)
		}
		return plan.Forward(dst, src)
	}

	for _, row := range rows {
		if err := apply(rowPlan, row, row); err != nil {
			return fmt.Errorf("filter: row FFT failed: %w", err)
		}
	}

	n := len(rows)
	col := make([]complex128, n)
	for j := range rows[0] {
		for i := 0; i < n; i++ {
			col[i] = rows[i][j]
		}
		if err := apply(colPlan, col, col); err != nil {
			return fmt.Errorf("filter: column FFT failed: %w", err)
		}
		for i := 0; i < n; i++ {
			rows[i][j] = col[i]
		}
	}
	return nil
}
