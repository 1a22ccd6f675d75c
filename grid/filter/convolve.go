package filter

import "github.com/cwbudde/algo-grid2d/grid"

// ConvolveValid performs 2-D linear convolution in valid mode.
// Convolution is correlation with the kernel rotated by 180 degrees,
// so the output geometry matches CorrelateValid.
func ConvolveValid(image, kernel *grid.Grid) (*grid.Grid, error) {
	if err := checkValid(image, kernel); err != nil {
		return nil, err
	}
	return CorrelateValid(image, rotate180(kernel))
}

// Convolve performs same-shape 2-D convolution with the named boundary
// policy, mirroring Correlate.
func Convolve(image, kernel *grid.Grid, policy Extrapolation) (*grid.Grid, error) {
	if image == nil || kernel == nil {
		return nil, ErrEmptyGrid
	}
	return Correlate(image, rotate180(kernel), policy)
}

// rotate180 returns the kernel flipped in both dimensions.
func rotate180(kernel *grid.Grid) *grid.Grid {
	out := kernel.Clone()
	kh := kernel.Rows()
	kw := kernel.Cols()
	for i := 0; i < kh; i++ {
		src := kernel.Row(kh - 1 - i)
		dst := out.Row(i)
		for j := 0; j < kw; j++ {
			dst[j] = src[kw-1-j]
		}
	}
	return out
}
