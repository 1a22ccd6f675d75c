package filter

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-grid2d/grid"
)

// Correlate performs same-shape 2-D cross-correlation: out-of-bounds
// image indices are synthesized by the boundary policy and the output
// keeps the image's shape. The kernel is centered at
// (kernel_h/2, kernel_w/2), so a 3x3 kernel looks one element in every
// direction.
//
// Unlike valid mode, the kernel may be larger than the image.
func Correlate(image, kernel *grid.Grid, policy Extrapolation) (*grid.Grid, error) {
	if image == nil || kernel == nil {
		return nil, ErrEmptyGrid
	}
	if _, ok := extrapolationNames[policy]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownExtrapolation, int(policy))
	}

	h := image.Rows()
	w := image.Cols()
	kh := kernel.Rows()
	kw := kernel.Cols()
	ch := kh / 2
	cw := kw / 2

	out, err := grid.New(h, w)
	if err != nil {
		return nil, err
	}

	// Kernel-row source rows for the current output row, -1 meaning the
	// whole row reads as zero under the Constant policy.
	srcRows := make([]int, kh)

	for i := 0; i < h; i++ {
		for u := range srcRows {
			srcRows[u] = extend(i+u-ch, h, policy)
		}
		dst := out.Row(i)

		for j := 0; j < w; j++ {
			left := j - cw
			if left >= 0 && left+kw <= w {
				// Interior columns: every kernel row maps onto a
				// contiguous in-bounds image segment.
				var sum float64
				for u := 0; u < kh; u++ {
					si := srcRows[u]
					if si < 0 {
						continue
					}
					sum += vecmath.DotProduct(image.Row(si)[left:left+kw], kernel.Row(u))
				}
				dst[j] = sum
				continue
			}

			// Border columns need per-element index mapping.
			var sum float64
			for u := 0; u < kh; u++ {
				si := srcRows[u]
				if si < 0 {
					continue
				}
				src := image.Row(si)
				krow := kernel.Row(u)
				for v := 0; v < kw; v++ {
					sj := extend(left+v, w, policy)
					if sj < 0 {
						continue
					}
					sum += src[sj] * krow[v]
				}
			}
			dst[j] = sum
		}
	}
	return out, nil
}
