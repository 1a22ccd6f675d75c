package filter

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-grid2d/grid"
)

// fftThreshold is the kernel area above which CorrelateValid switches
// from the direct sliding-window implementation to the FFT path.
const fftThreshold = 256

// CorrelateValid performs 2-D cross-correlation in valid mode with
// automatic algorithm selection. The output has shape
// (image_h - kernel_h + 1) x (image_w - kernel_w + 1), with
//
//	out(i,j) = sum over (u,v) of image(i+u, j+v) * kernel(u,v).
//
// Returns ErrKernelTooLarge when the kernel exceeds the image in either
// dimension.
func CorrelateValid(image, kernel *grid.Grid) (*grid.Grid, error) {
	if err := checkValid(image, kernel); err != nil {
		return nil, err
	}
	if kernel.Rows()*kernel.Cols() >= fftThreshold {
		return CorrelateValidFFT(image, kernel)
	}
	return CorrelateValidDirect(image, kernel)
}

// CorrelateValidDirect performs valid-mode cross-correlation with the
// direct O(H*W*Kh*Kw) sliding-window algorithm. Best for small kernels.
func CorrelateValidDirect(image, kernel *grid.Grid) (*grid.Grid, error) {
	if err := checkValid(image, kernel); err != nil {
		return nil, err
	}

	outH := image.Rows() - kernel.Rows() + 1
	outW := image.Cols() - kernel.Cols() + 1
	out, err := grid.New(outH, outW)
	if err != nil {
		return nil, err
	}

	// Use SIMD-accelerated row dot products for kernel rows >= 4 taps
	const simdThreshold = 4
	if kernel.Cols() >= simdThreshold {
		correlateValidSIMD(out, image, kernel)
	} else {
		correlateValidScalar(out, image, kernel)
	}
	return out, nil
}

// correlateValidSIMD accumulates one dot product per kernel row,
// letting vecmath vectorize the innermost loop.
func correlateValidSIMD(out, image, kernel *grid.Grid) {
	kh := kernel.Rows()
	kw := kernel.Cols()

	for i := 0; i < out.Rows(); i++ {
		dst := out.Row(i)
		for u := 0; u < kh; u++ {
			src := image.Row(i + u)
			krow := kernel.Row(u)
			for j := range dst {
				dst[j] += vecmath.DotProduct(src[j:j+kw], krow)
			}
		}
	}
}

// correlateValidScalar handles kernels too narrow to benefit from SIMD.
func correlateValidScalar(out, image, kernel *grid.Grid) {
	kh := kernel.Rows()
	kw := kernel.Cols()

	for i := 0; i < out.Rows(); i++ {
		dst := out.Row(i)
		for u := 0; u < kh; u++ {
			src := image.Row(i + u)
			krow := kernel.Row(u)
			for j := range dst {
				var sum float64
				for v := 0; v < kw; v++ {
					sum += src[j+v] * krow[v]
				}
				dst[j] += sum
			}
		}
	}
}
