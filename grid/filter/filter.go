package filter

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-grid2d/grid"
)

// Errors returned by filtering functions.
var (
	ErrEmptyGrid            = errors.New("filter: empty grid")
	ErrKernelTooLarge       = errors.New("filter: kernel exceeds image bounds in valid mode")
	ErrUnknownExtrapolation = errors.New("filter: unknown extrapolation policy")
)

// checkValid validates the inputs of a valid-mode operation.
func checkValid(image, kernel *grid.Grid) error {
	if image == nil || kernel == nil {
		return ErrEmptyGrid
	}
	if kernel.Rows() > image.Rows() || kernel.Cols() > image.Cols() {
		return fmt.Errorf("%w: kernel %dx%d, image %dx%d",
			ErrKernelTooLarge, kernel.Cols(), kernel.Rows(), image.Cols(), image.Rows())
	}
	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
