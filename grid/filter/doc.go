// Package filter provides 2-D correlation and convolution over grids.
//
// Two filtering geometries are supported:
//
//   - Valid (finite support): the kernel only visits positions where it
//     fully overlaps the image. The output shrinks to
//     (image_h - kernel_h + 1) x (image_w - kernel_w + 1).
//   - Extrapolated: out-of-bounds image indices are synthesized by a
//     boundary policy (reflect, constant, nearest, wrap, mirror) and
//     the output keeps the image's shape.
//
// # Usage
//
// For the shrinking geometry:
//
//	out, err := filter.CorrelateValid(image, kernel)
//
// For same-shape filtering with a boundary policy:
//
//	out, err := filter.Correlate(image, kernel, filter.Reflect)
//
// # Algorithm Selection
//
// CorrelateValid selects between a direct sliding-window implementation
// and an FFT-based one depending on the kernel area. Both are exported
// (CorrelateValidDirect, CorrelateValidFFT) for callers that want to pin
// the algorithm, e.g. when benchmarking.
package filter
