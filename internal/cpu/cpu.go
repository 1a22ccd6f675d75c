// Package cpu reports the SIMD capabilities of the host processor for
// benchmark output. Detection runs once and is cached.
package cpu

import (
	"strings"
	"sync"
)

// Features describes the CPU capabilities relevant to the vector math
// used by the filtering kernels.
type Features struct {
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool

	Architecture string // runtime.GOARCH
}

var (
	detected   Features
	detectOnce sync.Once
)

// Detect returns the host CPU features. Thread-safe; the underlying
// detection runs exactly once.
func Detect() Features {
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	return detected
}

// Summary returns a one-line description such as "amd64 (SSE2 AVX2)"
// for inclusion in benchmark reports.
func Summary() string {
	f := Detect()

	var simd []string
	if f.HasSSE2 {
		simd = append(simd, "SSE2")
	}
	if f.HasAVX {
		simd = append(simd, "AVX")
	}
	if f.HasAVX2 {
		simd = append(simd, "AVX2")
	}
	if f.HasAVX512 {
		simd = append(simd, "AVX-512")
	}
	if f.HasNEON {
		simd = append(simd, "NEON")
	}
	if len(simd) == 0 {
		return f.Architecture + " (generic)"
	}
	return f.Architecture + " (" + strings.Join(simd, " ") + ")"
}
