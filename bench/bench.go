// Package bench provides a one-shot wall-clock micro-benchmark harness
// for 2-D grid filtering: synthetic input generation, timed filter
// dispatch, and run statistics.
package bench

import (
	"errors"

	"github.com/cwbudde/algo-grid2d/grid/filter"
)

// ErrUnknownMode is returned when a Config carries a Mode that is
// neither FiniteSupport nor Extrapolated (including a nil Mode).
var ErrUnknownMode = errors.New("bench: unknown filtering mode")

// Mode selects between the two filtering geometries. It is a sealed
// sum type: exactly FiniteSupport and Extrapolated implement it, and
// dispatch happens via an exhaustive type switch.
type Mode interface {
	isMode()
}

// FiniteSupport selects valid-mode correlation: no boundary padding,
// output shrinks by the kernel extent.
type FiniteSupport struct{}

func (FiniteSupport) isMode() {}

// Extrapolated selects same-shape correlation under the given boundary
// policy.
type Extrapolated struct {
	Policy filter.Extrapolation
}

func (Extrapolated) isMode() {}

// Config defines a benchmark invocation.
type Config struct {
	ImageSide  int
	KernelSide int
	Runs       int
	Mode       Mode
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default benchmark parameters.
func DefaultConfig() Config {
	return Config{
		ImageSide:  2048,
		KernelSide: 5,
		Runs:       1,
		Mode:       FiniteSupport{},
	}
}

// WithImageSide sets the side length of the square input image.
func WithImageSide(side int) Option {
	return func(cfg *Config) {
		if side > 0 {
			cfg.ImageSide = side
		}
	}
}

// WithKernelSide sets the side length of the square kernel.
func WithKernelSide(side int) Option {
	return func(cfg *Config) {
		if side > 0 {
			cfg.KernelSide = side
		}
	}
}

// WithRuns sets the number of timed repetitions of the filter call.
func WithRuns(runs int) Option {
	return func(cfg *Config) {
		if runs > 0 {
			cfg.Runs = runs
		}
	}
}

// WithMode sets the filtering mode.
func WithMode(mode Mode) Option {
	return func(cfg *Config) {
		if mode != nil {
			cfg.Mode = mode
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
