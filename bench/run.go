package bench

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-grid2d/grid"
	"github.com/cwbudde/algo-grid2d/grid/filter"
)

// Result holds the output of one benchmark invocation.
type Result struct {
	Input  *grid.Grid
	Kernel *grid.Grid
	Output *grid.Grid

	// Elapsed is the wall-clock duration of the first timed run.
	Elapsed time.Duration

	// Times holds the duration of every run, Stats their summary.
	Times []time.Duration
	Stats RunStats
}

// Seconds returns the first run's wall-clock time in seconds.
func (r *Result) Seconds() float64 {
	return r.Elapsed.Seconds()
}

// Generate synthesizes the benchmark's input image and kernel with the
// index-sum fill, value(i,j) = i + j.
func Generate(cfg Config) (input, kernel *grid.Grid, err error) {
	input, err = grid.IndexSum(cfg.ImageSide)
	if err != nil {
		return nil, nil, fmt.Errorf("bench: image: %w", err)
	}
	kernel, err = grid.IndexSum(cfg.KernelSide)
	if err != nil {
		return nil, nil, fmt.Errorf("bench: kernel: %w", err)
	}
	return input, kernel, nil
}

// Filter runs the configured filtering operation cfg.Runs times on the
// given grids, timing only the filter calls with the stdlib monotonic
// clock. Generation and reporting are excluded from the measurement.
func Filter(cfg Config, input, kernel *grid.Grid) (*Result, error) {
	runs := cfg.Runs
	if runs < 1 {
		runs = 1
	}

	times := make([]time.Duration, runs)
	var output *grid.Grid

	for r := range times {
		var err error
		start := time.Now()
		switch m := cfg.Mode.(type) {
		case Extrapolated:
			output, err = filter.Correlate(input, kernel, m.Policy)
		case FiniteSupport:
			output, err = filter.CorrelateValid(input, kernel)
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnknownMode, cfg.Mode)
		}
		times[r] = time.Since(start)
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		Input:   input,
		Kernel:  kernel,
		Output:  output,
		Elapsed: times[0],
		Times:   times,
		Stats:   CalcRunStats(times),
	}, nil
}

// Run generates the inputs and runs the configured filter, combining
// Generate and Filter for one-shot use.
func Run(cfg Config) (*Result, error) {
	input, kernel, err := Generate(cfg)
	if err != nil {
		return nil, err
	}
	return Filter(cfg, input, kernel)
}
