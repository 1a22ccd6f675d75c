package bench

import (
	"fmt"
	"math"
	"time"
)

// RunStats summarizes per-run wall-clock times in seconds.
type RunStats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// CalcRunStats computes run-time statistics in a single pass using
// Welford's online algorithm for a numerically stable variance.
func CalcRunStats(times []time.Duration) RunStats {
	if len(times) == 0 {
		return RunStats{}
	}

	var (
		mean float64
		m2   float64
	)
	minSec := times[0].Seconds()
	maxSec := minSec

	for i, d := range times {
		x := d.Seconds()
		if x < minSec {
			minSec = x
		}
		if x > maxSec {
			maxSec = x
		}

		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	var stddev float64
	if n := len(times); n > 1 {
		stddev = math.Sqrt(m2 / float64(n))
	}

	return RunStats{
		Min:    minSec,
		Max:    maxSec,
		Mean:   mean,
		StdDev: stddev,
	}
}

// String renders the statistics as a compact single line.
func (s RunStats) String() string {
	return fmt.Sprintf("min %g s, mean %g s, max %g s, stddev %g s",
		s.Min, s.Mean, s.Max, s.StdDev)
}
