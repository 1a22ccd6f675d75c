package bench

import (
	"math"
	"testing"
	"time"
)

func TestCalcRunStats(t *testing.T) {
	times := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		3 * time.Second,
	}

	s := CalcRunStats(times)

	if s.Min != 1 {
		t.Errorf("Min = %v, want 1", s.Min)
	}
	if s.Max != 3 {
		t.Errorf("Max = %v, want 3", s.Max)
	}
	if s.Mean != 2 {
		t.Errorf("Mean = %v, want 2", s.Mean)
	}
	// Population stddev of {1,2,3} is sqrt(2/3)
	if want := math.Sqrt(2.0 / 3.0); math.Abs(s.StdDev-want) > 1e-12 {
		t.Errorf("StdDev = %v, want %v", s.StdDev, want)
	}
}

func TestCalcRunStatsSingleRun(t *testing.T) {
	s := CalcRunStats([]time.Duration{250 * time.Millisecond})

	if s.Min != 0.25 || s.Max != 0.25 || s.Mean != 0.25 {
		t.Errorf("unexpected stats: %+v", s)
	}
	if s.StdDev != 0 {
		t.Errorf("StdDev = %v, want 0 for a single run", s.StdDev)
	}
}

func TestCalcRunStatsEmpty(t *testing.T) {
	s := CalcRunStats(nil)
	if s != (RunStats{}) {
		t.Errorf("expected zero stats, got %+v", s)
	}
}

func TestRunStatsString(t *testing.T) {
	s := RunStats{Min: 0.5, Max: 1.5, Mean: 1, StdDev: 0.25}
	want := "min 0.5 s, mean 1 s, max 1.5 s, stddev 0.25 s"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
