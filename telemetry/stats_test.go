package telemetry

import (
	"math"
	"testing"
)

func TestComputeFitnessStats(t *testing.T) {
	fitnesses := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	best, mean, stddev, p10, p50, p90 := ComputeFitnessStats(fitnesses)

	if best != 100 {
		t.Errorf("best = %v, want 100", best)
	}
	if math.Abs(mean-55) > 0.001 {
		t.Errorf("mean = %v, want 55", mean)
	}
	if stddev <= 0 {
		t.Errorf("stddev = %v, want positive", stddev)
	}
	if p10 > p50 || p50 > p90 {
		t.Errorf("percentiles out of order: p10=%v p50=%v p90=%v", p10, p50, p90)
	}
	if p50 < 40 || p50 > 60 {
		t.Errorf("p50 = %v, want near the median", p50)
	}
}

func TestComputeFitnessStatsEmpty(t *testing.T) {
	best, mean, stddev, p10, p50, p90 := ComputeFitnessStats(nil)

	if best != 0 || mean != 0 || stddev != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty input should return all zeros")
	}
}

func TestComputeFitnessStatsSingle(t *testing.T) {
	best, mean, stddev, _, p50, _ := ComputeFitnessStats([]float64{42})

	if best != 42 || mean != 42 || p50 != 42 {
		t.Errorf("single value: best=%v mean=%v p50=%v, want all 42", best, mean, p50)
	}
	if stddev != 0 {
		t.Errorf("stddev = %v, want 0 for a single value", stddev)
	}
}

func TestComputeFitnessStatsUnsortedInput(t *testing.T) {
	// The input order must not matter, and the caller's slice must not be
	// reordered.
	fitnesses := []float64{50, 10, 40, 20, 30}
	best, mean, _, _, _, _ := ComputeFitnessStats(fitnesses)

	if best != 50 {
		t.Errorf("best = %v, want 50", best)
	}
	if math.Abs(mean-30) > 0.001 {
		t.Errorf("mean = %v, want 30", mean)
	}
	if fitnesses[0] != 50 {
		t.Error("input slice was reordered")
	}
}
