package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// MatchRecord is one row of matches.csv: a single concluded pairing.
type MatchRecord struct {
	Generation  int     `csv:"generation"`
	LeftGenome  int     `csv:"left_genome"`
	RightGenome int     `csv:"right_genome"`
	LeftHits    int     `csv:"left_hits"`
	RightHits   int     `csv:"right_hits"`
	LeftScore   int     `csv:"left_score"`
	RightScore  int     `csv:"right_score"`
	Ticks       int     `csv:"ticks"`
	DurationSec float64 `csv:"duration_sec"`
	Conclusion  string  `csv:"conclusion"`
}

// GenerationStats is one row of generations.csv: the fitness distribution
// of a whole population after evaluation.
type GenerationStats struct {
	Generation int `csv:"generation"`
	Matches    int `csv:"matches"`
	Population int `csv:"population"`
	Species    int `csv:"species"`

	BestFitness   float64 `csv:"best_fitness"`
	MeanFitness   float64 `csv:"mean_fitness"`
	StdDevFitness float64 `csv:"stddev_fitness"`
	FitnessP10    float64 `csv:"fitness_p10"`
	FitnessP50    float64 `csv:"fitness_p50"`
	FitnessP90    float64 `csv:"fitness_p90"`

	ElapsedSec float64 `csv:"elapsed_sec"`
}

// ComputeFitnessStats fills the distribution fields of a GenerationStats
// from the population's fitness values. Empty input leaves everything zero.
func ComputeFitnessStats(fitnesses []float64) (best, mean, stddev, p10, p50, p90 float64) {
	n := len(fitnesses)
	if n == 0 {
		return 0, 0, 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, fitnesses)
	sort.Float64s(sorted)

	best = sorted[n-1]
	mean = stat.Mean(sorted, nil)
	if n > 1 {
		stddev = stat.StdDev(sorted, nil)
	}
	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return best, mean, stddev, p10, p50, p90
}
