package telemetry

import (
	"log/slog"
	"time"
)

// Collector accumulates match records within one generation and produces a
// GenerationStats row when the generation finishes. A nil OutputManager
// means records are aggregated but nothing is written.
type Collector struct {
	out        *OutputManager
	logMatches bool

	generation int
	matches    int
	genStart   time.Time
}

// NewCollector creates a stats collector.
// logMatches: also write one CSV row per individual match.
func NewCollector(out *OutputManager, logMatches bool) *Collector {
	return &Collector{out: out, logMatches: logMatches}
}

// StartGeneration begins aggregation for a new generation.
func (c *Collector) StartGeneration(generation int) {
	c.generation = generation
	c.matches = 0
	c.genStart = time.Now()
}

// RecordMatch records one concluded match.
func (c *Collector) RecordMatch(rec MatchRecord) {
	c.matches++

	if c.logMatches {
		if err := c.out.WriteMatch(rec); err != nil {
			slog.Warn("failed to write match record", "error", err)
		}
	}
}

// FinishGeneration computes the generation's fitness distribution, writes
// the stats row, and returns it.
func (c *Collector) FinishGeneration(fitnesses []float64, species int) GenerationStats {
	stats := GenerationStats{
		Generation: c.generation,
		Matches:    c.matches,
		Population: len(fitnesses),
		Species:    species,
		ElapsedSec: time.Since(c.genStart).Seconds(),
	}

	stats.BestFitness, stats.MeanFitness, stats.StdDevFitness,
		stats.FitnessP10, stats.FitnessP50, stats.FitnessP90 = ComputeFitnessStats(fitnesses)

	if err := c.out.WriteGeneration(stats); err != nil {
		slog.Warn("failed to write generation stats", "error", err)
	}

	return stats
}
