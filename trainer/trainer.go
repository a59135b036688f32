package trainer

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/baldhumanity/neat-go/neat"

	"github.com/pthm-cable/rally/config"
	"github.com/pthm-cable/rally/telemetry"
)

// Trainer runs the NEAT generation loop: evaluate the population with
// round-robin matches, let the library reproduce, checkpoint, repeat. The
// evolution algorithm itself lives entirely in neat-go; the trainer only
// supplies the fitness function and the bookkeeping around it.
type Trainer struct {
	cfg       *config.Config
	collector *telemetry.Collector
	rng       *rand.Rand
	pop       *neat.Population

	// evaluated holds the fitness values captured at the end of the last
	// evalGenomes run, before reproduction replaced the population.
	evaluated []float64
}

// New creates a trainer. The seed drives every serve in every evaluation
// match, so a fixed seed makes a training run's matches reproducible.
func New(cfg *config.Config, collector *telemetry.Collector, seed int64) *Trainer {
	return &Trainer{
		cfg:       cfg,
		collector: collector,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Run trains until the configured generation count is reached or the
// library reports a fitness-threshold winner, resuming from the latest
// checkpoint when one exists. It returns the best genome found.
func (t *Trainer) Run() (*neat.Genome, error) {
	train := &t.cfg.Training

	neatCfg, err := neat.LoadConfig(train.NEATConfig)
	if err != nil {
		return nil, fmt.Errorf("loading NEAT config: %w", err)
	}

	if err := t.initPopulation(neatCfg); err != nil {
		return nil, err
	}

	if t.pop.Generation >= train.Generations {
		slog.Info("training already complete", "generation", t.pop.Generation)
		return t.pop.BestGenome, nil
	}

	for t.pop.Generation < train.Generations {
		t.collector.StartGeneration(t.pop.Generation + 1)

		winner, err := t.pop.RunGeneration(t.evalGenomes)
		if err != nil {
			return nil, fmt.Errorf("generation %d: %w", t.pop.Generation, err)
		}

		stats := t.collector.FinishGeneration(t.evaluated, len(t.pop.SpeciesSet.Species))
		slog.Info("generation complete",
			"generation", stats.Generation,
			"matches", stats.Matches,
			"population", stats.Population,
			"species", stats.Species,
			"best_fitness", stats.BestFitness,
			"mean_fitness", stats.MeanFitness,
			"elapsed_sec", stats.ElapsedSec,
		)

		if err := t.maybeCheckpoint(); err != nil {
			slog.Warn("failed to save checkpoint", "generation", t.pop.Generation, "error", err)
		}

		if winner != nil {
			slog.Info("fitness threshold met", "generation", t.pop.Generation, "fitness", winner.Fitness)
			return winner, nil
		}
	}

	return t.pop.BestGenome, nil
}

// initPopulation resumes from the newest checkpoint or starts fresh.
func (t *Trainer) initPopulation(neatCfg *neat.Config) error {
	train := &t.cfg.Training

	if train.CheckpointDir != "" {
		path, gen, err := LatestCheckpoint(train.CheckpointDir, train.CheckpointPrefix)
		if err != nil {
			return err
		}
		if path != "" {
			pop, err := neat.LoadCheckpoint(path, train.NEATConfig)
			if err != nil {
				return fmt.Errorf("loading checkpoint %s: %w", path, err)
			}
			slog.Info("resuming from checkpoint", "path", path, "generation", gen)
			t.pop = pop
			return nil
		}
	}

	pop, err := neat.NewPopulation(neatCfg)
	if err != nil {
		return fmt.Errorf("creating population: %w", err)
	}
	slog.Info("starting new training run", "population", len(pop.Population))
	t.pop = pop
	return nil
}

// maybeCheckpoint saves the population at the configured interval.
func (t *Trainer) maybeCheckpoint() error {
	train := &t.cfg.Training
	if train.CheckpointDir == "" || t.pop.Generation%train.CheckpointEvery != 0 {
		return nil
	}

	if err := os.MkdirAll(train.CheckpointDir, 0755); err != nil {
		return fmt.Errorf("creating checkpoint directory: %w", err)
	}

	path := filepath.Join(train.CheckpointDir, fmt.Sprintf("%s_gen%d.gz", train.CheckpointPrefix, t.pop.Generation))
	return t.pop.SaveCheckpoint(path)
}

// LatestCheckpoint returns the checkpoint with the highest generation number
// under dir, or an empty path if none exist. Checkpoint files are named
// <prefix>_gen<N>.gz.
func LatestCheckpoint(dir, prefix string) (path string, generation int, err error) {
	pattern := filepath.Join(dir, prefix+"_gen*.gz")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", 0, fmt.Errorf("globbing checkpoints: %w", err)
	}

	best := -1
	for _, m := range matches {
		name := filepath.Base(m)
		numStr := strings.TrimSuffix(strings.TrimPrefix(name, prefix+"_gen"), ".gz")
		n, err := strconv.Atoi(numStr)
		if err != nil {
			continue // not one of ours
		}
		if n > best {
			best = n
			path = m
		}
	}

	if best < 0 {
		return "", 0, nil
	}
	return path, best, nil
}
