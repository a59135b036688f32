package trainer

import (
	"log/slog"
	"math/rand"
	"sort"

	"github.com/baldhumanity/neat-go/neat"

	"github.com/pthm-cable/rally/arena"
	"github.com/pthm-cable/rally/policy"
	"github.com/pthm-cable/rally/telemetry"
)

// genomeSink routes match fitness adjustments to the two competing genomes.
type genomeSink struct {
	left, right *neat.Genome
}

func (s genomeSink) Credit(side arena.Side, delta float64) {
	if side == arena.SideLeft {
		s.left.Fitness += delta
	} else {
		s.right.Fitness += delta
	}
}

// evalGenomes scores a population by round-robin pairing: each genome plays
// everyone after it in key order, so every genome sees a spread of opponents
// and every pairing runs exactly once. Fitness accumulates across a genome's
// matches within the generation.
func (t *Trainer) evalGenomes(genomes map[int]*neat.Genome) error {
	keys := make([]int, 0, len(genomes))
	for k := range genomes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	// All fitness is earned inside this evaluation; clear every genome
	// before the first pairing so right-side credits survive until the
	// genome's own slot comes around.
	for _, k := range keys {
		genomes[k].Fitness = 0
	}

	for i, k1 := range keys {
		g1 := genomes[k1]

		left, err := policy.NewNetworkPolicy(g1)
		if err != nil {
			// A genome that cannot produce a network sits the generation out
			// at zero fitness.
			slog.Warn("skipping genome with unusable network", "genome", k1, "error", err)
			continue
		}

		for _, k2 := range keys[i+1:] {
			g2 := genomes[k2]

			right, err := policy.NewNetworkPolicy(g2)
			if err != nil {
				slog.Warn("skipping pairing with unusable network", "genome", k2, "error", err)
				continue
			}

			if err := t.runPairing(k1, g1, left, k2, g2, right); err != nil {
				return err
			}
		}
	}

	// Snapshot the evaluated fitness values now: once control returns to
	// the library it reproduces, and the population map fills with fresh
	// zero-fitness offspring.
	t.evaluated = t.evaluated[:0]
	for _, k := range keys {
		t.evaluated = append(t.evaluated, genomes[k].Fitness)
	}

	return nil
}

// runPairing plays one match between two genomes on a fresh engine.
func (t *Trainer) runPairing(k1 int, g1 *neat.Genome, left policy.Policy, k2 int, g2 *neat.Genome, right policy.Policy) error {
	engine, err := arena.NewEngine(
		t.cfg.Derived.ScreenW,
		t.cfg.Derived.ScreenH,
		rand.New(rand.NewSource(t.rng.Int63())),
	)
	if err != nil {
		return err
	}

	match := NewMatch(engine, left, right, genomeSink{left: g1, right: g2}, t.cfg)
	result := match.Run()

	t.collector.RecordMatch(telemetry.MatchRecord{
		Generation:  t.pop.Generation,
		LeftGenome:  k1,
		RightGenome: k2,
		LeftHits:    result.Snapshot.LeftHits,
		RightHits:   result.Snapshot.RightHits,
		LeftScore:   result.Snapshot.LeftScore,
		RightScore:  result.Snapshot.RightScore,
		Ticks:       result.Ticks,
		DurationSec: result.Duration.Seconds(),
		Conclusion:  string(result.Conclusion),
	})

	return nil
}
