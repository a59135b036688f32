package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/baldhumanity/neat-go/neat"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rally/arena"
	"github.com/pthm-cable/rally/config"
	"github.com/pthm-cable/rally/game"
	"github.com/pthm-cable/rally/policy"
	"github.com/pthm-cable/rally/renderer"
	"github.com/pthm-cable/rally/trainer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	checkpoint := flag.String("checkpoint", "", "Checkpoint file to load the opponent from (empty = latest in checkpoint dir)")
	headless := flag.Bool("headless", false, "Run an exhibition match without graphics")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	opponent := loadOpponent(cfg, *checkpoint)

	engine, err := arena.NewEngine(cfg.Derived.ScreenW, cfg.Derived.ScreenH, rng)
	if err != nil {
		slog.Error("failed to build arena", "error", err)
		os.Exit(1)
	}

	if *headless {
		runHeadless(cfg, engine, opponent, rngSeed, *maxTicks)
		return
	}

	rl.InitWindow(int32(cfg.Screen.Width)+game.PanelWidth, int32(cfg.Screen.Height), "Rally")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	font := rl.GetFontDefault()
	r := renderer.New(font, int32(cfg.Screen.Width), int32(cfg.Screen.Height))
	g := game.New(cfg, engine, opponent, r)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && g.Tick() >= *maxTicks {
			break
		}
	}
}

// runHeadless plays one exhibition match with a ball-chasing stand-in on
// the left and logs the outcome.
func runHeadless(cfg *config.Config, engine *arena.Engine, opponent policy.Policy, seed int64, maxTicks int) {
	slog.Info("starting headless exhibition",
		"seed", seed,
		"max_ticks", maxTicks,
	)

	m := trainer.NewMatch(engine, &policy.ChasePolicy{}, opponent, trainer.NopSink{}, cfg)
	result := m.Run()

	slog.Info("exhibition finished",
		"conclusion", result.Conclusion,
		"ticks", result.Ticks,
		"duration_sec", result.Duration.Seconds(),
		"left_hits", result.Snapshot.LeftHits,
		"right_hits", result.Snapshot.RightHits,
		"left_score", result.Snapshot.LeftScore,
		"right_score", result.Snapshot.RightScore,
	)
}

// loadOpponent builds the right-side policy: the best genome from a
// training checkpoint when one is available, a ball-chasing baseline
// otherwise.
func loadOpponent(cfg *config.Config, checkpoint string) policy.Policy {
	path := checkpoint
	if path == "" {
		latest, generation, err := trainer.LatestCheckpoint(cfg.Training.CheckpointDir, cfg.Training.CheckpointPrefix)
		if err != nil || latest == "" {
			slog.Info("no checkpoint found, using chase baseline", "dir", cfg.Training.CheckpointDir)
			return &policy.ChasePolicy{}
		}
		slog.Info("using latest checkpoint", "path", latest, "generation", generation)
		path = latest
	}

	pop, err := neat.LoadCheckpoint(path, cfg.Training.NEATConfig)
	if err != nil {
		slog.Error("failed to load checkpoint, using chase baseline", "path", path, "error", err)
		return &policy.ChasePolicy{}
	}

	best := pop.BestGenome
	if best == nil {
		for _, g := range pop.Population {
			if best == nil || g.Fitness > best.Fitness {
				best = g
			}
		}
	}
	if best == nil {
		slog.Error("checkpoint holds no genomes, using chase baseline", "path", path)
		return &policy.ChasePolicy{}
	}

	p, err := policy.NewNetworkPolicy(best)
	if err != nil {
		slog.Error("failed to build network policy, using chase baseline", "error", err)
		return &policy.ChasePolicy{}
	}
	slog.Info("loaded opponent network", "fitness", best.Fitness)
	return p
}
