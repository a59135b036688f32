// Command train evolves paddle controllers headlessly and writes telemetry
// CSVs plus population checkpoints.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/rally/config"
	"github.com/pthm-cable/rally/telemetry"
	"github.com/pthm-cable/rally/trainer"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	generations := flag.Int("generations", 0, "Generation cap override (0 = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *generations > 0 {
		cfg.Training.Generations = *generations
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to snapshot config", "error", err)
		os.Exit(1)
	}

	collector := telemetry.NewCollector(out, cfg.Telemetry.LogMatches)

	slog.Info("starting training",
		"seed", rngSeed,
		"generations", cfg.Training.Generations,
		"neat_config", cfg.Training.NEATConfig,
		"output_dir", out.Dir(),
	)

	t := trainer.New(cfg, collector, rngSeed)
	winner, err := t.Run()
	if err != nil {
		slog.Error("training failed", "error", err)
		os.Exit(1)
	}

	if winner != nil {
		slog.Info("training finished with a winner", "fitness", winner.Fitness)
	} else {
		slog.Info("training finished at generation cap")
	}
}
