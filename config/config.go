// Package config provides configuration loading and access for the rig.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Match     MatchConfig     `yaml:"match"`
	Fitness   FitnessConfig   `yaml:"fitness"`
	Training  TrainingConfig  `yaml:"training"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds playfield and display settings. The playfield and the
// window share dimensions; the simulation core only cares about the former.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// MatchConfig holds the externally enforced match termination policy.
// The engine itself never concludes a match; these caps belong to the driver.
type MatchConfig struct {
	MaxHits        int     `yaml:"max_hits"`         // conclude when a side reaches this many hits
	MaxDurationSec float64 `yaml:"max_duration_sec"` // wall-clock cap for passive pairings
}

// FitnessConfig holds the fitness shaping applied by the match driver.
// The engine reports hits and scores; all reward/penalty policy lives here.
type FitnessConfig struct {
	HoldPenalty    float64 `yaml:"hold_penalty"`    // per tick a side decides to do nothing
	InvalidPenalty float64 `yaml:"invalid_penalty"` // per rejected boundary-crossing move
}

// TrainingConfig holds NEAT training parameters.
type TrainingConfig struct {
	Generations      int    `yaml:"generations"`
	NEATConfig       string `yaml:"neat_config"`       // path to the neat-go INI config
	CheckpointDir    string `yaml:"checkpoint_dir"`    // empty = checkpointing disabled
	CheckpointEvery  int    `yaml:"checkpoint_every"`  // generations between checkpoints
	CheckpointPrefix string `yaml:"checkpoint_prefix"` // file name prefix inside checkpoint_dir
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogMatches bool `yaml:"log_matches"` // write per-match rows, not just per-generation
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW float64 // Screen.Width as float64
	ScreenH float64 // Screen.Height as float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations that would produce nonsensical geometry
// or a driver that can never conclude a match.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Match.MaxHits <= 0 {
		return fmt.Errorf("config: match.max_hits must be positive, got %d", c.Match.MaxHits)
	}
	if c.Match.MaxDurationSec <= 0 {
		return fmt.Errorf("config: match.max_duration_sec must be positive, got %v", c.Match.MaxDurationSec)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)

	if c.Training.CheckpointEvery <= 0 {
		c.Training.CheckpointEvery = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
