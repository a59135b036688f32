// Package telemetry collects match and generation statistics during
// training and writes them as CSV for offline analysis.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/rally/config"
)

// OutputManager handles structured training output with CSV logging.
type OutputManager struct {
	dir            string
	matchFile      *os.File
	generationFile *os.File

	// Track if headers have been written
	matchHeaderWritten      bool
	generationHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled); all methods are
// safe to call on a nil manager.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	matchPath := filepath.Join(dir, "matches.csv")
	f, err := os.Create(matchPath)
	if err != nil {
		return nil, fmt.Errorf("creating matches.csv: %w", err)
	}
	om.matchFile = f

	generationPath := filepath.Join(dir, "generations.csv")
	f, err = os.Create(generationPath)
	if err != nil {
		om.matchFile.Close()
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}
	om.generationFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteMatch writes a match record to matches.csv.
func (om *OutputManager) WriteMatch(rec MatchRecord) error {
	if om == nil {
		return nil
	}

	records := []MatchRecord{rec}

	if !om.matchHeaderWritten {
		if err := gocsv.Marshal(records, om.matchFile); err != nil {
			return fmt.Errorf("writing match record: %w", err)
		}
		om.matchHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.matchFile); err != nil {
			return fmt.Errorf("writing match record: %w", err)
		}
	}

	return nil
}

// WriteGeneration writes a generation stats record to generations.csv.
func (om *OutputManager) WriteGeneration(stats GenerationStats) error {
	if om == nil {
		return nil
	}

	records := []GenerationStats{stats}

	if !om.generationHeaderWritten {
		if err := gocsv.Marshal(records, om.generationFile); err != nil {
			return fmt.Errorf("writing generation stats: %w", err)
		}
		om.generationHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.generationFile); err != nil {
			return fmt.Errorf("writing generation stats: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.matchFile != nil {
		if err := om.matchFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.generationFile != nil {
		if err := om.generationFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
