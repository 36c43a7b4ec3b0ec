// Package config layers the effective settings from defaults, the config
// file, environment variables, and command-line flags, in rising priority.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"
)

// Defaults. The sequence file lives in the working directory, next to where
// the predictor runs.
const (
	DefaultSequenceFile = "lgo_sequence.txt"
	DefaultPollInterval = 100 * time.Millisecond
)

// Environment overrides.
const (
	EnvSequenceFile = "LGO_SEQUENCE_FILE"
	EnvPollInterval = "LGO_POLL_INTERVAL_MS"
)

// Config is the on-disk configuration file. Zero values mean "unset".
type Config struct {
	SequenceFile   string `json:"sequence_file,omitempty"`
	PollIntervalMS int    `json:"poll_interval_ms,omitempty"`
}

// Settings is the resolved, effective configuration.
type Settings struct {
	SequenceFile string
	PollInterval time.Duration
}

func configDir() string {
	home := os.Getenv("HOME")
	if runtime.GOOS == "windows" {
		home = os.Getenv("USERPROFILE")
	}
	return filepath.Join(home, ".config", "lgo")
}

// Path returns the config file location.
func Path() string {
	return filepath.Join(configDir(), "config.json")
}

// Load reads the config file. A missing file is an empty config, not an
// error.
func Load() (*Config, error) {
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", Path(), err)
	}
	return &cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	if err := os.MkdirAll(configDir(), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(), data, 0600)
}

// Resolve layers cfg under the environment and the given flag values.
// Empty flag values mean "not set".
func Resolve(cfg *Config, flagSequence string, flagInterval time.Duration) Settings {
	s := Settings{
		SequenceFile: DefaultSequenceFile,
		PollInterval: DefaultPollInterval,
	}

	if cfg != nil {
		if cfg.SequenceFile != "" {
			s.SequenceFile = cfg.SequenceFile
		}
		if cfg.PollIntervalMS > 0 {
			s.PollInterval = time.Duration(cfg.PollIntervalMS) * time.Millisecond
		}
	}

	if v := os.Getenv(EnvSequenceFile); v != "" {
		s.SequenceFile = v
	}
	if v := os.Getenv(EnvPollInterval); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			s.PollInterval = time.Duration(ms) * time.Millisecond
		} else {
			slog.Debug("ignoring bad poll interval override",
				"component", "config", "value", v)
		}
	}

	if flagSequence != "" {
		s.SequenceFile = flagSequence
	}
	if flagInterval > 0 {
		s.PollInterval = flagInterval
	}
	return s
}
