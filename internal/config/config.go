// Package config loads the optional YAML configuration file. A missing file
// yields defaults; a malformed file is an error, since the user wrote it by
// hand and silently ignoring it would hide typos.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DataPath overrides the default database location.
	DataPath string `yaml:"data_path"`
	// MealSlots are the slot labels offered by the planner and logger.
	MealSlots []string `yaml:"meal_slots"`
	// EstimateDelayMS is the simulated latency of the mock estimator.
	EstimateDelayMS int `yaml:"estimate_delay_ms"`
}

func Default() Config {
	return Config{
		MealSlots:       []string{"breakfast", "lunch", "dinner", "snacks"},
		EstimateDelayMS: 2000,
	}
}

func (c Config) EstimateDelay() time.Duration {
	return time.Duration(c.EstimateDelayMS) * time.Millisecond
}

// Load reads the config at path, layered over defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if overlay.DataPath != "" {
		cfg.DataPath = overlay.DataPath
	}
	if len(overlay.MealSlots) > 0 {
		cfg.MealSlots = overlay.MealSlots
	}
	if overlay.EstimateDelayMS > 0 {
		cfg.EstimateDelayMS = overlay.EstimateDelayMS
	}
	return cfg, nil
}
