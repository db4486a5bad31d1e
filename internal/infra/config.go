// Package infra provides configuration loading and logger setup.
package infra

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the runner configuration.
type Config struct {
	Sim struct {
		Seed           int64   `yaml:"seed"`
		Speed          float64 `yaml:"speed"`
		TickIntervalMS int     `yaml:"tick_interval_ms"`
	} `yaml:"sim"`

	Economy struct {
		Volatility          float64 `yaml:"volatility"`
		SaturationThreshold float64 `yaml:"saturation_threshold"`
		RefreshHour         int     `yaml:"refresh_hour"`
		PriceUpdateMinutes  int     `yaml:"price_update_minutes"`
	} `yaml:"economy"`

	Storage struct {
		Path string `yaml:"path"`
	} `yaml:"storage"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Sim.Seed = 42
	cfg.Sim.Speed = 1.0
	cfg.Sim.TickIntervalMS = 1000
	cfg.Economy.Volatility = 0.10
	cfg.Economy.SaturationThreshold = 10
	cfg.Economy.RefreshHour = 8
	cfg.Economy.PriceUpdateMinutes = 5
	cfg.Storage.Path = "data/tradewinds.db"
	cfg.Logging.Level = "info"
	cfg.Logging.File = "logs/tradewinds.log"
	return cfg
}

// LoadConfig reads a YAML config file over the defaults. A missing file
// yields the defaults; a malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
