// Package config loads simulation settings from an HCL file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdemsim/poker"
)

const (
	defaultLogLevel         = "info"
	defaultTrials           = 100000
	defaultPlayers          = 6
	defaultWorkers          = 4
	defaultSampleEvery      = 10000
	defaultProgressInterval = "5s"
	defaultTop              = 20
)

// Config represents the complete simulation configuration
type Config struct {
	LogLevel   string           `hcl:"log_level,optional" env:"HOLDEMSIM_LOG_LEVEL"`
	Simulation SimulationConfig `hcl:"simulation,block"`
	Report     ReportConfig     `hcl:"report,block"`
}

// SimulationConfig controls how trials are dealt and scheduled
type SimulationConfig struct {
	Trials  int `hcl:"trials,optional" env:"HOLDEMSIM_TRIALS"`
	Players int `hcl:"players,optional" env:"HOLDEMSIM_PLAYERS"`
	Workers int `hcl:"workers,optional" env:"HOLDEMSIM_WORKERS"`
	// Seed 0 selects a time-based seed.
	Seed             int64  `hcl:"seed,optional" env:"HOLDEMSIM_SEED"`
	SampleEvery      int    `hcl:"sample_every,optional" env:"HOLDEMSIM_SAMPLE_EVERY"`
	ProgressInterval string `hcl:"progress_interval,optional"`
}

// ReportConfig controls the printed and exported results
type ReportConfig struct {
	Output  string `hcl:"output,optional" env:"HOLDEMSIM_OUTPUT"`
	Top     int    `hcl:"top,optional"`
	NoColor bool   `hcl:"no_color,optional" env:"HOLDEMSIM_NO_COLOR"`
}

// fileConfig mirrors Config with optional blocks so a file may omit either.
type fileConfig struct {
	LogLevel   string            `hcl:"log_level,optional"`
	Simulation *SimulationConfig `hcl:"simulation,block"`
	Report     *ReportConfig     `hcl:"report,block"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel: defaultLogLevel,
		Simulation: SimulationConfig{
			Trials:           defaultTrials,
			Players:          defaultPlayers,
			Workers:          defaultWorkers,
			SampleEvery:      defaultSampleEvery,
			ProgressInterval: defaultProgressInterval,
		},
		Report: ReportConfig{
			Top: defaultTop,
		},
	}
}

// Load reads filename, falling back to defaults when it does not exist, then
// applies environment overrides. An empty filename skips the file.
func Load(filename string) (*Config, error) {
	config, err := LoadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := ParseEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFile loads configuration from an HCL file
func LoadFile(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var decoded fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &decoded)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := &Config{LogLevel: decoded.LogLevel}
	if decoded.Simulation != nil {
		config.Simulation = *decoded.Simulation
	}
	if decoded.Report != nil {
		config.Report = *decoded.Report
	}
	config.applyDefaults()
	return config, nil
}

// applyDefaults fills zero values left by a partial file. Seed and
// SampleEvery keep zero since it is meaningful for both.
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Simulation.Trials == 0 {
		c.Simulation.Trials = defaultTrials
	}
	if c.Simulation.Players == 0 {
		c.Simulation.Players = defaultPlayers
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = defaultWorkers
	}
	if c.Simulation.ProgressInterval == "" {
		c.Simulation.ProgressInterval = defaultProgressInterval
	}
	if c.Report.Top == 0 {
		c.Report.Top = defaultTop
	}
}

// ParseEnv overlays environment variables onto target. Unset variables leave
// fields untouched.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Interval returns the parsed progress interval.
func (s SimulationConfig) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(s.ProgressInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid progress_interval %q: %w", s.ProgressInterval, err)
	}
	return d, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}

	sim := c.Simulation
	if sim.Trials < 1 {
		return fmt.Errorf("simulation: trials must be at least 1, got %d", sim.Trials)
	}
	if sim.Players < 2 || sim.Players > 10 {
		return fmt.Errorf("simulation: players must be between 2 and 10, got %d", sim.Players)
	}
	if sim.Workers < 1 {
		return fmt.Errorf("simulation: workers must be at least 1, got %d", sim.Workers)
	}
	if sim.SampleEvery < 0 {
		return fmt.Errorf("simulation: sample_every must not be negative, got %d", sim.SampleEvery)
	}
	interval, err := sim.Interval()
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if interval <= 0 {
		return fmt.Errorf("simulation: progress_interval must be positive, got %s", interval)
	}

	if c.Report.Top < 0 || c.Report.Top > poker.NumStartingHands {
		return fmt.Errorf("report: top must be between 0 and %d, got %d", poker.NumStartingHands, c.Report.Top)
	}
	return nil
}
