package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdemsim.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	t.Parallel()
	config, err := LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	require.NoError(t, config.Validate())

	config, err = LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
log_level = "debug"

simulation {
  trials            = 5000
  players           = 9
  workers           = 2
  seed              = 42
  sample_every      = 0
  progress_interval = "250ms"
}

report {
  output   = "results.toml"
  top      = 10
  no_color = true
}
`)

	config, err := LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, config.Validate())

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, SimulationConfig{
		Trials:           5000,
		Players:          9,
		Workers:          2,
		Seed:             42,
		SampleEvery:      0,
		ProgressInterval: "250ms",
	}, config.Simulation)
	assert.Equal(t, ReportConfig{Output: "results.toml", Top: 10, NoColor: true}, config.Report)

	interval, err := config.Simulation.Interval()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, interval)
}

func TestLoadFilePartialAppliesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
simulation {
  trials = 10
}
`)

	config, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, config.Simulation.Trials)
	assert.Equal(t, defaultPlayers, config.Simulation.Players)
	assert.Equal(t, defaultWorkers, config.Simulation.Workers)
	assert.Equal(t, defaultProgressInterval, config.Simulation.ProgressInterval)
	assert.Equal(t, defaultLogLevel, config.LogLevel)
	assert.Equal(t, defaultTop, config.Report.Top)
	assert.Zero(t, config.Simulation.SampleEvery, "sample_every is not back-filled")
}

func TestLoadFileErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(writeConfig(t, `simulation {`))
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = LoadFile(writeConfig(t, `simulation { trials = "many" }`))
	assert.ErrorContains(t, err, "failed to decode HCL")

	_, err = LoadFile(writeConfig(t, `unknown = true`))
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
simulation {
  trials  = 10
  players = 3
}
`)
	t.Setenv("HOLDEMSIM_TRIALS", "777")
	t.Setenv("HOLDEMSIM_SEED", "-5")
	t.Setenv("HOLDEMSIM_NO_COLOR", "true")
	t.Setenv("HOLDEMSIM_LOG_LEVEL", "warn")

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 777, config.Simulation.Trials)
	assert.Equal(t, 3, config.Simulation.Players, "unset variables keep file values")
	assert.Equal(t, int64(-5), config.Simulation.Seed)
	assert.True(t, config.Report.NoColor)
	assert.Equal(t, "warn", config.LogLevel)
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("HOLDEMSIM_PLAYERS", "six")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "log_level"},
		{"zero trials", func(c *Config) { c.Simulation.Trials = 0 }, "trials"},
		{"one player", func(c *Config) { c.Simulation.Players = 1 }, "players"},
		{"eleven players", func(c *Config) { c.Simulation.Players = 11 }, "players"},
		{"ten players", func(c *Config) { c.Simulation.Players = 10 }, ""},
		{"zero workers", func(c *Config) { c.Simulation.Workers = 0 }, "workers"},
		{"negative sample", func(c *Config) { c.Simulation.SampleEvery = -1 }, "sample_every"},
		{"bad interval", func(c *Config) { c.Simulation.ProgressInterval = "soon" }, "progress_interval"},
		{"zero interval", func(c *Config) { c.Simulation.ProgressInterval = "0s" }, "progress_interval"},
		{"top all", func(c *Config) { c.Report.Top = 169 }, ""},
		{"top too large", func(c *Config) { c.Report.Top = 170 }, "top"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			config := Default()
			tt.mutate(config)
			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
