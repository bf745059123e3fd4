package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesTemplate(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// A template config file was written for the user to edit.
	path := filepath.Join(dir, "config.toml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[presets]")
	assert.Contains(t, string(data), "atm_premium_pct")

	// The template itself must load and validate.
	cfg2, err := Load(dir)
	require.NoError(t, err)
	assert.NoError(t, cfg2.Validate())
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[ui]
chart_height = 20

[logging]
level = "debug"
`), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.UI.ChartHeight)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Presets, cfg.Presets)
	assert.Equal(t, Default().UI.ChartWidth, cfg.UI.ChartWidth)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[logging]
level = "loud"
`), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"chart too short", func(c *Config) { c.UI.ChartHeight = 2 }},
		{"chart too wide", func(c *Config) { c.UI.ChartWidth = 500 }},
		{"zero preset fraction", func(c *Config) { c.Presets.ATMPremiumPct = 0 }},
		{"preset fraction at one", func(c *Config) { c.Presets.CondorWingPct = 1 }},
		{"negative preset fraction", func(c *Config) { c.Presets.StraddleCreditPct = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
