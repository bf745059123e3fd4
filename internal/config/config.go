// Package config provides configuration management for the strategist CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"option-strategist/internal/engine"
	"option-strategist/internal/logging"
)

// Config holds all application configuration.
type Config struct {
	UI      UIConfig            `mapstructure:"ui"`
	Logging LoggingConfig       `mapstructure:"logging"`
	Presets engine.PresetConfig `mapstructure:"presets"`
}

// UIConfig holds terminal output configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
	ChartHeight  int  `mapstructure:"chart_height"`
	ChartWidth   int  `mapstructure:"chart_width"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// ToLogConfig converts the persisted logging section into the logging
// package's config. An empty file path falls back to the default.
func (c LoggingConfig) ToLogConfig() logging.LogConfig {
	lc := logging.DefaultLogConfig()
	lc.Level = c.Level
	lc.Console = c.Console
	lc.File = c.File
	if c.FilePath != "" {
		lc.FilePath = c.FilePath
	}
	if c.MaxSizeMB > 0 {
		lc.MaxSize = c.MaxSizeMB
	}
	if c.MaxBackups > 0 {
		lc.MaxBackups = c.MaxBackups
	}
	if c.MaxAgeDays > 0 {
		lc.MaxAge = c.MaxAgeDays
	}
	return lc
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/option-strategist"
	}
	return filepath.Join(home, ".config", "option-strategist")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			ColorEnabled: true,
			ChartHeight:  15,
			ChartWidth:   64,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
		Presets: engine.DefaultPresetConfig(),
	}
}

// Load loads configuration from the specified directory. If configDir
// is empty, the default config directory is used. A missing config file
// is not an error: a template is written and the defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := createTemplateConfig(configDir); err != nil {
				return nil, fmt.Errorf("creating config template: %w", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("ui.color_enabled", cfg.UI.ColorEnabled)
	v.SetDefault("ui.chart_height", cfg.UI.ChartHeight)
	v.SetDefault("ui.chart_width", cfg.UI.ChartWidth)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.console", cfg.Logging.Console)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.UI.ChartHeight < 5 || c.UI.ChartHeight > 100 {
		return fmt.Errorf("ui.chart_height must be between 5 and 100")
	}
	if c.UI.ChartWidth < 20 || c.UI.ChartWidth > 200 {
		return fmt.Errorf("ui.chart_width must be between 20 and 200")
	}

	p := c.Presets
	pcts := map[string]float64{
		"presets.atm_premium_pct":        p.ATMPremiumPct,
		"presets.spread_width_pct":       p.SpreadWidthPct,
		"presets.wide_spread_width_pct":  p.WideSpreadWidthPct,
		"presets.spread_credit_pct":      p.SpreadCreditPct,
		"presets.wide_spread_credit_pct": p.WideSpreadCreditPct,
		"presets.otm_offset_pct":         p.OTMOffsetPct,
		"presets.deep_otm_offset_pct":    p.DeepOTMOffsetPct,
		"presets.otm_credit_pct":         p.OTMCreditPct,
		"presets.deep_otm_credit_pct":    p.DeepOTMCreditPct,
		"presets.condor_wing_pct":        p.CondorWingPct,
		"presets.condor_credit_pct":      p.CondorCreditPct,
		"presets.condor_debit_pct":       p.CondorDebitPct,
		"presets.butterfly_wing_pct":     p.ButterflyWingPct,
		"presets.butterfly_credit_pct":   p.ButterflyCreditPct,
		"presets.butterfly_debit_pct":    p.ButterflyDebitPct,
		"presets.straddle_credit_pct":    p.StraddleCreditPct,
	}
	for name, value := range pcts {
		if value <= 0 || value >= 1 {
			return fmt.Errorf("%s must be a fraction between 0 and 1 (got %v)", name, value)
		}
	}

	return nil
}

const configTemplate = `# Option Strategist Configuration

[ui]
# Enable colored output
color_enabled = true
# ASCII payoff chart size
chart_height = 15
chart_width = 64

[logging]
# Log level: debug, info, warn, error
level = "info"
console = true
# Uncomment to also log to a rotated file
# file = true
# file_path = ""
# max_size_mb = 20
# max_backups = 3
# max_age_days = 30

[presets]
# Heuristic percentages used to seed strategy parameters from the
# current price when no real quotes are supplied. Fractions of spot.
atm_premium_pct = 0.04
spread_width_pct = 0.10
wide_spread_width_pct = 0.15
spread_credit_pct = 0.02
wide_spread_credit_pct = 0.015
otm_offset_pct = 0.10
deep_otm_offset_pct = 0.15
otm_credit_pct = 0.03
deep_otm_credit_pct = 0.02
condor_wing_pct = 0.15
condor_credit_pct = 0.06
condor_debit_pct = 0.03
butterfly_wing_pct = 0.10
butterfly_credit_pct = 0.05
butterfly_debit_pct = 0.025
straddle_credit_pct = 0.08
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(configTemplate), 0o644)
}
