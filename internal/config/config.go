// Package config provides configuration management for the drawing tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	apperrors "chartdraw/internal/errors"
)

// FileName is the base name of the configuration file.
const FileName = "chartdraw"

// EnvPrefix prefixes environment overrides, e.g. CHARTDRAW_GEOMETRY_SAMPLE_COUNT.
const EnvPrefix = "CHARTDRAW"

// Config holds all application configuration.
type Config struct {
	Geometry GeometryConfig `mapstructure:"geometry" json:"geometry"`
	Cycles   CyclesConfig   `mapstructure:"cycles" json:"cycles"`
	Freehand FreehandConfig `mapstructure:"freehand" json:"freehand"`
	Logging  LoggingConfig  `mapstructure:"logging" json:"logging"`
}

// GeometryConfig holds the shared geometry constants.
type GeometryConfig struct {
	ExtensionLength float64 `mapstructure:"extension_length" json:"extension_length"`
	SampleCount     int     `mapstructure:"sample_count" json:"sample_count"`
	ExtendedMinX    float64 `mapstructure:"extended_min_x" json:"extended_min_x"`
	ExtendedMaxX    float64 `mapstructure:"extended_max_x" json:"extended_max_x"`
}

// CyclesConfig holds the defaults for cyclic lines and sine projections.
type CyclesConfig struct {
	PeriodAdjust    float64 `mapstructure:"period_adjust" json:"period_adjust"`
	AmplitudeAdjust float64 `mapstructure:"amplitude_adjust" json:"amplitude_adjust"`
	SinePoints      int     `mapstructure:"sine_points" json:"sine_points"`
}

// FreehandConfig holds brush settings.
type FreehandConfig struct {
	HighlighterAlpha float64 `mapstructure:"highlighter_alpha" json:"highlighter_alpha"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level" json:"level"` // debug, info, warn, error
	Console    bool   `mapstructure:"console" json:"console"`
	File       bool   `mapstructure:"file" json:"file"`
	FilePath   string `mapstructure:"file_path" json:"file_path"`
	MaxSize    int    `mapstructure:"max_size" json:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" json:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" json:"max_age"` // days
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/chartdraw"
	}
	return filepath.Join(home, ".config", "chartdraw")
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), FileName+".toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("geometry.extension_length", 10000.0)
	v.SetDefault("geometry.sample_count", 100)
	v.SetDefault("geometry.extended_min_x", -10000.0)
	v.SetDefault("geometry.extended_max_x", 10000.0)

	v.SetDefault("cycles.period_adjust", 1.0)
	v.SetDefault("cycles.amplitude_adjust", 1.0)
	v.SetDefault("cycles.sine_points", 100)

	v.SetDefault("freehand.highlighter_alpha", 0.3)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", false)
	v.SetDefault("logging.file_path", filepath.Join(DefaultConfigDir(), "logs", "chartdraw.log"))
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 28)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// Defaults alone always decode.
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load loads configuration from path. An empty path means the default
// location. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Geometry.ExtensionLength <= 0 {
		return invalid("geometry.extension_length", c.Geometry.ExtensionLength, "must be positive")
	}
	if c.Geometry.SampleCount < 2 {
		return invalid("geometry.sample_count", c.Geometry.SampleCount, "must be at least 2")
	}
	if c.Geometry.ExtendedMinX >= c.Geometry.ExtendedMaxX {
		return invalid("geometry.extended_min_x", c.Geometry.ExtendedMinX, "must be below extended_max_x")
	}
	if c.Cycles.PeriodAdjust <= 0 {
		return invalid("cycles.period_adjust", c.Cycles.PeriodAdjust, "must be positive")
	}
	if c.Cycles.AmplitudeAdjust <= 0 {
		return invalid("cycles.amplitude_adjust", c.Cycles.AmplitudeAdjust, "must be positive")
	}
	if c.Cycles.SinePoints < 2 {
		return invalid("cycles.sine_points", c.Cycles.SinePoints, "must be at least 2")
	}
	if a := c.Freehand.HighlighterAlpha; a <= 0 || a > 1 {
		return invalid("freehand.highlighter_alpha", a, "must be in (0, 1]")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level", c.Logging.Level, "must be debug, info, warn or error")
	}

	return nil
}

func invalid(field string, value interface{}, message string) error {
	return fmt.Errorf("%w: %w", apperrors.ErrConfigInvalid, apperrors.NewValidationError(field, value, message))
}
