package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "chartdraw/internal/errors"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 10000.0, cfg.Geometry.ExtensionLength)
	assert.Equal(t, 100, cfg.Geometry.SampleCount)
	assert.Equal(t, -10000.0, cfg.Geometry.ExtendedMinX)
	assert.Equal(t, 10000.0, cfg.Geometry.ExtendedMaxX)
	assert.Equal(t, 1.0, cfg.Cycles.PeriodAdjust)
	assert.Equal(t, 100, cfg.Cycles.SinePoints)
	assert.Equal(t, 0.3, cfg.Freehand.HighlighterAlpha)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chartdraw.toml")
	content := `
[geometry]
sample_count = 36

[freehand]
highlighter_alpha = 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 36, cfg.Geometry.SampleCount)
	assert.Equal(t, 0.5, cfg.Freehand.HighlighterAlpha)
	assert.Equal(t, 10000.0, cfg.Geometry.ExtensionLength)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CHARTDRAW_GEOMETRY_SAMPLE_COUNT", "12")
	t.Setenv("CHARTDRAW_LOGGING_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Geometry.SampleCount)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chartdraw.toml")
	require.NoError(t, os.WriteFile(path, []byte("[geometry]\nsample_count = 1\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrConfigInvalid))

	var ve *apperrors.ValidationError
	require.True(t, apperrors.As(err, &ve))
	assert.Equal(t, "geometry.sample_count", ve.Field)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero extension", func(c *Config) { c.Geometry.ExtensionLength = 0 }, "geometry.extension_length"},
		{"one sample", func(c *Config) { c.Geometry.SampleCount = 1 }, "geometry.sample_count"},
		{"inverted bounds", func(c *Config) { c.Geometry.ExtendedMinX = 20000 }, "geometry.extended_min_x"},
		{"zero period", func(c *Config) { c.Cycles.PeriodAdjust = 0 }, "cycles.period_adjust"},
		{"negative amplitude", func(c *Config) { c.Cycles.AmplitudeAdjust = -1 }, "cycles.amplitude_adjust"},
		{"one sine point", func(c *Config) { c.Cycles.SinePoints = 1 }, "cycles.sine_points"},
		{"zero alpha", func(c *Config) { c.Freehand.HighlighterAlpha = 0 }, "freehand.highlighter_alpha"},
		{"unknown level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *apperrors.ValidationError
			require.True(t, apperrors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidate_AlphaRangeProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("alpha accepted iff in (0, 1]", prop.ForAll(
		func(alpha float64) bool {
			cfg := Default()
			cfg.Freehand.HighlighterAlpha = alpha
			ok := cfg.Validate() == nil
			return ok == (alpha > 0 && alpha <= 1)
		},
		gen.Float64Range(-1, 2),
	))

	properties.TestingRun(t)
}

func TestTemplate_CoversEverySection(t *testing.T) {
	tmpl := Template()
	for _, section := range []string{"[geometry]", "[cycles]", "[freehand]", "[logging]"} {
		assert.Contains(t, tmpl, section)
	}
	assert.Contains(t, tmpl, "period_adjust = 1.0")
}

func TestWriteTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "chartdraw.toml")
	require.NoError(t, WriteTemplate(path))
	assert.Error(t, WriteTemplate(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Geometry, cfg.Geometry)
	assert.Equal(t, Default().Cycles, cfg.Cycles)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Template(), string(written))
}
