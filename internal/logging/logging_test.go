package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartdraw/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestFromConfig_DefaultsFilePath(t *testing.T) {
	lc := FromConfig(config.LoggingConfig{Level: "warn", File: true})
	assert.Equal(t, "warn", lc.Level)
	assert.NotEmpty(t, lc.FilePath)
}

func TestLogToolEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	LogToolEvent(WithTool(WithOperation(logger, "add"), "t1"), "added", "ray", 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "added", entry["event"])
	assert.Equal(t, "t1", entry["tool_id"])
	assert.Equal(t, "ray", entry["kind"])
	assert.Equal(t, "add", entry["operation"])
	assert.Equal(t, float64(2), entry["handles"])
}

func TestLogToolEvent_BelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	LogToolEvent(WithTool(logger, "t1"), "removed", "ray", 2)
	assert.Zero(t, buf.Len())
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := WithTool(zerolog.New(&buf), "abc")
	ctx := WithLogger(context.Background(), logger)

	l := FromContext(ctx)
	l.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"tool_id":"abc"`)

	nop := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, nop.GetLevel())

	var unset context.Context
	assert.Equal(t, zerolog.Disabled, FromContext(unset).GetLevel())
}

func TestNewLoggerWithConfig_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithConfig(LogConfig{Level: "info", Console: true, Out: &buf})
	logger.Debug().Msg("hidden")
	logger.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
