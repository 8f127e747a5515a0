package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "chartdraw/internal/errors"
)

// run executes the CLI with a config path inside a temp dir.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "chartdraw.toml")
	return runWithConfig(t, cfgPath, args...)
}

func runWithConfig(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(zerolog.Nop())
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--json")
	require.NoError(t, err)

	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, Version, v["version"])
}

func TestDraw_TrendAngleJSON(t *testing.T) {
	out, err := run(t, "draw", "trend_angle", "--point", "0,0", "--point", "10,10", "--json")
	require.NoError(t, err)

	var r drawResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "trend_angle-1", r.ID)
	assert.Equal(t, "45.00°", r.Label)
	require.Len(t, r.Path, 1)
	assert.Len(t, r.Path[0], 2)
	assert.NotEmpty(t, r.Handles)
}

func TestDraw_Text(t *testing.T) {
	out, err := run(t, "draw", "ellipse", "-p", "0,0", "-p", "100,50", "--samples", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "ellipse-1 (ellipse)")
	assert.Contains(t, out, "... 19 points ...")
	assert.Contains(t, out, "ROLE")
}

func TestDraw_Errors(t *testing.T) {
	_, err := run(t, "draw", "spiral", "-p", "0,0")
	assert.True(t, apperrors.Is(err, apperrors.ErrUnknownTool))

	_, err = run(t, "draw", "pitchfork", "-p", "0,0", "-p", "1,1")
	assert.True(t, apperrors.Is(err, apperrors.ErrPointCount))

	_, err = run(t, "draw", "ray", "-p", "0;0", "-p", "1,1")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidPoint))
}

func TestDraw_UsesConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "chartdraw.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[geometry]\nextension_length = 25.0\n"), 0644))

	out, err := runWithConfig(t, cfgPath, "draw", "ray", "-p", "0,0", "-p", "1,0", "--json")
	require.NoError(t, err)

	var r drawResult
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.InDelta(t, 25, r.Path[0][1].X, 1e-9)
}

func TestTools(t *testing.T) {
	out, err := run(t, "tools", "--family", "pitchfork")
	require.NoError(t, err)
	assert.Contains(t, out, "schiff_pitchfork")
	assert.Contains(t, out, "start,middle,end")
	assert.NotContains(t, out, "trend_line")
}

func TestMeasurePosition(t *testing.T) {
	out, err := run(t, "measure", "position", "long", "--entry", "100", "--stop", "100", "--target", "110", "--json")
	require.NoError(t, err)

	var r map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Nil(t, r["riskRewardRatio"])
	assert.Equal(t, "∞", r["riskRewardLabel"])
	assert.Equal(t, 10.0, r["profit"])

	out, err = run(t, "measure", "position", "short", "--entry", "100", "--stop", "104", "--target", "88", "--qty", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "R:R:    3.00")

	_, err = run(t, "measure", "position", "sideways", "--entry", "1", "--stop", "1", "--target", "1")
	assert.Error(t, err)
}

func TestMeasureRange(t *testing.T) {
	out, err := run(t, "measure", "range", "--from", "0,250", "--to", "273600000,262.5")
	require.NoError(t, err)
	assert.Contains(t, out, "12.50 (5.00%) 3d 4h")
}

func TestMeasureRange_DebugLogsThroughContext(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := NewRootCmd(zerolog.Nop())
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "chartdraw.toml"), "--debug",
		"measure", "range", "--from", "0,250", "--to", "273600000,262.5"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "3d 4h")
	assert.NotContains(t, out.String(), "Measured range")
	assert.Contains(t, errOut.String(), "Measured range")
}

func TestPatternCheck(t *testing.T) {
	out, err := run(t, "pattern", "check",
		"-p", "0,0", "-p", "1000,0", "-p", "618,0", "-p", "900,0", "-p", "500,0", "--json")
	require.NoError(t, err)

	var r patternCheck
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.InDelta(t, 0.382, r.ABXA, 1e-9)
	assert.Len(t, r.Points, 5)

	_, err = run(t, "pattern", "check", "-p", "0,0")
	assert.True(t, apperrors.Is(err, apperrors.ErrPointCount))
}

func TestPatternPoints(t *testing.T) {
	out, err := run(t, "pattern", "points", "head_and_shoulders")
	require.NoError(t, err)
	assert.Equal(t, "left_shoulder, left_neck, head, right_neck, right_shoulder", strings.TrimSpace(out))
}

func TestConfigCommands(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "sub", "chartdraw.toml")

	out, err := runWithConfig(t, cfgPath, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, cfgPath, strings.TrimSpace(out))

	_, err = runWithConfig(t, cfgPath, "config", "init")
	require.NoError(t, err)

	out, err = runWithConfig(t, cfgPath, "config", "validate", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)

	require.NoError(t, os.WriteFile(cfgPath, []byte("[freehand]\nhighlighter_alpha = 2.0\n"), 0644))
	out, err = runWithConfig(t, cfgPath, "config", "validate")
	assert.True(t, apperrors.Is(err, apperrors.ErrConfigInvalid))
	assert.Contains(t, out, "Configuration validation failed")

	_, err = runWithConfig(t, cfgPath, "config", "show")
	assert.Error(t, err)
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "config", "show", "--json")
	require.NoError(t, err)

	var cfg map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 100.0, cfg["geometry"]["sample_count"])
}

func TestExamples(t *testing.T) {
	out, err := run(t, "examples")
	require.NoError(t, err)
	assert.Contains(t, out, "Measurement and Patterns")
	assert.Contains(t, out, "chartdraw draw gann_fan")
}
