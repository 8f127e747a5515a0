package drawing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartdraw/internal/config"
	"chartdraw/internal/drawing/cycles"
	apperrors "chartdraw/internal/errors"
	"chartdraw/internal/geometry"
)

func spreadPoints(n int) []geometry.Point {
	pts := make([]geometry.Point, n)
	for i := range pts {
		pts[i] = geometry.Pt(float64(i*10+1), float64((i%2)*20+5+i))
	}
	return pts
}

func TestBuild_EveryKind(t *testing.T) {
	for _, info := range Kinds() {
		t.Run(string(info.Kind), func(t *testing.T) {
			n := info.MinPoints
			if info.MaxPoints < 0 {
				n = 3
			}
			tool, err := Build(ToolSpec{Kind: info.Kind, Points: spreadPoints(n)}, DefaultOptions())
			require.NoError(t, err)
			require.NotNil(t, tool)
			assert.NotEmpty(t, tool.Path())
		})
	}
}

func TestKinds_Listing(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, len(registry))
	for i := 1; i < len(kinds); i++ {
		prev, cur := kinds[i-1], kinds[i]
		assert.True(t, prev.Family < cur.Family || (prev.Family == cur.Family && prev.Kind < cur.Kind))
	}

	info, ok := Lookup(KindPitchfork)
	require.True(t, ok)
	assert.Equal(t, FamilyPitch, info.Family)
	assert.Equal(t, []string{"start", "middle", "end"}, info.PointNames)

	_, ok = Lookup("spiral")
	assert.False(t, ok)
}

func TestBuild_UnknownKind(t *testing.T) {
	_, err := Build(ToolSpec{Kind: "spiral"}, DefaultOptions())
	assert.True(t, apperrors.Is(err, apperrors.ErrUnknownTool))
}

func TestBuild_PointCount(t *testing.T) {
	_, err := Build(ToolSpec{Kind: KindPitchfork, Points: spreadPoints(2)}, DefaultOptions())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrPointCount))

	var pce *apperrors.PointCountError
	require.True(t, apperrors.As(err, &pce))
	assert.Equal(t, 3, pce.Want)
	assert.Equal(t, 2, pce.Got)

	_, err = Build(ToolSpec{Kind: KindBrush}, DefaultOptions())
	assert.True(t, apperrors.Is(err, apperrors.ErrPointCount))

	_, err = Build(ToolSpec{Kind: KindBrush, Points: spreadPoints(40)}, DefaultOptions())
	assert.NoError(t, err)
}

func TestBuild_InvalidInput(t *testing.T) {
	_, err := Build(ToolSpec{Kind: KindRay, Points: []geometry.Point{{X: math.NaN()}, {X: 1}}}, DefaultOptions())
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidPoint))

	_, err = Build(ToolSpec{Kind: KindEllipse, Points: spreadPoints(2), Samples: 1}, DefaultOptions())
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidOption))

	_, err = Build(ToolSpec{Kind: KindRotatedRectangle, Points: spreadPoints(2), Angle: math.Inf(1)}, DefaultOptions())
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidOption))

	_, err = Build(ToolSpec{Kind: KindCyclicLines, Points: spreadPoints(2), PeriodAdjust: -0.5}, DefaultOptions())
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidOption))

	_, err = Build(ToolSpec{Kind: KindSineLine, Points: spreadPoints(2), AmplitudeAdjust: math.NaN()}, DefaultOptions())
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidOption))
}

func TestBuild_CyclicLinesBoundedForTinyPeriod(t *testing.T) {
	tool, err := Build(ToolSpec{
		Kind:         KindCyclicLines,
		Points:       []geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 10}},
		PeriodAdjust: 1e-9,
	}, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, tool.Path(), cycles.MaxCycleLines)
}

func TestBuild_AppliesOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.ExtensionLength = 50
	opts.ExtendedMinX, opts.ExtendedMaxX = -5, 5
	opts.SampleCount = 12

	ray, err := Build(ToolSpec{Kind: KindRay, Points: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}}, opts)
	require.NoError(t, err)
	assert.True(t, ray.Path()[0][1].ApproxEqual(geometry.Pt(50, 0), 1e-9))

	line, err := Build(ToolSpec{Kind: KindExtendedLine, Points: []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}, opts)
	require.NoError(t, err)
	assert.True(t, line.Path()[0][0].ApproxEqual(geometry.Pt(-5, -5), 1e-9))

	ellipse, err := Build(ToolSpec{Kind: KindEllipse, Points: []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}}, opts)
	require.NoError(t, err)
	assert.Len(t, ellipse.Path()[0], 13)

	ellipse, err = Build(ToolSpec{Kind: KindEllipse, Points: []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, Samples: 4}, opts)
	require.NoError(t, err)
	assert.Len(t, ellipse.Path()[0], 5)
}

func TestBuild_Labels(t *testing.T) {
	tool, err := Build(ToolSpec{Kind: KindForecast, Points: []geometry.Point{{X: 0, Y: 100}, {X: 5, Y: 90}}}, DefaultOptions())
	require.NoError(t, err)
	l, ok := tool.(Labeler)
	require.True(t, ok)
	assert.Equal(t, "-10.00 (-10.00%)", l.Label())
}

func TestOptionsFromConfig(t *testing.T) {
	assert.Equal(t, DefaultOptions(), OptionsFromConfig(config.Default()))
}
