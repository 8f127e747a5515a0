package cycles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartdraw/internal/geometry"
)

func TestCycleXs(t *testing.T) {
	tests := []struct {
		name            string
		start, end, adj float64
		want            []float64
	}{
		{"quarter period", 0, 100, 0.25, []float64{0, 25, 50, 75, 100}},
		{"full period", 10, 30, 1, []float64{10, 30}},
		{"period longer than span", 0, 10, 1.5, []float64{0}},
		{"zero period", 5, 5, 1, []float64{5}},
		{"zero adjust", 0, 10, 0, []float64{0}},
		{"end before start", 10, 0, 0.5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CycleXs(tt.start, tt.end, tt.adj))
		})
	}
}

func TestCycleXs_BoundedForTinyPeriods(t *testing.T) {
	xs := CycleXs(0, 100, 1e-9)
	require.Len(t, xs, MaxCycleLines)
	assert.InDelta(t, float64(MaxCycleLines-1)*1e-7, xs[len(xs)-1], 1e-12)

	assert.Len(t, NewTimeCycles(geometry.Pt(0, 0), geometry.Pt(100, 10), 1e-12).Lines(), MaxCycleLines)
}

func TestCyclicLines(t *testing.T) {
	c := NewCyclicLines(geometry.Pt(0, 10), geometry.Pt(60, 90), 0.5)
	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, geometry.Seg(geometry.Pt(30, 10), geometry.Pt(30, 90)), lines[1])
	assert.Len(t, c.Handles(), 2)
}

func TestTimeCycles_Arcs(t *testing.T) {
	c := NewTimeCycles(geometry.Pt(0, 0), geometry.Pt(40, 10), 0.5)
	arcs := c.Arcs()
	require.Len(t, arcs, 2)
	first := arcs[0]
	require.Len(t, first, 32)
	assert.InDelta(t, 0, first[0].X, 1e-9)
	assert.InDelta(t, 20, first[len(first)-1].X, 1e-9)
	for _, p := range first {
		assert.True(t, p.Y >= -1e-9 && p.Y <= 10+1e-9)
	}
	assert.Len(t, c.Path(), 3+2)
}

func TestSinePoints(t *testing.T) {
	pts := SinePoints(geometry.Pt(0, 0), geometry.Pt(100, 20), 1, 1, 5)
	require.Len(t, pts, 5)
	want := []float64{10, 20, 10, 0, 10}
	for i, p := range pts {
		assert.InDelta(t, float64(i)*25, p.X, 1e-9)
		assert.InDelta(t, want[i], p.Y, 1e-9)
	}
}

func TestSineLine_Adjustments(t *testing.T) {
	s := NewSineLine(geometry.Pt(0, 0), geometry.Pt(100, 20))
	s.AmplitudeAdjust = 2
	s.PeriodAdjust = 0.5
	assert.Equal(t, 20.0, s.Amplitude())
	assert.Equal(t, 50.0, s.Period())

	pts := s.Points()
	require.Len(t, pts, DefaultSinePoints)
	for _, p := range pts {
		assert.LessOrEqual(t, math.Abs(p.Y-10), 20+1e-9)
	}
}

func TestSinePoints_ZeroPeriodIsFlat(t *testing.T) {
	pts := SinePoints(geometry.Pt(5, 0), geometry.Pt(5, 20), 1, 1, 3)
	for _, p := range pts {
		assert.Equal(t, 10.0, p.Y)
		assert.False(t, math.IsNaN(p.Y))
	}
}
