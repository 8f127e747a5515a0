package lines

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartdraw/internal/geometry"
)

func TestTrendLine_AdjustRecomputesAngle(t *testing.T) {
	l := NewTrendLine(geometry.Pt(0, 0), geometry.Pt(10, 0))
	assert.InDelta(t, 0, l.Angle(), 1e-12)

	l.AdjustEnd(geometry.Pt(0, 10))
	assert.InDelta(t, math.Pi/2, l.Angle(), 1e-12)
	assert.Equal(t, geometry.Pt(0, 0), l.Start())

	l.AdjustStart(geometry.Pt(10, 10))
	assert.InDelta(t, math.Pi, l.Angle(), 1e-12)
	assert.Equal(t, geometry.Pt(0, 10), l.End())
}

func TestRay_ExtendsAlongDirection(t *testing.T) {
	r := NewRay(geometry.Pt(1, 1), geometry.Pt(4, 5))
	path := r.Path()
	require.Len(t, path, 1)
	require.Len(t, path[0], 2)

	far := path[0][1]
	assert.InDelta(t, geometry.ExtensionLength, far.Distance(r.Start), 1e-6)
	assert.InDelta(t, 1+0.6*geometry.ExtensionLength, far.X, 1e-6)
	assert.InDelta(t, 1+0.8*geometry.ExtensionLength, far.Y, 1e-6)

	// Recomputed on every query.
	r.AdjustEnd(geometry.Pt(1, 0))
	assert.InDelta(t, 1-geometry.ExtensionLength, r.Path()[0][1].Y, 1e-6)
}

func TestRay_DegenerateStaysAtStart(t *testing.T) {
	r := NewRay(geometry.Pt(3, 3), geometry.Pt(3, 3))
	assert.Equal(t, geometry.Pt(3, 3), r.Far())
}

func TestExtendedLine_Endpoints(t *testing.T) {
	l := NewExtendedLine(geometry.Pt(0, 1), geometry.Pt(1, 3))
	a, b := l.Endpoints()
	assert.InDelta(t, -geometry.ExtensionLength, a.X, 1e-9)
	assert.InDelta(t, 1-2*geometry.ExtensionLength, a.Y, 1e-6)
	assert.InDelta(t, 1+2*geometry.ExtensionLength, b.Y, 1e-6)
}

func TestExtendedLine_CustomBounds(t *testing.T) {
	l := NewExtendedLine(geometry.Pt(0, 0), geometry.Pt(1, 1)).WithBounds(-5, 5)
	a, b := l.Endpoints()
	assert.InDelta(t, -5, a.Y, 1e-9)
	assert.InDelta(t, 5, b.Y, 1e-9)
}

func TestExtendedLine_Vertical(t *testing.T) {
	l := NewExtendedLine(geometry.Pt(7, 0), geometry.Pt(7, 10))
	a, b := l.Endpoints()
	assert.Equal(t, geometry.Pt(7, -geometry.ExtensionLength), a)
	assert.Equal(t, geometry.Pt(7, geometry.ExtensionLength), b)
	assert.False(t, math.IsNaN(a.Y) || math.IsInf(b.Y, 0))
}

func TestHorizontalVerticalCross(t *testing.T) {
	h := NewHorizontalLine(42)
	assert.Equal(t, 42.0, h.Path()[0][0].Y)
	assert.Equal(t, 42.0, h.Path()[0][1].Y)

	v := NewVerticalLine(-3)
	v.Adjust(geometry.Pt(8, 100))
	assert.Equal(t, 8.0, v.Path()[0][0].X)

	c := NewCrossLine(geometry.Pt(2, 5))
	require.Len(t, c.Path(), 2)
	assert.Equal(t, 5.0, c.Path()[0][0].Y)
	assert.Equal(t, 2.0, c.Path()[1][0].X)
}

func TestTrendAngle(t *testing.T) {
	tests := []struct {
		end   geometry.Point
		deg   float64
		label string
	}{
		{geometry.Pt(10, 10), 45, "45.00°"},
		{geometry.Pt(-10, 0), 180, "180.00°"},
		{geometry.Pt(0, -5), -90, "-90.00°"},
	}
	for _, tt := range tests {
		a := NewTrendAngle(geometry.Pt(0, 0), tt.end)
		assert.InDelta(t, tt.deg, a.Degrees(), 1e-9)
		assert.Equal(t, tt.label, a.Label())
	}
}
