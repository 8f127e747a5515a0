package elliott

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartdraw/internal/geometry"
)

func TestGenerate_PointCounts(t *testing.T) {
	tests := []struct {
		waveType WaveType
		interior int
	}{
		{Impulse, 4},
		{Correction, 2},
		{Triangle, 4},
		{DoubleCombo, 4},
		{TripleCombo, 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.waveType), func(t *testing.T) {
			w := Generate(tt.waveType, geometry.Pt(0, 0), geometry.Pt(100, -50))
			require.Len(t, w.Points, tt.interior+2)
			assert.Len(t, w.AdjustmentPoints, len(w.Points))

			first, last := w.Points[0], w.Points[len(w.Points)-1]
			assert.Equal(t, PointStart, first.Type)
			assert.Equal(t, geometry.Pt(0, 0), first.Point)
			assert.Equal(t, PointEnd, last.Type)
			assert.Equal(t, geometry.Pt(100, -50), last.Point)
			for i, p := range w.Points[1 : len(w.Points)-1] {
				assert.Equal(t, PointLine, p.Type)
				assert.Equal(t, []string{PointName(i + 1)}, w.AdjustmentPoints[i+1].Anchors)
			}
		})
	}
}

func TestGenerate_ImpulseFractions(t *testing.T) {
	w := Generate(Impulse, geometry.Pt(10, 0), geometry.Pt(110, 200))
	want := []geometry.Point{
		geometry.Pt(10, 0),
		geometry.Pt(30, 80),
		geometry.Pt(45, 40),
		geometry.Pt(70, 160),
		geometry.Pt(85, 120),
		geometry.Pt(110, 200),
	}
	require.Len(t, w.Points, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, w.Points[i].X, 1e-9)
		assert.InDelta(t, want[i].Y, w.Points[i].Y, 1e-9)
	}
	assert.Equal(t, "3", w.Points[3].Label)
}

func TestGenerate_ImpulseZigZags(t *testing.T) {
	w := Generate(Impulse, geometry.Pt(0, 0), geometry.Pt(100, 100))
	for i := 1; i < len(w.Points); i++ {
		up := w.Points[i].Y > w.Points[i-1].Y
		assert.Equal(t, i%2 == 1, up, "leg %d", i)
	}
}

func TestGenerate_UnknownType(t *testing.T) {
	w := Generate(WaveType("spiral"), geometry.Pt(0, 0), geometry.Pt(1, 1))
	require.Len(t, w.Points, 2)
}

func TestTool_Handles(t *testing.T) {
	tool := NewTool(Correction, geometry.Pt(0, 0), geometry.Pt(10, 10))
	tool.Move(5, 5)
	hs := tool.Handles()
	require.Len(t, hs, 4)
	assert.Equal(t, geometry.HandleMove, hs[0].Role)
	assert.Equal(t, geometry.Pt(5, 5), hs[0].Point)
	assert.Equal(t, geometry.HandleScale, hs[3].Role)
	assert.Len(t, tool.Path()[0], 4)
}
