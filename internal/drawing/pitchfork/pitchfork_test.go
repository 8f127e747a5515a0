package pitchfork

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartdraw/internal/geometry"
)

var (
	start  = geometry.Pt(0, 0)
	middle = geometry.Pt(4, -6)
	end    = geometry.Pt(8, 2)
)

func linesWithRole(lines []Line, role LineRole) []Line {
	var out []Line
	for _, l := range lines {
		if l.Role == role {
			out = append(out, l)
		}
	}
	return out
}

func TestCompute_LineCounts(t *testing.T) {
	tests := []struct {
		variant  Variant
		tines    int
		warnings int
	}{
		{Standard, 2, 0},
		{Schiff, 2, 0},
		{ModifiedSchiff, 2, 0},
		{Inside, 2, 0},
		{Barley, 2, 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			lines := Compute(tt.variant, start, middle, end)
			assert.Len(t, linesWithRole(lines, RoleHandle), 1)
			assert.Len(t, linesWithRole(lines, RoleMedian), 1)
			assert.Len(t, linesWithRole(lines, RoleTine), tt.tines)
			assert.Len(t, linesWithRole(lines, RoleWarning), tt.warnings)
		})
	}
}

func TestCompute_TinesParallelToMedian(t *testing.T) {
	for _, v := range []Variant{Standard, Schiff, ModifiedSchiff, Inside, Barley} {
		lines := Compute(v, start, middle, end)
		median := linesWithRole(lines, RoleMedian)[0].Segment.Vector()
		for _, l := range lines[2:] {
			tine := l.Segment.Vector()
			assert.InDelta(t, 0, median.Cross(tine), 1e-9, "variant %s", v)
			assert.InDelta(t, median.Length(), tine.Length(), 1e-9, "variant %s", v)
		}
	}
}

func TestCompute_Standard(t *testing.T) {
	lines := Compute(Standard, start, middle, end)
	assert.Equal(t, geometry.Seg(start, middle), lines[0].Segment)
	assert.Equal(t, geometry.Seg(middle, geometry.Pt(4, 1)), lines[1].Segment)
	assert.Equal(t, geometry.Seg(start, geometry.Pt(0, 7)), lines[2].Segment)
	assert.Equal(t, geometry.Seg(end, geometry.Pt(8, 9)), lines[3].Segment)
}

func TestCompute_ModifiedSchiffHandle(t *testing.T) {
	lines := Compute(ModifiedSchiff, start, middle, end)
	assert.Equal(t, geometry.Seg(start, geometry.Pt(2, -3)), lines[0].Segment)
	assert.Equal(t, geometry.Seg(geometry.Pt(2, -3), end), lines[1].Segment)
}

func TestCompute_BarleyWarnings(t *testing.T) {
	lines := linesWithRole(Compute(Barley, start, middle, end), RoleWarning)
	require.Len(t, lines, 2)
	// Base midpoint (4,1), offset (4,1).
	assert.InDelta(t, 4+4*0.618, lines[0].Segment.Start.X, 1e-9)
	assert.InDelta(t, 4+4*1.618, lines[1].Segment.Start.X, 1e-9)
}

func TestPitchfork_MoveTranslatesEverything(t *testing.T) {
	p := New(Standard, start, middle, end)
	before := p.Lines()

	p.MoveMiddle(middle.Translate(5, -1))

	s, m, e := p.Anchors()
	assert.Equal(t, start.Translate(5, -1), s)
	assert.Equal(t, middle.Translate(5, -1), m)
	assert.Equal(t, end.Translate(5, -1), e)

	after := p.Lines()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Segment.Translate(5, -1), after[i].Segment)
		assert.Equal(t, before[i].Role, after[i].Role)
	}
}

func TestPitchfork_AdjustAngle(t *testing.T) {
	p := New(Schiff, start, middle, end)
	newEnd := geometry.Pt(-2, 8) // start->end rotated by +90°

	p.AdjustAngle(newEnd)

	s, m, e := p.Anchors()
	assert.Equal(t, start, s)
	assert.Equal(t, newEnd, e)
	assert.InDelta(t, middle.Distance(start), m.Distance(s), 1e-9)
	assert.InDelta(t, 6, m.X, 1e-9)
	assert.InDelta(t, 4, m.Y, 1e-9)

	assert.Equal(t, Compute(Schiff, s, m, e), p.Lines())
}

func TestPitchfork_Handles(t *testing.T) {
	p := New(Inside, start, middle, end)
	hs := p.Handles()
	require.Len(t, hs, 3)
	assert.Equal(t, geometry.HandleRotate, hs[2].Role)
	assert.Len(t, p.Path(), 4)
	assert.False(t, math.IsNaN(p.Path()[3][1].X))
}
