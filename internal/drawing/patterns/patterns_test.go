package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "chartdraw/internal/errors"
	"chartdraw/internal/geometry"
)

// xabcdOnLine lays the pattern out on y=0 so each leg length is exactly the
// given x distance.
func xabcdOnLine(xa, ab, bc, cd float64) *XABCD {
	x := 0.0
	a := x + xa
	b := a - ab
	c := b + bc
	d := c - cd
	return NewXABCD(geometry.Pt(x, 0), geometry.Pt(a, 0), geometry.Pt(b, 0), geometry.Pt(c, 0), geometry.Pt(d, 0))
}

func TestXABCD_IsValid(t *testing.T) {
	tests := []struct {
		name           string
		xa, ab, bc, cd float64
		want           bool
	}{
		{"mid range", 1000, 618, 309, 432.6, true},
		{"AB/XA at lower bound", 1000, 382, 191, 286.5, true},
		{"AB/XA just below lower bound", 1000, 381.999, 191, 286.5, false},
		{"AB/XA at upper bound", 1000, 886, 443, 664.5, true},
		{"AB/XA above upper bound", 1000, 900, 450, 675, false},
		{"BC/AB below bound", 1000, 500, 100, 150, false},
		{"CD/BC at upper bound", 1000, 500, 250, 404.5, true},
		{"CD/BC just above upper bound", 1000, 500, 250, 404.6, false},
		{"CD/BC below lower bound", 1000, 500, 250, 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := xabcdOnLine(tt.xa, tt.ab, tt.bc, tt.cd)
			assert.Equal(t, tt.want, p.IsValid())
		})
	}
}

func TestXABCD_RatiosExactAtBoundary(t *testing.T) {
	abXA, _, _ := xabcdOnLine(1000, 382, 191, 286.5).Ratios()
	assert.Equal(t, 0.382, abXA)

	_, _, cdBC := xabcdOnLine(1000, 500, 250, 404.5).Ratios()
	assert.Equal(t, 1.618, cdBC)
}

func TestXABCD_DegenerateLegsAreInvalid(t *testing.T) {
	p := NewXABCD(geometry.Pt(0, 0), geometry.Pt(0, 0), geometry.Pt(0, 0), geometry.Pt(0, 0), geometry.Pt(0, 0))
	assert.False(t, p.IsValid())
}

func TestXABCD_Handles(t *testing.T) {
	p := xabcdOnLine(1000, 618, 309, 432.6)
	hs := p.Handles()
	require.Len(t, hs, 5)
	for i, name := range []string{"X", "A", "B", "C", "D"} {
		assert.Equal(t, geometry.HandleAdjust, hs[i].Role)
		assert.Equal(t, []string{name}, hs[i].Anchors)
	}
}

func TestNew_PointCount(t *testing.T) {
	_, err := New(KindABCD, []geometry.Point{geometry.Pt(0, 0)})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrPointCount))
	var pce *apperrors.PointCountError
	require.True(t, apperrors.As(err, &pce))
	assert.Equal(t, 4, pce.Want)
	assert.Equal(t, 1, pce.Got)

	_, err = New(Kind("nope"), nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnknownTool))

	p, err := New(KindABCD, []geometry.Point{geometry.Pt(0, 0), geometry.Pt(1, 1), geometry.Pt(2, 0), geometry.Pt(3, 1)})
	require.NoError(t, err)
	assert.Len(t, p.Handles(), 4)
}

func TestHeadAndShoulders_Neckline(t *testing.T) {
	p := NewHeadAndShoulders(
		geometry.Pt(0, 5), geometry.Pt(2, 8), geometry.Pt(4, 2), geometry.Pt(6, 8), geometry.Pt(8, 5),
	)
	path := p.Path()
	require.Len(t, path, 2)
	assert.Len(t, path[0], 5)
	assert.Equal(t, geometry.Polyline{geometry.Pt(2, 8), geometry.Pt(6, 8)}, path[1])

	head, ok := p.Point("head")
	require.True(t, ok)
	assert.Equal(t, geometry.Pt(4, 2), head)
}

func TestTrianglePattern_Boundaries(t *testing.T) {
	p := NewTrianglePattern(
		geometry.Pt(0, 0), geometry.Pt(2, 10), geometry.Pt(4, 2), geometry.Pt(6, 8), geometry.Pt(8, 4),
	)
	path := p.Path()
	require.Len(t, path, 3)
	assert.Len(t, path[1], 3)
	assert.Len(t, path[2], 2)
}

func TestPattern_Move(t *testing.T) {
	p := NewThreeDrives(
		geometry.Pt(0, 0), geometry.Pt(1, 1), geometry.Pt(2, 0), geometry.Pt(3, 2), geometry.Pt(4, 1), geometry.Pt(5, 3),
	)
	p.Move(10, 0)
	assert.Equal(t, geometry.Pt(15, 3), p.Points()[5])

	p.MovePoint(0, geometry.Pt(-1, -1))
	assert.Equal(t, geometry.Pt(-1, -1), p.Points()[0])

	c := NewCypher(geometry.Pt(0, 0), geometry.Pt(1, 1), geometry.Pt(2, 0), geometry.Pt(3, 2), geometry.Pt(4, 1))
	assert.Equal(t, KindCypher, c.Kind())
}
