// Package gann provides the Gann box, fixed square, fan and ratio square.
package gann

import (
	"math"
	"time"

	"chartdraw/internal/geometry"
)

// FanRays is the number of rays a Gann fan emits, spanning 0° to 90°.
const FanRays = 9

// Ratios are the numerators of the Gann square grid; each level sits at
// ratio/RatioDenominator of the square size.
var Ratios = []float64{1, 2, 3, 4, 8}

// RatioDenominator divides Ratios into fractions of the square.
const RatioDenominator = 8.0

// SquareAngles are the angle rays of the Gann square, in degrees.
var SquareAngles = []float64{15, 30, 45, 60, 75}

// Anchor names used in handle tags.
const (
	AnchorStart = "start"
	AnchorEnd   = "end"
)

// boxSegments returns the 4 sides, 2 diagonals and 2 midlines of the box
// spanned by a and b.
func boxSegments(a, b geometry.Point) []geometry.Segment {
	tr := geometry.Pt(b.X, a.Y)
	bl := geometry.Pt(a.X, b.Y)
	mid := geometry.Midpoint(a, b)
	return []geometry.Segment{
		geometry.Seg(a, tr),
		geometry.Seg(tr, b),
		geometry.Seg(b, bl),
		geometry.Seg(bl, a),
		geometry.Seg(a, b),
		geometry.Seg(tr, bl),
		geometry.Seg(geometry.Pt(a.X, mid.Y), geometry.Pt(b.X, mid.Y)),
		geometry.Seg(geometry.Pt(mid.X, a.Y), geometry.Pt(mid.X, b.Y)),
	}
}

func cornerHandles(a, b geometry.Point) []geometry.Handle {
	return []geometry.Handle{
		geometry.NewHandle(a, geometry.HandleAdjust, AnchorStart),
		geometry.NewHandle(b, geometry.HandleAdjust, AnchorEnd),
		geometry.NewHandle(geometry.Midpoint(a, b), geometry.HandleMove, AnchorStart, AnchorEnd),
	}
}

// Box is a Gann box between two corners.
type Box struct {
	Start geometry.Point
	End   geometry.Point
}

// NewBox creates a Gann box.
func NewBox(start, end geometry.Point) *Box {
	return &Box{Start: start, End: end}
}

// Move translates the box.
func (b *Box) Move(dx, dy float64) {
	b.Start = b.Start.Translate(dx, dy)
	b.End = b.End.Translate(dx, dy)
}

// AdjustStart moves the first corner.
func (b *Box) AdjustStart(p geometry.Point) { b.Start = p }

// AdjustEnd moves the second corner.
func (b *Box) AdjustEnd(p geometry.Point) { b.End = p }

// Lines returns the 8 box segments.
func (b *Box) Lines() []geometry.Segment { return boxSegments(b.Start, b.End) }

// Path draws the eight box segments.
func (b *Box) Path() geometry.Path { return geometry.PathFromSegments(b.Lines()) }

// Handles returns the two anchor corners and the center.
func (b *Box) Handles() []geometry.Handle { return cornerHandles(b.Start, b.End) }

// SquareFixed is a Gann box forced to a square.
type SquareFixed struct {
	Start geometry.Point
	End   geometry.Point
}

// NewSquareFixed creates a fixed Gann square.
func NewSquareFixed(start, end geometry.Point) *SquareFixed {
	return &SquareFixed{Start: start, End: end}
}

// AdjustStart moves the first corner.
func (s *SquareFixed) AdjustStart(p geometry.Point) { s.Start = p }

// AdjustEnd moves the second corner.
func (s *SquareFixed) AdjustEnd(p geometry.Point) { s.End = p }

// Corner returns the second corner of the square: the side is the smaller
// of |dx| and |dy|, laid out in the direction of End.
func (s *SquareFixed) Corner() geometry.Point {
	d := s.End.Sub(s.Start)
	side := math.Min(math.Abs(d.X), math.Abs(d.Y))
	return s.Start.Translate(sign(d.X)*side, sign(d.Y)*side)
}

// Lines returns the 8 box segments of the square.
func (s *SquareFixed) Lines() []geometry.Segment { return boxSegments(s.Start, s.Corner()) }

// Path draws the eight segments of the squared box.
func (s *SquareFixed) Path() geometry.Path { return geometry.PathFromSegments(s.Lines()) }

// Handles returns the start, the squared corner and their midpoint.
func (s *SquareFixed) Handles() []geometry.Handle { return cornerHandles(s.Start, s.Corner()) }

// Fan is a Gann fan: rays from Start at k/8 of a right angle from the
// Start->End direction.
type Fan struct {
	Start geometry.Point
	End   geometry.Point
}

// NewFan creates a Gann fan.
func NewFan(start, end geometry.Point) *Fan {
	return &Fan{Start: start, End: end}
}

// AdjustStart moves the fan origin.
func (f *Fan) AdjustStart(p geometry.Point) { f.Start = p }

// AdjustEnd moves the base ray end.
func (f *Fan) AdjustEnd(p geometry.Point) { f.End = p }

// Lines returns the FanRays rays; ray k is Start->End rotated by k/8 * 90°.
func (f *Fan) Lines() []geometry.Segment {
	v := f.End.Sub(f.Start)
	rays := make([]geometry.Segment, FanRays)
	for k := 0; k < FanRays; k++ {
		theta := float64(k) / float64(FanRays-1) * math.Pi / 2
		rays[k] = geometry.Seg(f.Start, f.Start.Add(geometry.Rotate(v, theta)))
	}
	return rays
}

// Path draws the nine fan rays.
func (f *Fan) Path() geometry.Path { return geometry.PathFromSegments(f.Lines()) }

// Handles returns the fan origin and the end anchor.
func (f *Fan) Handles() []geometry.Handle {
	return []geometry.Handle{
		geometry.NewHandle(f.Start, geometry.HandleMove, AnchorStart),
		geometry.NewHandle(f.End, geometry.HandleRotate, AnchorEnd),
	}
}

// Square is the Gann ratio square with its price/time grid and angle rays.
type Square struct {
	Start geometry.Point
	End   geometry.Point
}

// NewSquare creates a Gann square.
func NewSquare(start, end geometry.Point) *Square {
	return &Square{Start: start, End: end}
}

// AdjustStart moves the origin corner.
func (s *Square) AdjustStart(p geometry.Point) { s.Start = p }

// AdjustEnd moves the sizing corner.
func (s *Square) AdjustEnd(p geometry.Point) { s.End = p }

// Size is max(|dx|, |dy|).
func (s *Square) Size() float64 {
	d := s.End.Sub(s.Start)
	return math.Max(math.Abs(d.X), math.Abs(d.Y))
}

func (s *Square) direction() (sx, sy float64) {
	d := s.End.Sub(s.Start)
	return sign(d.X), sign(d.Y)
}

// Corner returns the corner opposite Start.
func (s *Square) Corner() geometry.Point {
	sx, sy := s.direction()
	size := s.Size()
	return s.Start.Translate(sx*size, sy*size)
}

func (s *Square) levelOffsets() []float64 {
	size := s.Size()
	out := make([]float64, len(Ratios))
	for i, r := range Ratios {
		out[i] = size * r / RatioDenominator
	}
	return out
}

// PriceLines returns the horizontal grid lines at each ratio of the size.
func (s *Square) PriceLines() []geometry.Segment {
	sx, sy := s.direction()
	size := s.Size()
	var out []geometry.Segment
	for _, off := range s.levelOffsets() {
		y := s.Start.Y + sy*off
		out = append(out, geometry.Seg(geometry.Pt(s.Start.X, y), geometry.Pt(s.Start.X+sx*size, y)))
	}
	return out
}

// TimeLines returns the vertical grid lines at each ratio of the size.
func (s *Square) TimeLines() []geometry.Segment {
	sx, sy := s.direction()
	size := s.Size()
	var out []geometry.Segment
	for _, off := range s.levelOffsets() {
		x := s.Start.X + sx*off
		out = append(out, geometry.Seg(geometry.Pt(x, s.Start.Y), geometry.Pt(x, s.Start.Y+sy*size)))
	}
	return out
}

// AngleLines returns rays from Start at each of SquareAngles, ending on the
// square's far edge.
func (s *Square) AngleLines() []geometry.Segment {
	sx, sy := s.direction()
	size := s.Size()
	var out []geometry.Segment
	for _, deg := range SquareAngles {
		t := math.Tan(geometry.Radians(deg))
		dx, dy := size, size*t
		if t > 1 {
			dx, dy = size/t, size
		}
		out = append(out, geometry.Seg(s.Start, s.Start.Translate(sx*dx, sy*dy)))
	}
	return out
}

// Lines returns the outline, price lines, time lines and angle rays.
func (s *Square) Lines() []geometry.Segment {
	c := s.Corner()
	tr := geometry.Pt(c.X, s.Start.Y)
	bl := geometry.Pt(s.Start.X, c.Y)
	out := []geometry.Segment{
		geometry.Seg(s.Start, tr),
		geometry.Seg(tr, c),
		geometry.Seg(c, bl),
		geometry.Seg(bl, s.Start),
	}
	out = append(out, s.PriceLines()...)
	out = append(out, s.TimeLines()...)
	return append(out, s.AngleLines()...)
}

// IntersectionPoints returns the grid crossings of every price level with
// every time level, row by row.
func (s *Square) IntersectionPoints() []geometry.Point {
	sx, sy := s.direction()
	offsets := s.levelOffsets()
	out := make([]geometry.Point, 0, len(offsets)*len(offsets))
	for _, py := range offsets {
		for _, tx := range offsets {
			out = append(out, geometry.Pt(s.Start.X+sx*tx, s.Start.Y+sy*py))
		}
	}
	return out
}

// PriceLevels scales basePrice by each grid fraction.
func (s *Square) PriceLevels(basePrice float64) []float64 {
	return CalculatePriceLevels(basePrice)
}

// TimeLevels advances baseDate by each ratio numerator in calendar days.
func (s *Square) TimeLevels(baseDate time.Time) []time.Time {
	return CalculateTimeLevels(baseDate)
}

// CalculatePriceLevels returns basePrice * ratio/RatioDenominator for each
// ratio, i.e. the grid fractions 1/8 .. 8/8 of the base price.
func CalculatePriceLevels(basePrice float64) []float64 {
	out := make([]float64, len(Ratios))
	for i, r := range Ratios {
		out[i] = basePrice * r / RatioDenominator
	}
	return out
}

// CalculateTimeLevels returns baseDate plus ratio calendar days for each
// ratio. Unlike CalculatePriceLevels the numerator is used as is: level 1/8
// lands one day after baseDate and level 8/8 eight days after, so the day
// unit plays the role of one grid step. Weekends and exchange holidays are
// counted like any other day.
func CalculateTimeLevels(baseDate time.Time) []time.Time {
	out := make([]time.Time, len(Ratios))
	for i, r := range Ratios {
		out[i] = baseDate.AddDate(0, 0, int(r))
	}
	return out
}

// Path draws the outline, level lines and angle rays.
func (s *Square) Path() geometry.Path { return geometry.PathFromSegments(s.Lines()) }

// Handles returns the start, the outer square corner and their midpoint.
func (s *Square) Handles() []geometry.Handle { return cornerHandles(s.Start, s.Corner()) }

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
