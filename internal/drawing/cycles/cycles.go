// Package cycles provides periodic overlays: cyclic lines, time cycles and
// the sine-wave projection.
package cycles

import (
	"math"

	"chartdraw/internal/geometry"
)

// DefaultSinePoints is the sample count used when none is given.
const DefaultSinePoints = 100

// MaxCycleLines bounds the number of boundaries CycleXs emits.
const MaxCycleLines = 1000

// Anchor names used in handle tags.
const (
	AnchorStart = "start"
	AnchorEnd   = "end"
)

// CycleXs returns x = startX, startX+period, startX+2*period, ... while
// x <= endX, with period = |endX-startX| * periodAdjust. A non-positive
// period has no repeat and yields only startX (if startX <= endX). At most
// MaxCycleLines values are returned.
func CycleXs(startX, endX, periodAdjust float64) []float64 {
	period := math.Abs(endX-startX) * periodAdjust
	if startX > endX {
		return nil
	}
	if period <= 0 || math.IsNaN(period) {
		return []float64{startX}
	}
	var xs []float64
	for k := 0; k < MaxCycleLines; k++ {
		x := startX + float64(k)*period
		if x > endX {
			break
		}
		xs = append(xs, x)
	}
	return xs
}

func verticals(xs []float64, top, bottom float64) []geometry.Segment {
	out := make([]geometry.Segment, len(xs))
	for i, x := range xs {
		out[i] = geometry.Seg(geometry.Pt(x, top), geometry.Pt(x, bottom))
	}
	return out
}

// CyclicLines draws a vertical line at every cycle boundary between two
// anchors. The lines span the y range of the anchors.
type CyclicLines struct {
	Start        geometry.Point
	End          geometry.Point
	PeriodAdjust float64
}

// NewCyclicLines creates cyclic lines with the given period multiplier.
func NewCyclicLines(start, end geometry.Point, periodAdjust float64) *CyclicLines {
	return &CyclicLines{Start: start, End: end, PeriodAdjust: periodAdjust}
}

// AdjustStart moves the first anchor.
func (c *CyclicLines) AdjustStart(p geometry.Point) { c.Start = p }

// AdjustEnd moves the second anchor.
func (c *CyclicLines) AdjustEnd(p geometry.Point) { c.End = p }

// Lines returns one vertical segment per cycle boundary.
func (c *CyclicLines) Lines() []geometry.Segment {
	return verticals(CycleXs(c.Start.X, c.End.X, c.PeriodAdjust), c.Start.Y, c.End.Y)
}

// Path draws one polyline per cycle line.
func (c *CyclicLines) Path() geometry.Path { return geometry.PathFromSegments(c.Lines()) }

// Handles returns both anchors.
func (c *CyclicLines) Handles() []geometry.Handle { return anchorHandles(c.Start, c.End) }

// TimeCycles marks the same cycle boundaries as CyclicLines and joins each
// consecutive pair with a half-ellipse arc rising from the base y.
type TimeCycles struct {
	Start        geometry.Point
	End          geometry.Point
	PeriodAdjust float64
	ArcSamples   int
}

// NewTimeCycles creates a time-cycles overlay.
func NewTimeCycles(start, end geometry.Point, periodAdjust float64) *TimeCycles {
	return &TimeCycles{Start: start, End: end, PeriodAdjust: periodAdjust, ArcSamples: 32}
}

// AdjustStart moves the first anchor.
func (c *TimeCycles) AdjustStart(p geometry.Point) { c.Start = p }

// AdjustEnd moves the second anchor.
func (c *TimeCycles) AdjustEnd(p geometry.Point) { c.End = p }

// Lines returns one vertical segment per cycle boundary.
func (c *TimeCycles) Lines() []geometry.Segment {
	return verticals(CycleXs(c.Start.X, c.End.X, c.PeriodAdjust), c.Start.Y, c.End.Y)
}

// Arcs returns a half ellipse between each pair of consecutive boundaries,
// based at Start.Y with height |End.Y-Start.Y| toward End.Y.
func (c *TimeCycles) Arcs() []geometry.Polyline {
	xs := CycleXs(c.Start.X, c.End.X, c.PeriodAdjust)
	height := c.End.Y - c.Start.Y
	n := c.ArcSamples
	if n < 2 {
		n = 2
	}

	var arcs []geometry.Polyline
	for i := 1; i < len(xs); i++ {
		cx := (xs[i-1] + xs[i]) / 2
		rx := (xs[i] - xs[i-1]) / 2
		arc := make(geometry.Polyline, 0, n)
		for _, theta := range geometry.Linspace(math.Pi, 0, n) {
			arc = append(arc, geometry.Pt(cx+rx*math.Cos(theta), c.Start.Y+height*math.Sin(theta)))
		}
		arcs = append(arcs, arc)
	}
	return arcs
}

// Path draws the cycle lines followed by the arcs.
func (c *TimeCycles) Path() geometry.Path {
	return append(geometry.PathFromSegments(c.Lines()), c.Arcs()...)
}

// Handles returns both anchors.
func (c *TimeCycles) Handles() []geometry.Handle { return anchorHandles(c.Start, c.End) }

// SineLine projects a sine wave between two anchors.
type SineLine struct {
	Start           geometry.Point
	End             geometry.Point
	AmplitudeAdjust float64
	PeriodAdjust    float64
	NumPoints       int
}

// NewSineLine creates a sine projection with unit adjustments.
func NewSineLine(start, end geometry.Point) *SineLine {
	return &SineLine{Start: start, End: end, AmplitudeAdjust: 1, PeriodAdjust: 1, NumPoints: DefaultSinePoints}
}

// AdjustStart moves the first anchor.
func (s *SineLine) AdjustStart(p geometry.Point) { s.Start = p }

// AdjustEnd moves the second anchor.
func (s *SineLine) AdjustEnd(p geometry.Point) { s.End = p }

// Amplitude is |End.Y-Start.Y|/2 * AmplitudeAdjust.
func (s *SineLine) Amplitude() float64 {
	return math.Abs(s.End.Y-s.Start.Y) / 2 * s.AmplitudeAdjust
}

// Period is |End.X-Start.X| * PeriodAdjust.
func (s *SineLine) Period() float64 {
	return math.Abs(s.End.X-s.Start.X) * s.PeriodAdjust
}

// Points samples the wave at NumPoints uniform x positions from Start.X to
// End.X, centered on the vertical midpoint of the anchors. A zero period
// has no oscillation and yields a flat line at the midpoint.
func (s *SineLine) Points() []geometry.Point {
	return SinePoints(s.Start, s.End, s.AmplitudeAdjust, s.PeriodAdjust, s.NumPoints)
}

// SinePoints is the pure form of SineLine.Points.
func SinePoints(start, end geometry.Point, amplitudeAdjust, periodAdjust float64, numPoints int) []geometry.Point {
	if numPoints < 2 {
		numPoints = 2
	}
	amplitude := math.Abs(end.Y-start.Y) / 2 * amplitudeAdjust
	period := math.Abs(end.X-start.X) * periodAdjust
	mid := (start.Y + end.Y) / 2

	out := make([]geometry.Point, 0, numPoints)
	for _, x := range geometry.Linspace(start.X, end.X, numPoints) {
		y := mid
		if period != 0 {
			y += amplitude * math.Sin(2*math.Pi*(x-start.X)/period)
		}
		out = append(out, geometry.Pt(x, y))
	}
	return out
}

// Path is the sampled wave.
func (s *SineLine) Path() geometry.Path { return geometry.Path{s.Points()} }

// Handles returns both anchors.
func (s *SineLine) Handles() []geometry.Handle { return anchorHandles(s.Start, s.End) }

func anchorHandles(start, end geometry.Point) []geometry.Handle {
	return []geometry.Handle{
		geometry.NewHandle(start, geometry.HandleAdjust, AnchorStart),
		geometry.NewHandle(end, geometry.HandleAdjust, AnchorEnd),
	}
}
