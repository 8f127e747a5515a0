// Package lines provides the primitive line tools: trend lines, rays,
// extended lines, horizontal/vertical/cross lines and the trend angle.
package lines

import (
	"math"

	"chartdraw/internal/geometry"
	"chartdraw/pkg/utils"
)

// Anchor names used in handle tags.
const (
	AnchorStart  = "start"
	AnchorEnd    = "end"
	AnchorCenter = "center"
	AnchorLevel  = "level"
)

// TrendLine is a finite segment between two anchors.
type TrendLine struct {
	start, end geometry.Point
	angle      float64 // radians, cached from start->end
}

// NewTrendLine creates a trend line from start to end.
func NewTrendLine(start, end geometry.Point) *TrendLine {
	l := &TrendLine{start: start, end: end}
	l.recompute()
	return l
}

func (l *TrendLine) recompute() {
	l.angle = l.end.Sub(l.start).Angle()
}

// Start returns the start anchor.
func (l *TrendLine) Start() geometry.Point { return l.start }

// End returns the end anchor.
func (l *TrendLine) End() geometry.Point { return l.end }

// Angle returns the cached direction of the line in radians.
func (l *TrendLine) Angle() float64 { return l.angle }

// AdjustStart moves the start anchor, leaving end fixed.
func (l *TrendLine) AdjustStart(p geometry.Point) {
	l.start = p
	l.recompute()
}

// AdjustEnd moves the end anchor, leaving start fixed.
func (l *TrendLine) AdjustEnd(p geometry.Point) {
	l.end = p
	l.recompute()
}

// Move translates both anchors.
func (l *TrendLine) Move(dx, dy float64) {
	l.start = l.start.Translate(dx, dy)
	l.end = l.end.Translate(dx, dy)
}

// Path is the segment between the anchors.
func (l *TrendLine) Path() geometry.Path {
	return geometry.Path{{l.start, l.end}}
}

// Handles returns both anchors and the midpoint move handle.
func (l *TrendLine) Handles() []geometry.Handle {
	return []geometry.Handle{
		geometry.NewHandle(l.start, geometry.HandleAdjust, AnchorStart),
		geometry.NewHandle(l.end, geometry.HandleAdjust, AnchorEnd),
		geometry.NewHandle(geometry.Midpoint(l.start, l.end), geometry.HandleMove, AnchorStart, AnchorEnd),
	}
}

// Ray starts at an anchor and runs through a second anchor toward the
// viewport edge. A non-positive Length projects ExtensionLength units.
type Ray struct {
	Start  geometry.Point
	End    geometry.Point
	Length float64
}

// NewRay creates a ray from start through end.
func NewRay(start, end geometry.Point) *Ray {
	return &Ray{Start: start, End: end, Length: geometry.ExtensionLength}
}

// AdjustStart moves the origin of the ray.
func (r *Ray) AdjustStart(p geometry.Point) { r.Start = p }

// AdjustEnd moves the direction anchor of the ray.
func (r *Ray) AdjustEnd(p geometry.Point) { r.End = p }

// Far returns the far end of the ray, Length units from Start. A ray whose
// anchors coincide has no direction and ends at Start.
func (r *Ray) Far() geometry.Point {
	length := r.Length
	if length <= 0 {
		length = geometry.ExtensionLength
	}
	dir := r.End.Sub(r.Start).Unit()
	return r.Start.Add(dir.Scale(length))
}

// Path runs from Start to the far point.
func (r *Ray) Path() geometry.Path {
	return geometry.Path{{r.Start, r.Far()}}
}

// Handles returns both anchors.
func (r *Ray) Handles() []geometry.Handle {
	return []geometry.Handle{
		geometry.NewHandle(r.Start, geometry.HandleAdjust, AnchorStart),
		geometry.NewHandle(r.End, geometry.HandleRotate, AnchorEnd),
	}
}

// ExtendedLine is the infinite line through two anchors, clipped to an x range.
type ExtendedLine struct {
	Start geometry.Point
	End   geometry.Point
	MinX  float64
	MaxX  float64
}

// NewExtendedLine creates an extended line clipped to ±ExtensionLength.
func NewExtendedLine(start, end geometry.Point) *ExtendedLine {
	return &ExtendedLine{
		Start: start,
		End:   end,
		MinX:  -geometry.ExtensionLength,
		MaxX:  geometry.ExtensionLength,
	}
}

// WithBounds overrides the x range the line is clipped to.
func (l *ExtendedLine) WithBounds(minX, maxX float64) *ExtendedLine {
	l.MinX, l.MaxX = minX, maxX
	return l
}

// AdjustStart moves the first anchor.
func (l *ExtendedLine) AdjustStart(p geometry.Point) { l.Start = p }

// AdjustEnd moves the second anchor.
func (l *ExtendedLine) AdjustEnd(p geometry.Point) { l.End = p }

// Endpoints returns the line evaluated at MinX and MaxX. A vertical line
// (equal x anchors) has no slope; it returns the anchor x over the same
// range used for y instead.
func (l *ExtendedLine) Endpoints() (geometry.Point, geometry.Point) {
	dx := l.End.X - l.Start.X
	if dx == 0 {
		return geometry.Pt(l.Start.X, l.MinX), geometry.Pt(l.Start.X, l.MaxX)
	}
	slope := math.Tan(math.Atan2(l.End.Y-l.Start.Y, dx))
	yAt := func(x float64) float64 {
		return l.Start.Y + (x-l.Start.X)*slope
	}
	return geometry.Pt(l.MinX, yAt(l.MinX)), geometry.Pt(l.MaxX, yAt(l.MaxX))
}

// Path is the line clipped to its x bounds.
func (l *ExtendedLine) Path() geometry.Path {
	a, b := l.Endpoints()
	return geometry.Path{{a, b}}
}

// Handles returns both anchors.
func (l *ExtendedLine) Handles() []geometry.Handle {
	return []geometry.Handle{
		geometry.NewHandle(l.Start, geometry.HandleAdjust, AnchorStart),
		geometry.NewHandle(l.End, geometry.HandleAdjust, AnchorEnd),
	}
}

// HorizontalLine is a price level spanning the full x range.
type HorizontalLine struct {
	Y float64
}

// NewHorizontalLine creates a horizontal line at y.
func NewHorizontalLine(y float64) *HorizontalLine {
	return &HorizontalLine{Y: y}
}

// Adjust moves the line to the y of p.
func (l *HorizontalLine) Adjust(p geometry.Point) { l.Y = p.Y }

// Path spans ExtensionLength on each side of x = 0.
func (l *HorizontalLine) Path() geometry.Path {
	return geometry.Path{{
		geometry.Pt(-geometry.ExtensionLength, l.Y),
		geometry.Pt(geometry.ExtensionLength, l.Y),
	}}
}

// Handles returns a single handle on the line at x = 0.
func (l *HorizontalLine) Handles() []geometry.Handle {
	return []geometry.Handle{geometry.NewHandle(geometry.Pt(0, l.Y), geometry.HandleMove, AnchorLevel)}
}

// VerticalLine is a time marker spanning the full y range.
type VerticalLine struct {
	X float64
}

// NewVerticalLine creates a vertical line at x.
func NewVerticalLine(x float64) *VerticalLine {
	return &VerticalLine{X: x}
}

// Adjust moves the line to the x of p.
func (l *VerticalLine) Adjust(p geometry.Point) { l.X = p.X }

// Path spans ExtensionLength on each side of y = 0.
func (l *VerticalLine) Path() geometry.Path {
	return geometry.Path{{
		geometry.Pt(l.X, -geometry.ExtensionLength),
		geometry.Pt(l.X, geometry.ExtensionLength),
	}}
}

// Handles returns a single handle on the line at y = 0.
func (l *VerticalLine) Handles() []geometry.Handle {
	return []geometry.Handle{geometry.NewHandle(geometry.Pt(l.X, 0), geometry.HandleMove, AnchorLevel)}
}

// CrossLine is a horizontal and a vertical line through one point.
type CrossLine struct {
	Center geometry.Point
}

// NewCrossLine creates a cross line through center.
func NewCrossLine(center geometry.Point) *CrossLine {
	return &CrossLine{Center: center}
}

// Adjust moves the crossing point.
func (c *CrossLine) Adjust(p geometry.Point) { c.Center = p }

// Path is one horizontal and one vertical line through Center.
func (c *CrossLine) Path() geometry.Path {
	return append(
		NewHorizontalLine(c.Center.Y).Path(),
		NewVerticalLine(c.Center.X).Path()...,
	)
}

// Handles returns the center.
func (c *CrossLine) Handles() []geometry.Handle {
	return []geometry.Handle{geometry.NewHandle(c.Center, geometry.HandleMove, AnchorCenter)}
}

// TrendAngle measures the inclination of the segment between two anchors.
type TrendAngle struct {
	Start geometry.Point
	End   geometry.Point
}

// NewTrendAngle creates a trend angle between start and end.
func NewTrendAngle(start, end geometry.Point) *TrendAngle {
	return &TrendAngle{Start: start, End: end}
}

// AdjustStart moves the first anchor.
func (a *TrendAngle) AdjustStart(p geometry.Point) { a.Start = p }

// AdjustEnd moves the second anchor.
func (a *TrendAngle) AdjustEnd(p geometry.Point) { a.End = p }

// Degrees returns atan2(dy, dx) in degrees.
func (a *TrendAngle) Degrees() float64 {
	return geometry.Degrees(a.End.Sub(a.Start).Angle())
}

// Label returns the angle formatted for display, e.g. "30.00°".
func (a *TrendAngle) Label() string {
	return utils.FormatDegrees(a.Degrees())
}

// Path is the measured segment itself; the angle has no geometry of its own.
func (a *TrendAngle) Path() geometry.Path {
	return geometry.Path{{a.Start, a.End}}
}

// Handles returns both anchors.
func (a *TrendAngle) Handles() []geometry.Handle {
	return []geometry.Handle{
		geometry.NewHandle(a.Start, geometry.HandleAdjust, AnchorStart),
		geometry.NewHandle(a.End, geometry.HandleAdjust, AnchorEnd),
	}
}
