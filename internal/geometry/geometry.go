// Package geometry provides the point, path and handle types shared by every
// drawing tool, plus the rotation and sampling helpers they are built on.
package geometry

import (
	"math"
)

const (
	// ExtensionLength stands in for "extend to the viewport edge" on rays
	// and infinite lines.
	ExtensionLength = 10000.0

	// DefaultSamples is the number of points used to approximate curved
	// outlines (ellipses, circles, arcs, bezier curves).
	DefaultSamples = 100
)

// Point is a 2D coordinate. Screen space and data space are not
// distinguished; callers keep units consistent.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Translate returns p shifted by dx, dy.
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Length returns the length of p treated as a vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Angle returns atan2(y, x) of p treated as a vector, in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Unit returns p normalized to length 1. The zero vector stays zero.
func (p Point) Unit() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Cross returns the z component of the 3D cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// ApproxEqual reports whether p and q are within tol on both axes.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Lerp interpolates between a (t=0) and b (t=1).
func Lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Polar returns the point at distance r and angle theta from origin.
func Polar(origin Point, r, theta float64) Point {
	return Point{X: origin.X + r*math.Cos(theta), Y: origin.Y + r*math.Sin(theta)}
}

// Bounds returns the minimum and maximum corners of the box spanned by a and b.
func Bounds(a, b Point) (min, max Point) {
	return Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Translate shifts every point by dx, dy and returns a new slice.
func Translate(points []Point, dx, dy float64) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Translate(dx, dy)
	}
	return out
}

// Segment is a straight line between two points.
type Segment struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Seg is shorthand for Segment{Start: a, End: b}.
func Seg(a, b Point) Segment {
	return Segment{Start: a, End: b}
}

// Vector returns End - Start.
func (s Segment) Vector() Point {
	return s.End.Sub(s.Start)
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Translate shifts both endpoints by dx, dy.
func (s Segment) Translate(dx, dy float64) Segment {
	return Segment{Start: s.Start.Translate(dx, dy), End: s.End.Translate(dx, dy)}
}

// Polyline is an ordered list of points drawn as connected segments.
type Polyline []Point

// Path is the render description of a tool: one or more polylines drawn in order.
type Path []Polyline

// Points flattens the path into a single point sequence.
func (p Path) Points() []Point {
	var out []Point
	for _, line := range p {
		out = append(out, line...)
	}
	return out
}

// PathFromSegments turns each segment into a two-point polyline.
func PathFromSegments(segments []Segment) Path {
	path := make(Path, 0, len(segments))
	for _, s := range segments {
		path = append(path, Polyline{s.Start, s.End})
	}
	return path
}

// Closed returns points with the first point appended, closing the outline.
func Closed(points []Point) Polyline {
	if len(points) == 0 {
		return nil
	}
	out := make(Polyline, 0, len(points)+1)
	out = append(out, points...)
	return append(out, points[0])
}
