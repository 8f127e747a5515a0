// Package shapes computes outlines and edit handles for the shape tools.
package shapes

import (
	"chartdraw/internal/geometry"
)

// Kind identifies a shape variant.
type Kind string

const (
	KindRectangle        Kind = "rectangle"
	KindRotatedRectangle Kind = "rotated_rectangle"
	KindEllipse          Kind = "ellipse"
	KindCircle           Kind = "circle"
	KindTriangle         Kind = "triangle"
	KindArc              Kind = "arc"
	KindCurve            Kind = "curve"
	KindDoubleCurve      Kind = "double_curve"
)

// Shape is a shape variant together with its anchors and parameters. The
// number of anchors is fixed by the kind at construction.
type Shape struct {
	kind    Kind
	anchors []geometry.Point

	angle    float64 // rotation for rotated rectangles, start angle for arcs
	endAngle float64
	radius   float64
	samples  int
}

// NewRectangle creates a rectangle from two opposite corners.
func NewRectangle(a, b geometry.Point) *Shape {
	return &Shape{kind: KindRectangle, anchors: []geometry.Point{a, b}}
}

// NewRotatedRectangle creates a rectangle from two opposite corners rotated
// by angle radians around its center.
func NewRotatedRectangle(a, b geometry.Point, angle float64) *Shape {
	return &Shape{kind: KindRotatedRectangle, anchors: []geometry.Point{a, b}, angle: angle}
}

// NewEllipse creates an ellipse inscribed in the box spanned by a and b.
func NewEllipse(a, b geometry.Point) *Shape {
	return &Shape{kind: KindEllipse, anchors: []geometry.Point{a, b}, samples: geometry.DefaultSamples}
}

// NewCircle creates a circle.
func NewCircle(center geometry.Point, radius float64) *Shape {
	return &Shape{kind: KindCircle, anchors: []geometry.Point{center}, radius: radius, samples: geometry.DefaultSamples}
}

// NewTriangle creates a triangle inscribed in the box spanned by a and b.
func NewTriangle(a, b geometry.Point) *Shape {
	return &Shape{kind: KindTriangle, anchors: []geometry.Point{a, b}}
}

// NewArc creates an arc of the given circle between two angles in radians.
func NewArc(center geometry.Point, radius, startAngle, endAngle float64) *Shape {
	return &Shape{
		kind:     KindArc,
		anchors:  []geometry.Point{center},
		radius:   radius,
		angle:    startAngle,
		endAngle: endAngle,
		samples:  geometry.DefaultSamples,
	}
}

// NewCurve creates a quadratic bezier curve.
func NewCurve(start, control, end geometry.Point) *Shape {
	return &Shape{kind: KindCurve, anchors: []geometry.Point{start, control, end}, samples: geometry.DefaultSamples}
}

// NewDoubleCurve creates a cubic bezier curve.
func NewDoubleCurve(start, c1, c2, end geometry.Point) *Shape {
	return &Shape{kind: KindDoubleCurve, anchors: []geometry.Point{start, c1, c2, end}, samples: geometry.DefaultSamples}
}

// Kind returns the shape variant.
func (s *Shape) Kind() Kind { return s.kind }

// Anchors returns a copy of the anchor points.
func (s *Shape) Anchors() []geometry.Point {
	return append([]geometry.Point(nil), s.anchors...)
}

// Angle returns the rotation (rotated rectangle) or start angle (arc).
func (s *Shape) Angle() float64 { return s.angle }

// WithSamples sets the number of sampled points for curved variants. A
// non-positive n restores geometry.DefaultSamples.
func (s *Shape) WithSamples(n int) *Shape {
	if n <= 0 {
		n = geometry.DefaultSamples
	}
	s.samples = n
	return s
}

// Move translates every anchor.
func (s *Shape) Move(dx, dy float64) {
	for i := range s.anchors {
		s.anchors[i] = s.anchors[i].Translate(dx, dy)
	}
}

// MoveAnchor replaces anchor i. Out-of-range indices are ignored.
func (s *Shape) MoveAnchor(i int, p geometry.Point) {
	if i >= 0 && i < len(s.anchors) {
		s.anchors[i] = p
	}
}

// Rotate adds delta radians to the rotation of a rotated rectangle, or
// shifts both ends of an arc. Other variants ignore it.
func (s *Shape) Rotate(delta float64) {
	switch s.kind {
	case KindRotatedRectangle:
		s.angle += delta
	case KindArc:
		s.angle += delta
		s.endAngle += delta
	}
}

// SetRadius changes the radius of circles and arcs.
func (s *Shape) SetRadius(r float64) {
	s.radius = r
}

// Outline computes the render points and handles for the current anchors.
func (s *Shape) Outline() Outline {
	a := s.anchors
	switch s.kind {
	case KindRectangle:
		return Rectangle(a[0], a[1])
	case KindRotatedRectangle:
		return RotatedRectangle(a[0], a[1], s.angle)
	case KindEllipse:
		return Ellipse(a[0], a[1], s.samples)
	case KindCircle:
		return Circle(a[0], s.radius, s.samples)
	case KindTriangle:
		return Triangle(a[0], a[1])
	case KindArc:
		return Arc(a[0], s.radius, s.angle, s.endAngle, s.samples)
	case KindCurve:
		return Curve(a[0], a[1], a[2], s.samples)
	case KindDoubleCurve:
		return DoubleCurve(a[0], a[1], a[2], a[3], s.samples)
	}
	return Outline{}
}

// Path returns the render points as a single polyline. Closed variants
// already repeat their first point; sampled ellipses and circles are closed
// here.
func (s *Shape) Path() geometry.Path {
	render := s.Outline().Render
	switch s.kind {
	case KindEllipse, KindCircle:
		return geometry.Path{geometry.Closed(render)}
	}
	return geometry.Path{render}
}

// Handles returns the edit handles of the current outline.
func (s *Shape) Handles() []geometry.Handle {
	return s.Outline().Handles
}
