// Package shapes computes outlines and edit handles for the closed and
// curved shape tools. Each variant is a pure function of its anchors; Shape
// wraps a variant tag and its anchor record for callers that hold shapes
// generically.
package shapes

import (
	"math"

	"chartdraw/internal/geometry"
)

// Outline is the derived geometry of a shape.
type Outline struct {
	Render  []geometry.Point
	Handles []geometry.Handle
}

// Anchor names used in handle tags.
const (
	AnchorStart    = "start"
	AnchorEnd      = "end"
	AnchorCenter   = "center"
	AnchorControl  = "control"
	AnchorControl2 = "control2"
	AnchorRadius   = "radius"
)

// Rectangle returns the axis-aligned rectangle with opposite corners a and b.
// Render is the four corners plus the closing point; handles are the
// corners, edge midpoints and center.
func Rectangle(a, b geometry.Point) Outline {
	corners := rectCorners(a, b)
	center := geometry.Midpoint(a, b)

	handles := make([]geometry.Handle, 0, 9)
	for _, c := range corners {
		handles = append(handles, geometry.NewHandle(c, geometry.HandleScale, AnchorStart, AnchorEnd))
	}
	for i := range corners {
		mid := geometry.Midpoint(corners[i], corners[(i+1)%4])
		handles = append(handles, geometry.NewHandle(mid, geometry.HandleScale, AnchorStart, AnchorEnd))
	}
	handles = append(handles, geometry.NewHandle(center, geometry.HandleMove, AnchorStart, AnchorEnd))

	return Outline{Render: geometry.Closed(corners), Handles: handles}
}

// rectCorners walks a -> (b.x, a.y) -> b -> (a.x, b.y).
func rectCorners(a, b geometry.Point) []geometry.Point {
	return []geometry.Point{
		a,
		geometry.Pt(b.X, a.Y),
		b,
		geometry.Pt(a.X, b.Y),
	}
}

// RotatedRectangle builds the rectangle with opposite corners a and b and
// rotates it around its center by angle radians. The first and third corner
// handles move the start and end anchors; the other two move both.
func RotatedRectangle(a, b geometry.Point, angle float64) Outline {
	center := geometry.Midpoint(a, b)
	rotated := geometry.RotateAll(rectCorners(a, b), center, angle)
	return Outline{
		Render:  geometry.Closed(rotated),
		Handles: []geometry.Handle{
			geometry.NewHandle(rotated[0], geometry.HandleAdjust, AnchorStart),
			geometry.NewHandle(rotated[1], geometry.HandleAdjust, AnchorStart, AnchorEnd),
			geometry.NewHandle(rotated[2], geometry.HandleAdjust, AnchorEnd),
			geometry.NewHandle(rotated[3], geometry.HandleAdjust, AnchorStart, AnchorEnd),
		},
	}
}

// clampSamples raises sample counts below 2 to 2.
func clampSamples(n int) int {
	if n < 2 {
		return 2
	}
	return n
}

// Ellipse samples the ellipse inscribed in the box spanned by a and b at n
// points over [0, 2π). Every sampled variant clamps n below 2 to 2. Handles are the box corners, axis midpoints and
// center, not the sampled points.
func Ellipse(a, b geometry.Point, n int) Outline {
	min, max := geometry.Bounds(a, b)
	center := geometry.Midpoint(a, b)
	rx, ry := (max.X-min.X)/2, (max.Y-min.Y)/2

	n = clampSamples(n)
	render := make([]geometry.Point, 0, n)
	for _, theta := range geometry.FullTurn(n) {
		render = append(render, geometry.Pt(center.X+rx*math.Cos(theta), center.Y+ry*math.Sin(theta)))
	}

	handles := []geometry.Handle{
		geometry.NewHandle(min, geometry.HandleScale, AnchorStart, AnchorEnd),
		geometry.NewHandle(geometry.Pt(max.X, min.Y), geometry.HandleScale, AnchorStart, AnchorEnd),
		geometry.NewHandle(max, geometry.HandleScale, AnchorStart, AnchorEnd),
		geometry.NewHandle(geometry.Pt(min.X, max.Y), geometry.HandleScale, AnchorStart, AnchorEnd),
		geometry.NewHandle(geometry.Pt(center.X, min.Y), geometry.HandleScale, AnchorStart, AnchorEnd),
		geometry.NewHandle(geometry.Pt(max.X, center.Y), geometry.HandleScale, AnchorStart, AnchorEnd),
		geometry.NewHandle(geometry.Pt(center.X, max.Y), geometry.HandleScale, AnchorStart, AnchorEnd),
		geometry.NewHandle(geometry.Pt(min.X, center.Y), geometry.HandleScale, AnchorStart, AnchorEnd),
		geometry.NewHandle(center, geometry.HandleMove, AnchorStart, AnchorEnd),
	}
	return Outline{Render: render, Handles: handles}
}

// Circle samples n points around the circle of radius r at center.
func Circle(center geometry.Point, r float64, n int) Outline {
	n = clampSamples(n)
	render := make([]geometry.Point, 0, n)
	for _, theta := range geometry.FullTurn(n) {
		render = append(render, geometry.Polar(center, r, theta))
	}
	handles := []geometry.Handle{
		geometry.NewHandle(geometry.Pt(center.X+r, center.Y), geometry.HandleScale, AnchorRadius),
		geometry.NewHandle(geometry.Pt(center.X-r, center.Y), geometry.HandleScale, AnchorRadius),
		geometry.NewHandle(geometry.Pt(center.X, center.Y-r), geometry.HandleScale, AnchorRadius),
		geometry.NewHandle(geometry.Pt(center.X, center.Y+r), geometry.HandleScale, AnchorRadius),
		geometry.NewHandle(center, geometry.HandleMove, AnchorCenter),
	}
	return Outline{Render: render, Handles: handles}
}

// Triangle returns the isosceles triangle inscribed in the box spanned by a
// and b: apex at the top middle, base along the bottom edge.
func Triangle(a, b geometry.Point) Outline {
	min, max := geometry.Bounds(a, b)
	apex := geometry.Pt((min.X+max.X)/2, min.Y)
	left := geometry.Pt(min.X, max.Y)
	right := max
	vertices := []geometry.Point{apex, right, left}

	handles := make([]geometry.Handle, 0, 6)
	for _, v := range vertices {
		handles = append(handles, geometry.NewHandle(v, geometry.HandleScale, AnchorStart, AnchorEnd))
	}
	for i := range vertices {
		mid := geometry.Midpoint(vertices[i], vertices[(i+1)%3])
		handles = append(handles, geometry.NewHandle(mid, geometry.HandleScale, AnchorStart, AnchorEnd))
	}
	return Outline{Render: geometry.Closed(vertices), Handles: handles}
}

// Arc samples n points of the circle at center with radius r, linearly
// interpolated from startAngle to endAngle (radians) inclusive.
func Arc(center geometry.Point, r, startAngle, endAngle float64, n int) Outline {
	n = clampSamples(n)
	render := make([]geometry.Point, 0, n)
	for _, theta := range geometry.Linspace(startAngle, endAngle, n) {
		render = append(render, geometry.Polar(center, r, theta))
	}
	handles := []geometry.Handle{
		geometry.NewHandle(geometry.Polar(center, r, startAngle), geometry.HandleAdjust, AnchorStart),
		geometry.NewHandle(geometry.Polar(center, r, endAngle), geometry.HandleAdjust, AnchorEnd),
		geometry.NewHandle(center, geometry.HandleMove, AnchorCenter),
	}
	return Outline{Render: render, Handles: handles}
}

// Curve evaluates the quadratic bezier start-control-end at n uniform t
// values in [0, 1].
func Curve(start, control, end geometry.Point, n int) Outline {
	n = clampSamples(n)
	render := make([]geometry.Point, 0, n)
	for _, t := range geometry.Linspace(0, 1, n) {
		u := 1 - t
		render = append(render, geometry.Pt(
			u*u*start.X+2*u*t*control.X+t*t*end.X,
			u*u*start.Y+2*u*t*control.Y+t*t*end.Y,
		))
	}
	handles := []geometry.Handle{
		geometry.NewHandle(start, geometry.HandleAdjust, AnchorStart),
		geometry.NewHandle(control, geometry.HandleAdjust, AnchorControl),
		geometry.NewHandle(end, geometry.HandleAdjust, AnchorEnd),
	}
	return Outline{Render: render, Handles: handles}
}

// DoubleCurve evaluates the cubic bezier start-c1-c2-end at n uniform t
// values in [0, 1].
func DoubleCurve(start, c1, c2, end geometry.Point, n int) Outline {
	n = clampSamples(n)
	render := make([]geometry.Point, 0, n)
	for _, t := range geometry.Linspace(0, 1, n) {
		u := 1 - t
		b0, b1, b2, b3 := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		render = append(render, geometry.Pt(
			b0*start.X+b1*c1.X+b2*c2.X+b3*end.X,
			b0*start.Y+b1*c1.Y+b2*c2.Y+b3*end.Y,
		))
	}
	handles := []geometry.Handle{
		geometry.NewHandle(start, geometry.HandleAdjust, AnchorStart),
		geometry.NewHandle(c1, geometry.HandleAdjust, AnchorControl),
		geometry.NewHandle(c2, geometry.HandleAdjust, AnchorControl2),
		geometry.NewHandle(end, geometry.HandleAdjust, AnchorEnd),
	}
	return Outline{Render: render, Handles: handles}
}
