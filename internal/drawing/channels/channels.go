// Package channels provides the parallel, flat top/bottom and disjointed
// channel tools.
package channels

import (
	"math"

	"chartdraw/internal/geometry"
)

// Anchor names used in handle tags.
const (
	AnchorTopLeft     = "top_left"
	AnchorTopRight    = "top_right"
	AnchorBottomLeft  = "bottom_left"
	AnchorBottomRight = "bottom_right"
	AnchorMidTop      = "mid_top"
	AnchorMidBottom   = "mid_bottom"
)

// ParallelChannel is a quadrilateral whose bottom edge is kept parallel to
// and as long as its top edge once the angle has been adjusted.
type ParallelChannel struct {
	TopLeft     geometry.Point
	TopRight    geometry.Point
	BottomLeft  geometry.Point
	BottomRight geometry.Point
}

// NewParallelChannel creates a channel from four corners. The corners are
// taken as given; they need not form a parallelogram yet.
func NewParallelChannel(topLeft, topRight, bottomLeft, bottomRight geometry.Point) *ParallelChannel {
	return &ParallelChannel{
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
	}
}

// NewParallelChannelFromLine creates a channel whose top edge runs from start
// to end and whose bottom edge is the same segment shifted by offset.
func NewParallelChannelFromLine(start, end, offset geometry.Point) *ParallelChannel {
	return NewParallelChannel(start, end, start.Add(offset), end.Add(offset))
}

// Move translates all four corners.
func (c *ParallelChannel) Move(dx, dy float64) {
	c.TopLeft = c.TopLeft.Translate(dx, dy)
	c.TopRight = c.TopRight.Translate(dx, dy)
	c.BottomLeft = c.BottomLeft.Translate(dx, dy)
	c.BottomRight = c.BottomRight.Translate(dx, dy)
}

// MoveHorizontal translates the channel along x.
func (c *ParallelChannel) MoveHorizontal(dx float64) { c.Move(dx, 0) }

// MoveVertical translates the channel along y.
func (c *ParallelChannel) MoveVertical(dy float64) { c.Move(0, dy) }

// AdjustAngle moves the top-right corner and rebuilds the bottom-right
// corner so the bottom edge matches the new top edge in direction and length.
func (c *ParallelChannel) AdjustAngle(topRightX, topRightY float64) {
	c.TopRight = geometry.Pt(topRightX, topRightY)
	c.syncBottom()
}

// AdjustWidth moves the bottom edge to start at bottomLeft, keeping it
// parallel to the top edge.
func (c *ParallelChannel) AdjustWidth(bottomLeft geometry.Point) {
	c.BottomLeft = bottomLeft
	c.syncBottom()
}

func (c *ParallelChannel) syncBottom() {
	top := c.TopRight.Sub(c.TopLeft)
	angle, length := top.Angle(), top.Length()
	c.BottomRight = c.BottomLeft.Add(geometry.Pt(length*math.Cos(angle), length*math.Sin(angle)))
}

// Corners returns the outline in drawing order.
func (c *ParallelChannel) Corners() []geometry.Point {
	return []geometry.Point{c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft}
}

// Midline returns the segment halfway between the top and bottom edges.
func (c *ParallelChannel) Midline() geometry.Segment {
	return geometry.Seg(
		geometry.Midpoint(c.TopLeft, c.BottomLeft),
		geometry.Midpoint(c.TopRight, c.BottomRight),
	)
}

// Path draws the closed outline and the midline.
func (c *ParallelChannel) Path() geometry.Path {
	mid := c.Midline()
	return geometry.Path{
		geometry.Closed(c.Corners()),
		{mid.Start, mid.End},
	}
}

// Handles returns the corners and a center move handle.
func (c *ParallelChannel) Handles() []geometry.Handle {
	mid := c.Midline()
	return []geometry.Handle{
		geometry.NewHandle(c.TopLeft, geometry.HandleAdjust, AnchorTopLeft),
		geometry.NewHandle(c.TopRight, geometry.HandleRotate, AnchorTopRight, AnchorBottomRight),
		geometry.NewHandle(c.BottomLeft, geometry.HandleScale, AnchorBottomLeft, AnchorBottomRight),
		geometry.NewHandle(c.BottomRight, geometry.HandleAdjust, AnchorBottomRight),
		geometry.NewHandle(geometry.Midpoint(mid.Start, mid.End), geometry.HandleMove,
			AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight),
	}
}

// FlatTopBottomChannel is a channel with horizontal top and bottom edges.
type FlatTopBottomChannel struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// NewFlatTopBottomChannel creates a flat channel between x positions left
// and right and y levels top and bottom.
func NewFlatTopBottomChannel(left, right, top, bottom float64) *FlatTopBottomChannel {
	return &FlatTopBottomChannel{Left: left, Right: right, Top: top, Bottom: bottom}
}

// NewFlatTopBottomChannelFromPoints creates a flat channel whose top edge
// starts at start and ends at end.x, with the bottom edge at bottom.
func NewFlatTopBottomChannelFromPoints(start, end geometry.Point, bottom float64) *FlatTopBottomChannel {
	return NewFlatTopBottomChannel(start.X, end.X, start.Y, bottom)
}

// Move translates the channel.
func (c *FlatTopBottomChannel) Move(dx, dy float64) {
	c.Left += dx
	c.Right += dx
	c.Top += dy
	c.Bottom += dy
}

// MoveHorizontal translates the channel along x.
func (c *FlatTopBottomChannel) MoveHorizontal(dx float64) { c.Move(dx, 0) }

// MoveVertical translates the channel along y.
func (c *FlatTopBottomChannel) MoveVertical(dy float64) { c.Move(0, dy) }

// AdjustTop moves the top edge to y.
func (c *FlatTopBottomChannel) AdjustTop(y float64) { c.Top = y }

// AdjustBottom moves the bottom edge to y.
func (c *FlatTopBottomChannel) AdjustBottom(y float64) { c.Bottom = y }

// AdjustLeft moves the left side to x.
func (c *FlatTopBottomChannel) AdjustLeft(x float64) { c.Left = x }

// AdjustRight moves the right side to x.
func (c *FlatTopBottomChannel) AdjustRight(x float64) { c.Right = x }

// Corners returns top-left, top-right, bottom-right, bottom-left.
func (c *FlatTopBottomChannel) Corners() []geometry.Point {
	return []geometry.Point{
		geometry.Pt(c.Left, c.Top),
		geometry.Pt(c.Right, c.Top),
		geometry.Pt(c.Right, c.Bottom),
		geometry.Pt(c.Left, c.Bottom),
	}
}

// Path draws the closed outline.
func (c *FlatTopBottomChannel) Path() geometry.Path {
	return geometry.Path{geometry.Closed(c.Corners())}
}

// Handles returns the corners and a center move handle.
func (c *FlatTopBottomChannel) Handles() []geometry.Handle {
	corners := c.Corners()
	return []geometry.Handle{
		geometry.NewHandle(corners[0], geometry.HandleAdjust, AnchorTopLeft),
		geometry.NewHandle(corners[1], geometry.HandleAdjust, AnchorTopRight),
		geometry.NewHandle(corners[2], geometry.HandleAdjust, AnchorBottomRight),
		geometry.NewHandle(corners[3], geometry.HandleAdjust, AnchorBottomLeft),
		geometry.NewHandle(geometry.Midpoint(corners[0], corners[2]), geometry.HandleMove,
			AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight),
	}
}

// DisjointedChannel is a channel with independent kink points on its top
// and bottom edges.
type DisjointedChannel struct {
	TopLeft     geometry.Point
	MidTop      geometry.Point
	TopRight    geometry.Point
	BottomRight geometry.Point
	MidBottom   geometry.Point
	BottomLeft  geometry.Point
}

// NewDisjointedChannel creates a disjointed channel from its six points.
func NewDisjointedChannel(topLeft, midTop, topRight, bottomRight, midBottom, bottomLeft geometry.Point) *DisjointedChannel {
	return &DisjointedChannel{
		TopLeft:     topLeft,
		MidTop:      midTop,
		TopRight:    topRight,
		BottomRight: bottomRight,
		MidBottom:   midBottom,
		BottomLeft:  bottomLeft,
	}
}

// Move translates all six points.
func (c *DisjointedChannel) Move(dx, dy float64) {
	for _, p := range c.points() {
		*p = p.Translate(dx, dy)
	}
}

// MoveAnchor moves one named point. Unknown names are ignored.
func (c *DisjointedChannel) MoveAnchor(name string, to geometry.Point) {
	for i, p := range c.points() {
		if disjointedNames[i] == name {
			*p = to
			return
		}
	}
}

var disjointedNames = []string{
	AnchorTopLeft, AnchorMidTop, AnchorTopRight,
	AnchorBottomRight, AnchorMidBottom, AnchorBottomLeft,
}

func (c *DisjointedChannel) points() []*geometry.Point {
	return []*geometry.Point{&c.TopLeft, &c.MidTop, &c.TopRight, &c.BottomRight, &c.MidBottom, &c.BottomLeft}
}

// Outline returns the six points in render order, starting at top-left and
// finishing at bottom-left.
func (c *DisjointedChannel) Outline() []geometry.Point {
	return []geometry.Point{c.TopLeft, c.MidTop, c.TopRight, c.BottomRight, c.MidBottom, c.BottomLeft}
}

// Path is the closed kinked outline.
func (c *DisjointedChannel) Path() geometry.Path {
	return geometry.Path{geometry.Closed(c.Outline())}
}

// Handles returns all six anchors.
func (c *DisjointedChannel) Handles() []geometry.Handle {
	return geometry.AdjustHandles(c.Outline(), disjointedNames)
}
