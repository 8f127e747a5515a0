// Package pitchfork computes the handle, median and tine lines of the
// pitchfork family (standard, Schiff, modified Schiff, inside, Barley).
package pitchfork

import (
	"chartdraw/internal/geometry"
)

// Variant selects the pitchfork construction.
type Variant string

const (
	Standard       Variant = "standard"
	Schiff         Variant = "schiff"
	ModifiedSchiff Variant = "modified_schiff"
	Inside         Variant = "inside"
	Barley         Variant = "barley"
)

// Barley warning tine scales, applied to the standard tine offset.
const (
	WarningOuterRatio = 1.618
	WarningInnerRatio = 0.618
)

// LineRole tags a pitchfork segment.
type LineRole string

const (
	RoleHandle  LineRole = "handle"
	RoleMedian  LineRole = "median"
	RoleTine    LineRole = "tine"
	RoleWarning LineRole = "warning"
)

// Anchor names used in handle tags.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// Line is one segment of a pitchfork.
type Line struct {
	Role    LineRole         `json:"role"`
	Segment geometry.Segment `json:"segment"`
}

// Pitchfork is a three-anchor pitchfork of a given variant. The computed
// lines are cached and translated along with the anchors on moves; only
// AdjustAngle rebuilds them.
type Pitchfork struct {
	variant Variant
	start   geometry.Point
	middle  geometry.Point
	end     geometry.Point
	lines   []Line
}

// New creates a pitchfork. start is the handle origin, middle and end are
// the two pivots.
func New(variant Variant, start, middle, end geometry.Point) *Pitchfork {
	p := &Pitchfork{variant: variant, start: start, middle: middle, end: end}
	p.recalculate()
	return p
}

// Variant returns the construction variant.
func (p *Pitchfork) Variant() Variant { return p.variant }

// Anchors returns start, middle and end.
func (p *Pitchfork) Anchors() (start, middle, end geometry.Point) {
	return p.start, p.middle, p.end
}

// Lines returns a copy of the computed lines.
func (p *Pitchfork) Lines() []Line {
	return append([]Line(nil), p.lines...)
}

// MoveStart drags the start anchor to to, shifting the whole pitchfork by
// the same delta.
func (p *Pitchfork) MoveStart(to geometry.Point) { p.translate(to.Sub(p.start)) }

// MoveMiddle drags the middle anchor to to, shifting the whole pitchfork.
func (p *Pitchfork) MoveMiddle(to geometry.Point) { p.translate(to.Sub(p.middle)) }

// MoveEnd drags the end anchor to to, shifting the whole pitchfork.
func (p *Pitchfork) MoveEnd(to geometry.Point) { p.translate(to.Sub(p.end)) }

func (p *Pitchfork) translate(d geometry.Point) {
	p.start = p.start.Add(d)
	p.middle = p.middle.Add(d)
	p.end = p.end.Add(d)
	for i := range p.lines {
		p.lines[i].Segment = p.lines[i].Segment.Translate(d.X, d.Y)
	}
}

// AdjustAngle moves the end anchor to newEnd and rotates the middle anchor
// around start by the change in the start->end direction, then rebuilds
// every line.
func (p *Pitchfork) AdjustAngle(newEnd geometry.Point) {
	oldAngle := p.end.Sub(p.start).Angle()
	newAngle := newEnd.Sub(p.start).Angle()
	p.middle = geometry.RotateAround(p.middle, p.start, newAngle-oldAngle)
	p.end = newEnd
	p.recalculate()
}

func (p *Pitchfork) recalculate() {
	p.lines = Compute(p.variant, p.start, p.middle, p.end)
}

// Compute derives the lines of a pitchfork variant from its anchors.
//
// Every variant has a handle segment, a median segment and tines. A tine is
// the median vector laid down from a tine origin, so all tines stay
// parallel to the median. The offset o is half the start->end vector.
func Compute(variant Variant, start, middle, end geometry.Point) []Line {
	o := end.Sub(start).Scale(0.5)
	baseMid := geometry.Midpoint(start, end)
	pivotMid := geometry.Midpoint(start, middle)

	var handle, median geometry.Segment
	var origins []geometry.Point
	var warnings []geometry.Point

	switch variant {
	case Schiff:
		handle = geometry.Seg(start, middle)
		median = geometry.Seg(pivotMid, end)
		origins = []geometry.Point{middle.Sub(o), middle.Add(o)}
	case ModifiedSchiff:
		handle = geometry.Seg(start, pivotMid)
		median = geometry.Seg(pivotMid, end)
		origins = []geometry.Point{start, middle}
	case Inside:
		handle = geometry.Seg(start, middle)
		median = geometry.Seg(middle, baseMid)
		half := o.Scale(0.5)
		origins = []geometry.Point{middle.Sub(half), middle.Add(half)}
	case Barley:
		handle = geometry.Seg(start, middle)
		median = geometry.Seg(middle, baseMid)
		origins = []geometry.Point{start, end}
		warnings = []geometry.Point{
			baseMid.Add(o.Scale(WarningInnerRatio)),
			baseMid.Add(o.Scale(WarningOuterRatio)),
		}
	default:
		handle = geometry.Seg(start, middle)
		median = geometry.Seg(middle, baseMid)
		origins = []geometry.Point{start, end}
	}

	dir := median.Vector()
	lines := []Line{
		{Role: RoleHandle, Segment: handle},
		{Role: RoleMedian, Segment: median},
	}
	for _, origin := range origins {
		lines = append(lines, Line{Role: RoleTine, Segment: geometry.Seg(origin, origin.Add(dir))})
	}
	for _, origin := range warnings {
		lines = append(lines, Line{Role: RoleWarning, Segment: geometry.Seg(origin, origin.Add(dir))})
	}
	return lines
}

// Segments returns the line segments without role tags.
func (p *Pitchfork) Segments() []geometry.Segment {
	out := make([]geometry.Segment, len(p.lines))
	for i, l := range p.lines {
		out[i] = l.Segment
	}
	return out
}

// Path draws every cached line as its own polyline.
func (p *Pitchfork) Path() geometry.Path {
	return geometry.PathFromSegments(p.Segments())
}

// Handles returns the three anchors.
func (p *Pitchfork) Handles() []geometry.Handle {
	return []geometry.Handle{
		geometry.NewHandle(p.start, geometry.HandleMove, AnchorStart),
		geometry.NewHandle(p.middle, geometry.HandleMove, AnchorMiddle),
		geometry.NewHandle(p.end, geometry.HandleRotate, AnchorEnd, AnchorMiddle),
	}
}
