// Package patterns provides harmonic and chart pattern drawing tools: swing
// point records exposed as adjustment handles, plus Fibonacci ratio
// validation for the XABCD harmonic.
package patterns

import (
	apperrors "chartdraw/internal/errors"
	"chartdraw/internal/geometry"
)

// XABCD leg ratio bounds, inclusive. These are the classic harmonic
// Fibonacci retracement/extension limits.
const (
	ABRetraceMin = 0.382
	ABRetraceMax = 0.886
	BCRetraceMin = 0.382
	BCRetraceMax = 0.886
	CDExtendMin  = 1.272
	CDExtendMax  = 1.618
)

// Kind identifies a pattern tool.
type Kind string

const (
	KindXABCD            Kind = "xabcd"
	KindCypher           Kind = "cypher"
	KindABCD             Kind = "abcd"
	KindHeadAndShoulders Kind = "head_and_shoulders"
	KindTriangle         Kind = "triangle_pattern"
	KindThreeDrives      Kind = "three_drives"
)

// pointNames lists the swing points of each kind in drawing order.
var pointNames = map[Kind][]string{
	KindXABCD:            {"X", "A", "B", "C", "D"},
	KindCypher:           {"X", "A", "B", "C", "D"},
	KindABCD:             {"A", "B", "C", "D"},
	KindHeadAndShoulders: {"left_shoulder", "left_neck", "head", "right_neck", "right_shoulder"},
	KindTriangle:         {"A", "B", "C", "D", "E"},
	KindThreeDrives:      {"start", "drive1", "correction1", "drive2", "correction2", "drive3"},
}

// PointNames returns the swing point names for kind, or nil if unknown.
func PointNames(kind Kind) []string {
	return append([]string(nil), pointNames[kind]...)
}

// Pattern is a set of named swing points of a fixed kind.
type Pattern struct {
	kind   Kind
	points []geometry.Point
}

// New creates a pattern from its swing points in PointNames order. It fails
// with ErrUnknownTool if kind is unknown and with a PointCountError if the
// point count does not match.
func New(kind Kind, points []geometry.Point) (*Pattern, error) {
	names, ok := pointNames[kind]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrUnknownTool, "pattern kind %q", kind)
	}
	if len(points) != len(names) {
		return nil, apperrors.NewPointCountError(string(kind), len(names), len(points))
	}
	return &Pattern{kind: kind, points: append([]geometry.Point(nil), points...)}, nil
}

func mustNew(kind Kind, points ...geometry.Point) *Pattern {
	p, err := New(kind, points)
	if err != nil {
		panic(err)
	}
	return p
}

// NewCypher creates a Cypher pattern.
func NewCypher(x, a, b, c, d geometry.Point) *Pattern {
	return mustNew(KindCypher, x, a, b, c, d)
}

// NewABCD creates an ABCD pattern.
func NewABCD(a, b, c, d geometry.Point) *Pattern {
	return mustNew(KindABCD, a, b, c, d)
}

// NewHeadAndShoulders creates a head-and-shoulders pattern. The two neck
// points define the neckline.
func NewHeadAndShoulders(leftShoulder, leftNeck, head, rightNeck, rightShoulder geometry.Point) *Pattern {
	return mustNew(KindHeadAndShoulders, leftShoulder, leftNeck, head, rightNeck, rightShoulder)
}

// NewTrianglePattern creates a triangle pattern from five alternating touches.
func NewTrianglePattern(a, b, c, d, e geometry.Point) *Pattern {
	return mustNew(KindTriangle, a, b, c, d, e)
}

// NewThreeDrives creates a three-drives pattern.
func NewThreeDrives(start, drive1, correction1, drive2, correction2, drive3 geometry.Point) *Pattern {
	return mustNew(KindThreeDrives, start, drive1, correction1, drive2, correction2, drive3)
}

// Kind returns the pattern kind.
func (p *Pattern) Kind() Kind { return p.kind }

// Points returns a copy of the swing points.
func (p *Pattern) Points() []geometry.Point {
	return append([]geometry.Point(nil), p.points...)
}

// Point returns the swing point called name.
func (p *Pattern) Point(name string) (geometry.Point, bool) {
	for i, n := range pointNames[p.kind] {
		if n == name {
			return p.points[i], true
		}
	}
	return geometry.Point{}, false
}

// MovePoint replaces swing point i. Out-of-range indices are ignored.
func (p *Pattern) MovePoint(i int, to geometry.Point) {
	if i >= 0 && i < len(p.points) {
		p.points[i] = to
	}
}

// Move translates every swing point.
func (p *Pattern) Move(dx, dy float64) {
	p.points = geometry.Translate(p.points, dx, dy)
}

// Path is the zig-zag through the swing points. Head-and-shoulders adds its
// neckline; triangles add their upper and lower boundaries.
func (p *Pattern) Path() geometry.Path {
	path := geometry.Path{append(geometry.Polyline(nil), p.points...)}
	switch p.kind {
	case KindHeadAndShoulders:
		path = append(path, geometry.Polyline{p.points[1], p.points[3]})
	case KindTriangle:
		path = append(path,
			geometry.Polyline{p.points[0], p.points[2], p.points[4]},
			geometry.Polyline{p.points[1], p.points[3]},
		)
	}
	return path
}

// Handles tags every swing point as an adjustment handle.
func (p *Pattern) Handles() []geometry.Handle {
	return geometry.AdjustHandles(p.points, pointNames[p.kind])
}

// XABCD is the five-point harmonic pattern with Fibonacci ratio validation.
type XABCD struct {
	*Pattern
}

// NewXABCD creates an XABCD harmonic pattern.
func NewXABCD(x, a, b, c, d geometry.Point) *XABCD {
	return &XABCD{Pattern: mustNew(KindXABCD, x, a, b, c, d)}
}

// Legs returns the Euclidean lengths XA, AB, BC and CD.
func (p *XABCD) Legs() (xa, ab, bc, cd float64) {
	pts := p.points
	return pts[0].Distance(pts[1]),
		pts[1].Distance(pts[2]),
		pts[2].Distance(pts[3]),
		pts[3].Distance(pts[4])
}

// Ratios returns AB/XA, BC/AB and CD/BC. A zero-length leg yields a zero
// ratio for the legs divided by it.
func (p *XABCD) Ratios() (abXA, bcAB, cdBC float64) {
	xa, ab, bc, cd := p.Legs()
	return safeRatio(ab, xa), safeRatio(bc, ab), safeRatio(cd, bc)
}

// IsValid reports whether all three leg ratios fall inside their bounds:
// AB/XA and BC/AB in [0.382, 0.886], CD/BC in [1.272, 1.618].
func (p *XABCD) IsValid() bool {
	abXA, bcAB, cdBC := p.Ratios()
	if abXA < ABRetraceMin || abXA > ABRetraceMax {
		return false
	}
	if bcAB < BCRetraceMin || bcAB > BCRetraceMax {
		return false
	}
	return cdBC >= CDExtendMin && cdBC <= CDExtendMax
}

func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
