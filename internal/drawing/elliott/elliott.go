// Package elliott generates Elliott-wave skeletons between two anchors.
//
// Every wave type has its own literal table of fractional offsets along the
// start->end vector; there is no formula shared across types.
package elliott

import (
	"fmt"

	"chartdraw/internal/geometry"
)

// WaveType selects a wave skeleton.
type WaveType string

const (
	Impulse     WaveType = "impulse"
	Correction  WaveType = "correction"
	Triangle    WaveType = "triangle"
	DoubleCombo WaveType = "double_combo"
	TripleCombo WaveType = "triple_combo"
)

// PointType tags a wave point.
type PointType string

const (
	PointStart PointType = "start"
	PointLine  PointType = "line"
	PointEnd   PointType = "end"
)

// fractions holds the x and y fraction of the start->end vector for every
// point after the start. The last entry is always (1, 1), the end anchor.
type fractions struct {
	x, y   []float64
	labels []string
}

var tables = map[WaveType]fractions{
	Impulse: {
		x:      []float64{0.2, 0.35, 0.6, 0.75, 1.0},
		y:      []float64{0.4, 0.2, 0.8, 0.6, 1.0},
		labels: []string{"0", "1", "2", "3", "4", "5"},
	},
	Correction: {
		x:      []float64{0.4, 0.65, 1.0},
		y:      []float64{0.7, 0.35, 1.0},
		labels: []string{"0", "A", "B", "C"},
	},
	Triangle: {
		x:      []float64{0.2, 0.4, 0.6, 0.8, 1.0},
		y:      []float64{0.9, 0.2, 0.75, 0.35, 1.0},
		labels: []string{"0", "A", "B", "C", "D", "E"},
	},
	DoubleCombo: {
		x:      []float64{0.25, 0.45, 0.7, 0.85, 1.0},
		y:      []float64{0.6, 0.3, 0.9, 0.65, 1.0},
		labels: []string{"0", "W", "a", "X", "b", "Y"},
	},
	TripleCombo: {
		x:      []float64{0.15, 0.3, 0.5, 0.65, 0.85, 1.0},
		y:      []float64{0.5, 0.25, 0.75, 0.5, 0.9, 1.0},
		labels: []string{"0", "W", "X", "a", "Y", "X", "Z"},
	},
}

// WaveTypes lists the supported wave types.
func WaveTypes() []WaveType {
	return []WaveType{Impulse, Correction, Triangle, DoubleCombo, TripleCombo}
}

// Point is one vertex of a wave skeleton.
type Point struct {
	geometry.Point
	Type  PointType `json:"type"`
	Label string    `json:"label,omitempty"`
}

// Wave is the generated skeleton.
type Wave struct {
	Points           []Point           `json:"points"`
	AdjustmentPoints []geometry.Handle `json:"adjustmentPoints"`
}

// Generate builds the skeleton of the given wave type between start and
// end. Unknown types yield a straight start->end wave.
func Generate(waveType WaveType, start, end geometry.Point) Wave {
	table, ok := tables[waveType]
	if !ok {
		table = fractions{x: []float64{1}, y: []float64{1}}
	}

	span := end.Sub(start)
	points := []Point{{Point: start, Type: PointStart, Label: label(table, 0)}}
	for i := range table.x {
		p := Point{
			Point: start.Translate(span.X*table.x[i], span.Y*table.y[i]),
			Type:  PointLine,
			Label: label(table, i+1),
		}
		if i == len(table.x)-1 {
			p.Point = end
			p.Type = PointEnd
		}
		points = append(points, p)
	}

	handles := make([]geometry.Handle, len(points))
	for i, p := range points {
		switch p.Type {
		case PointStart:
			handles[i] = geometry.NewHandle(p.Point, geometry.HandleMove, string(PointStart))
		case PointEnd:
			handles[i] = geometry.NewHandle(p.Point, geometry.HandleScale, string(PointEnd))
		default:
			handles[i] = geometry.NewHandle(p.Point, geometry.HandleAdjust, PointName(i))
		}
	}
	return Wave{Points: points, AdjustmentPoints: handles}
}

// PointName is the anchor name of the i-th wave point. Interior points are
// named by index because wave labels repeat in combination waves.
func PointName(i int) string {
	return fmt.Sprintf("point_%d", i)
}

func label(t fractions, i int) string {
	if i < len(t.labels) {
		return t.labels[i]
	}
	return ""
}

// Tool holds the anchors of a wave skeleton and regenerates it on demand.
type Tool struct {
	Type  WaveType
	Start geometry.Point
	End   geometry.Point
}

// NewTool creates a wave tool.
func NewTool(waveType WaveType, start, end geometry.Point) *Tool {
	return &Tool{Type: waveType, Start: start, End: end}
}

// AdjustStart moves the start anchor.
func (t *Tool) AdjustStart(p geometry.Point) { t.Start = p }

// AdjustEnd moves the end anchor.
func (t *Tool) AdjustEnd(p geometry.Point) { t.End = p }

// Move translates both anchors.
func (t *Tool) Move(dx, dy float64) {
	t.Start = t.Start.Translate(dx, dy)
	t.End = t.End.Translate(dx, dy)
}

// Wave generates the current skeleton.
func (t *Tool) Wave() Wave { return Generate(t.Type, t.Start, t.End) }

// Path is the zig-zag through every wave point.
func (t *Tool) Path() geometry.Path {
	w := t.Wave()
	line := make(geometry.Polyline, len(w.Points))
	for i, p := range w.Points {
		line[i] = p.Point
	}
	return geometry.Path{line}
}

// Handles returns one handle per wave point.
func (t *Tool) Handles() []geometry.Handle { return t.Wave().AdjustmentPoints }
