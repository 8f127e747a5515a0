// Package freehand provides the brush and highlighter tools and the manager
// that feeds pointer input to them.
package freehand

import (
	"chartdraw/internal/geometry"
)

// DefaultHighlighterAlpha is the opacity a highlighter draws with unless
// configured otherwise.
const DefaultHighlighterAlpha = 0.3

// Canvas is the minimal drawing context a stroke is painted onto.
type Canvas interface {
	SetGlobalAlpha(alpha float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// Brush accumulates an append-only sequence of points.
type Brush struct {
	points []geometry.Point
}

// NewBrush creates an empty brush stroke.
func NewBrush() *Brush { return &Brush{} }

// AddPoint appends p to the stroke.
func (b *Brush) AddPoint(p geometry.Point) { b.points = append(b.points, p) }

// Points returns a copy of the accumulated points in insertion order.
func (b *Brush) Points() []geometry.Point {
	return append([]geometry.Point(nil), b.points...)
}

// Len returns the number of accumulated points.
func (b *Brush) Len() int { return len(b.points) }

// Path is a single polyline through every point, or empty below two points.
func (b *Brush) Path() geometry.Path {
	if len(b.points) < 2 {
		return nil
	}
	return geometry.Path{geometry.Polyline(b.Points())}
}

// Handles is empty; freehand strokes are not edited point by point.
func (b *Brush) Handles() []geometry.Handle { return nil }

// Draw strokes the polyline onto c. Strokes under two points draw nothing.
func (b *Brush) Draw(c Canvas) {
	if len(b.points) < 2 {
		return
	}
	c.MoveTo(b.points[0].X, b.points[0].Y)
	for _, p := range b.points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.Stroke()
}

// Highlighter is a brush drawn with a reduced opacity.
type Highlighter struct {
	Brush
	Alpha float64
}

// NewHighlighter creates an empty highlighter stroke. A non-positive alpha
// falls back to DefaultHighlighterAlpha.
func NewHighlighter(alpha float64) *Highlighter {
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultHighlighterAlpha
	}
	return &Highlighter{Alpha: alpha}
}

// Draw strokes the polyline with Alpha and restores full opacity afterwards.
func (h *Highlighter) Draw(c Canvas) {
	if len(h.points) < 2 {
		return
	}
	c.SetGlobalAlpha(h.Alpha)
	defer c.SetGlobalAlpha(1)
	h.Brush.Draw(c)
}

// Brushes holds at most one active brush and one active highlighter.
type Brushes struct {
	alpha       float64
	brush       *Brush
	highlighter *Highlighter
}

// NewBrushes creates a manager whose highlighters use alpha.
func NewBrushes(alpha float64) *Brushes {
	return &Brushes{alpha: alpha}
}

// StartBrush replaces the active brush with a fresh one.
func (m *Brushes) StartBrush() *Brush {
	m.brush = NewBrush()
	return m.brush
}

// StartHighlighter replaces the active highlighter with a fresh one.
func (m *Brushes) StartHighlighter() *Highlighter {
	m.highlighter = NewHighlighter(m.alpha)
	return m.highlighter
}

// Brush returns the active brush, or nil.
func (m *Brushes) Brush() *Brush { return m.brush }

// Highlighter returns the active highlighter, or nil.
func (m *Brushes) Highlighter() *Highlighter { return m.highlighter }

// AddPoint appends p to whichever of the brush and highlighter is active.
func (m *Brushes) AddPoint(p geometry.Point) {
	if m.brush != nil {
		m.brush.AddPoint(p)
	}
	if m.highlighter != nil {
		m.highlighter.AddPoint(p)
	}
}

// ClearPoints discards both strokes along with their points.
func (m *Brushes) ClearPoints() {
	m.brush = nil
	m.highlighter = nil
}

// Path combines the active strokes, brush first.
func (m *Brushes) Path() geometry.Path {
	var path geometry.Path
	if m.brush != nil {
		path = append(path, m.brush.Path()...)
	}
	if m.highlighter != nil {
		path = append(path, m.highlighter.Path()...)
	}
	return path
}

// Handles is always empty; freehand strokes are not editable.
func (m *Brushes) Handles() []geometry.Handle { return nil }

// Draw paints the active strokes onto c.
func (m *Brushes) Draw(c Canvas) {
	if m.brush != nil {
		m.brush.Draw(c)
	}
	if m.highlighter != nil {
		m.highlighter.Draw(c)
	}
}
