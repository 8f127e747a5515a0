// Package drawing ties the tool families together: a common Tool interface,
// a factory that builds any tool from its kind and anchor points, and a
// Board that owns a keyed collection of live tools.
package drawing

import (
	"sort"

	"chartdraw/internal/config"
	"chartdraw/internal/geometry"
)

// Tool is implemented by every drawing tool.
type Tool interface {
	// Path returns the polylines to render, in paint order.
	Path() geometry.Path
	// Handles returns the interactive handle points.
	Handles() []geometry.Handle
}

// Mover is implemented by tools that can be translated as a whole.
type Mover interface {
	Move(dx, dy float64)
}

// Labeler is implemented by tools that display a text label.
type Labeler interface {
	Label() string
}

// Family groups related kinds.
type Family string

const (
	FamilyLines    Family = "lines"
	FamilyShapes   Family = "shapes"
	FamilyChannels Family = "channels"
	FamilyPitch    Family = "pitchfork"
	FamilyGann     Family = "gann"
	FamilyPatterns Family = "patterns"
	FamilyElliott  Family = "elliott"
	FamilyCycles   Family = "cycles"
	FamilyMeasure  Family = "measure"
	FamilyFreehand Family = "freehand"
)

// Kind identifies a buildable tool.
type Kind string

const (
	KindTrendLine      Kind = "trend_line"
	KindRay            Kind = "ray"
	KindExtendedLine   Kind = "extended_line"
	KindHorizontalLine Kind = "horizontal_line"
	KindVerticalLine   Kind = "vertical_line"
	KindCrossLine      Kind = "cross_line"
	KindTrendAngle     Kind = "trend_angle"

	KindRectangle        Kind = "rectangle"
	KindRotatedRectangle Kind = "rotated_rectangle"
	KindEllipse          Kind = "ellipse"
	KindCircle           Kind = "circle"
	KindTriangle         Kind = "triangle"
	KindArc              Kind = "arc"
	KindCurve            Kind = "curve"
	KindDoubleCurve      Kind = "double_curve"

	KindParallelChannel   Kind = "parallel_channel"
	KindFlatTopBottom     Kind = "flat_top_bottom"
	KindDisjointedChannel Kind = "disjointed_channel"

	KindPitchfork               Kind = "pitchfork"
	KindSchiffPitchfork         Kind = "schiff_pitchfork"
	KindModifiedSchiffPitchfork Kind = "modified_schiff_pitchfork"
	KindInsidePitchfork         Kind = "inside_pitchfork"
	KindBarleyPitchfork         Kind = "barley_pitchfork"

	KindGannBox         Kind = "gann_box"
	KindGannSquareFixed Kind = "gann_square_fixed"
	KindGannFan         Kind = "gann_fan"
	KindGannSquare      Kind = "gann_square"

	KindXABCD            Kind = "xabcd"
	KindCypher           Kind = "cypher"
	KindABCD             Kind = "abcd"
	KindHeadAndShoulders Kind = "head_and_shoulders"
	KindTrianglePattern  Kind = "triangle_pattern"
	KindThreeDrives      Kind = "three_drives"

	KindElliottImpulse     Kind = "elliott_impulse"
	KindElliottCorrection  Kind = "elliott_correction"
	KindElliottTriangle    Kind = "elliott_triangle"
	KindElliottDoubleCombo Kind = "elliott_double_combo"
	KindElliottTripleCombo Kind = "elliott_triple_combo"

	KindCyclicLines Kind = "cyclic_lines"
	KindTimeCycles  Kind = "time_cycles"
	KindSineLine    Kind = "sine_line"

	KindPriceDateRange Kind = "price_date_range"
	KindForecast       Kind = "forecast"

	KindBrush       Kind = "brush"
	KindHighlighter Kind = "highlighter"
)

// Info describes a kind for listings.
type Info struct {
	Kind        Kind     `json:"kind"`
	Family      Family   `json:"family"`
	MinPoints   int      `json:"minPoints"`
	MaxPoints   int      `json:"maxPoints"` // -1 means unbounded
	PointNames  []string `json:"pointNames,omitempty"`
	Description string   `json:"description"`
}

// Lookup returns the description of kind.
func Lookup(kind Kind) (Info, bool) {
	e, ok := registry[kind]
	if !ok {
		return Info{}, false
	}
	return e.info(kind), true
}

// Kinds lists every buildable kind, grouped by family and then by name.
func Kinds() []Info {
	out := make([]Info, 0, len(registry))
	for k, e := range registry {
		out = append(out, e.info(k))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// Options carries the configurable constants used when building tools.
type Options struct {
	ExtensionLength  float64
	SampleCount      int
	ExtendedMinX     float64
	ExtendedMaxX     float64
	PeriodAdjust     float64
	AmplitudeAdjust  float64
	SinePoints       int
	HighlighterAlpha float64
}

// DefaultOptions returns the built-in constants.
func DefaultOptions() Options {
	return Options{
		ExtensionLength:  geometry.ExtensionLength,
		SampleCount:      geometry.DefaultSamples,
		ExtendedMinX:     -geometry.ExtensionLength,
		ExtendedMaxX:     geometry.ExtensionLength,
		PeriodAdjust:     1,
		AmplitudeAdjust:  1,
		SinePoints:       geometry.DefaultSamples,
		HighlighterAlpha: 0.3,
	}
}

// OptionsFromConfig reads Options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ExtensionLength:  cfg.Geometry.ExtensionLength,
		SampleCount:      cfg.Geometry.SampleCount,
		ExtendedMinX:     cfg.Geometry.ExtendedMinX,
		ExtendedMaxX:     cfg.Geometry.ExtendedMaxX,
		PeriodAdjust:     cfg.Cycles.PeriodAdjust,
		AmplitudeAdjust:  cfg.Cycles.AmplitudeAdjust,
		SinePoints:       cfg.Cycles.SinePoints,
		HighlighterAlpha: cfg.Freehand.HighlighterAlpha,
	}
}
