// Package drawing provides the tool registry, factory and board.
package drawing

import (
	"math"

	apperrors "chartdraw/internal/errors"
	"chartdraw/internal/drawing/channels"
	"chartdraw/internal/drawing/cycles"
	"chartdraw/internal/drawing/elliott"
	"chartdraw/internal/drawing/freehand"
	"chartdraw/internal/drawing/gann"
	"chartdraw/internal/drawing/lines"
	"chartdraw/internal/drawing/measure"
	"chartdraw/internal/drawing/patterns"
	"chartdraw/internal/drawing/pitchfork"
	"chartdraw/internal/drawing/shapes"
	"chartdraw/internal/geometry"
)

// ToolSpec describes a tool to build: its kind, anchor points in drawing
// order and the per-kind parameters. Zero parameters take their defaults.
type ToolSpec struct {
	Kind            Kind             `json:"kind"`
	Points          []geometry.Point `json:"points"`
	Angle           float64          `json:"angle,omitempty"`    // radians
	EndAngle        float64          `json:"endAngle,omitempty"` // radians, arcs only
	Samples         int              `json:"samples,omitempty"`
	PeriodAdjust    float64          `json:"periodAdjust,omitempty"`
	AmplitudeAdjust float64          `json:"amplitudeAdjust,omitempty"`
}

type builder func(s ToolSpec, o Options) Tool

type entry struct {
	family Family
	min    int
	max    int
	names  []string
	desc   string
	build  builder
}

func (e entry) info(k Kind) Info {
	return Info{
		Kind:        k,
		Family:      e.family,
		MinPoints:   e.min,
		MaxPoints:   e.max,
		PointNames:  append([]string(nil), e.names...),
		Description: e.desc,
	}
}

func fixed(family Family, names []string, desc string, build builder) entry {
	return entry{family: family, min: len(names), max: len(names), names: names, desc: desc, build: build}
}

var (
	twoPoints   = []string{"start", "end"}
	threePoints = []string{"start", "middle", "end"}
)

var registry = map[Kind]entry{
	KindTrendLine: fixed(FamilyLines, twoPoints, "segment between two anchors",
		func(s ToolSpec, o Options) Tool { return lines.NewTrendLine(s.Points[0], s.Points[1]) }),
	KindRay: fixed(FamilyLines, twoPoints, "half-line from start through end",
		func(s ToolSpec, o Options) Tool {
			r := lines.NewRay(s.Points[0], s.Points[1])
			r.Length = o.ExtensionLength
			return r
		}),
	KindExtendedLine: fixed(FamilyLines, twoPoints, "line through both anchors clipped to the x range",
		func(s ToolSpec, o Options) Tool {
			return lines.NewExtendedLine(s.Points[0], s.Points[1]).WithBounds(o.ExtendedMinX, o.ExtendedMaxX)
		}),
	KindHorizontalLine: fixed(FamilyLines, []string{"level"}, "horizontal price level",
		func(s ToolSpec, o Options) Tool { return lines.NewHorizontalLine(s.Points[0].Y) }),
	KindVerticalLine: fixed(FamilyLines, []string{"level"}, "vertical time marker",
		func(s ToolSpec, o Options) Tool { return lines.NewVerticalLine(s.Points[0].X) }),
	KindCrossLine: fixed(FamilyLines, []string{"center"}, "horizontal and vertical line through a point",
		func(s ToolSpec, o Options) Tool { return lines.NewCrossLine(s.Points[0]) }),
	KindTrendAngle: fixed(FamilyLines, twoPoints, "trend line labelled with its angle",
		func(s ToolSpec, o Options) Tool { return lines.NewTrendAngle(s.Points[0], s.Points[1]) }),

	KindRectangle: fixed(FamilyShapes, []string{"corner", "opposite"}, "axis-aligned rectangle",
		func(s ToolSpec, o Options) Tool { return shapes.NewRectangle(s.Points[0], s.Points[1]) }),
	KindRotatedRectangle: fixed(FamilyShapes, []string{"corner", "opposite"}, "rectangle rotated by angle around its center",
		func(s ToolSpec, o Options) Tool { return shapes.NewRotatedRectangle(s.Points[0], s.Points[1], s.Angle) }),
	KindEllipse: fixed(FamilyShapes, []string{"corner", "opposite"}, "ellipse inscribed in the bounding box",
		func(s ToolSpec, o Options) Tool {
			return shapes.NewEllipse(s.Points[0], s.Points[1]).WithSamples(samples(s, o))
		}),
	KindCircle: fixed(FamilyShapes, []string{"center", "rim"}, "circle through rim centered on center",
		func(s ToolSpec, o Options) Tool {
			return shapes.NewCircle(s.Points[0], s.Points[0].Distance(s.Points[1])).WithSamples(samples(s, o))
		}),
	KindTriangle: fixed(FamilyShapes, []string{"corner", "opposite"}, "isosceles triangle in the bounding box",
		func(s ToolSpec, o Options) Tool { return shapes.NewTriangle(s.Points[0], s.Points[1]) }),
	KindArc: fixed(FamilyShapes, []string{"center", "rim"}, "arc from angle to endAngle (half turn when equal)",
		func(s ToolSpec, o Options) Tool {
			end := s.EndAngle
			if end == s.Angle {
				end = s.Angle + math.Pi
			}
			r := s.Points[0].Distance(s.Points[1])
			return shapes.NewArc(s.Points[0], r, s.Angle, end).WithSamples(samples(s, o))
		}),
	KindCurve: fixed(FamilyShapes, []string{"start", "control", "end"}, "quadratic Bezier curve",
		func(s ToolSpec, o Options) Tool {
			return shapes.NewCurve(s.Points[0], s.Points[1], s.Points[2]).WithSamples(samples(s, o))
		}),
	KindDoubleCurve: fixed(FamilyShapes, []string{"start", "control1", "control2", "end"}, "cubic Bezier curve",
		func(s ToolSpec, o Options) Tool {
			return shapes.NewDoubleCurve(s.Points[0], s.Points[1], s.Points[2], s.Points[3]).WithSamples(samples(s, o))
		}),

	KindParallelChannel: fixed(FamilyChannels, []string{"start", "end", "bottom_left"}, "top edge plus a parallel copy through bottom_left",
		func(s ToolSpec, o Options) Tool {
			return channels.NewParallelChannelFromLine(s.Points[0], s.Points[1], s.Points[2].Sub(s.Points[0]))
		}),
	KindFlatTopBottom: fixed(FamilyChannels, []string{"start", "end", "bottom"}, "channel with horizontal top and bottom",
		func(s ToolSpec, o Options) Tool {
			return channels.NewFlatTopBottomChannelFromPoints(s.Points[0], s.Points[1], s.Points[2].Y)
		}),
	KindDisjointedChannel: fixed(FamilyChannels,
		[]string{"top_left", "mid_top", "top_right", "bottom_right", "mid_bottom", "bottom_left"},
		"six free corners joined in order",
		func(s ToolSpec, o Options) Tool {
			p := s.Points
			return channels.NewDisjointedChannel(p[0], p[1], p[2], p[3], p[4], p[5])
		}),

	KindPitchfork:               pitchforkEntry(pitchfork.Standard, "Andrews pitchfork"),
	KindSchiffPitchfork:         pitchforkEntry(pitchfork.Schiff, "Schiff pitchfork"),
	KindModifiedSchiffPitchfork: pitchforkEntry(pitchfork.ModifiedSchiff, "modified Schiff pitchfork"),
	KindInsidePitchfork:         pitchforkEntry(pitchfork.Inside, "inside pitchfork"),
	KindBarleyPitchfork:         pitchforkEntry(pitchfork.Barley, "pitchfork with warning lines"),

	KindGannBox: fixed(FamilyGann, twoPoints, "box with diagonals and midlines",
		func(s ToolSpec, o Options) Tool { return gann.NewBox(s.Points[0], s.Points[1]) }),
	KindGannSquareFixed: fixed(FamilyGann, twoPoints, "square box sized by the shorter side",
		func(s ToolSpec, o Options) Tool { return gann.NewSquareFixed(s.Points[0], s.Points[1]) }),
	KindGannFan: fixed(FamilyGann, twoPoints, "nine rays over a quarter turn",
		func(s ToolSpec, o Options) Tool { return gann.NewFan(s.Points[0], s.Points[1]) }),
	KindGannSquare: fixed(FamilyGann, twoPoints, "square with price, time and angle lines",
		func(s ToolSpec, o Options) Tool { return gann.NewSquare(s.Points[0], s.Points[1]) }),

	KindXABCD: fixed(FamilyPatterns, patterns.PointNames(patterns.KindXABCD), "harmonic pattern with ratio check",
		func(s ToolSpec, o Options) Tool {
			p := s.Points
			return patterns.NewXABCD(p[0], p[1], p[2], p[3], p[4])
		}),
	KindCypher:           patternEntry(patterns.KindCypher, "cypher harmonic pattern"),
	KindABCD:             patternEntry(patterns.KindABCD, "AB=CD pattern"),
	KindHeadAndShoulders: patternEntry(patterns.KindHeadAndShoulders, "head and shoulders with neckline"),
	KindTrianglePattern:  patternEntry(patterns.KindTriangle, "converging triangle pattern"),
	KindThreeDrives:      patternEntry(patterns.KindThreeDrives, "three drives pattern"),

	KindElliottImpulse:     elliottEntry(elliott.Impulse, "five-wave impulse"),
	KindElliottCorrection:  elliottEntry(elliott.Correction, "ABC correction"),
	KindElliottTriangle:    elliottEntry(elliott.Triangle, "ABCDE triangle"),
	KindElliottDoubleCombo: elliottEntry(elliott.DoubleCombo, "WXY double combination"),
	KindElliottTripleCombo: elliottEntry(elliott.TripleCombo, "WXYXZ triple combination"),

	KindCyclicLines: fixed(FamilyCycles, twoPoints, "vertical lines every period",
		func(s ToolSpec, o Options) Tool {
			return cycles.NewCyclicLines(s.Points[0], s.Points[1], periodAdjust(s, o))
		}),
	KindTimeCycles: fixed(FamilyCycles, twoPoints, "cycle lines joined by arcs",
		func(s ToolSpec, o Options) Tool {
			return cycles.NewTimeCycles(s.Points[0], s.Points[1], periodAdjust(s, o))
		}),
	KindSineLine: fixed(FamilyCycles, twoPoints, "sine projection between anchors",
		func(s ToolSpec, o Options) Tool {
			l := cycles.NewSineLine(s.Points[0], s.Points[1])
			l.PeriodAdjust = periodAdjust(s, o)
			l.AmplitudeAdjust = o.AmplitudeAdjust
			if s.AmplitudeAdjust > 0 {
				l.AmplitudeAdjust = s.AmplitudeAdjust
			}
			l.NumPoints = o.SinePoints
			if s.Samples > 0 {
				l.NumPoints = s.Samples
			}
			return l
		}),

	KindPriceDateRange: fixed(FamilyMeasure, twoPoints, "price and time span between anchors (x in unix ms)",
		func(s ToolSpec, o Options) Tool { return measure.NewPriceDateRange(s.Points[0], s.Points[1]) }),
	KindForecast: fixed(FamilyMeasure, []string{"source", "target"}, "projected move from source to target",
		func(s ToolSpec, o Options) Tool { return measure.NewForecast(s.Points[0], s.Points[1]) }),

	KindBrush: {family: FamilyFreehand, min: 1, max: -1, desc: "freehand stroke",
		build: func(s ToolSpec, o Options) Tool {
			b := freehand.NewBrush()
			for _, p := range s.Points {
				b.AddPoint(p)
			}
			return b
		}},
	KindHighlighter: {family: FamilyFreehand, min: 1, max: -1, desc: "translucent freehand stroke",
		build: func(s ToolSpec, o Options) Tool {
			h := freehand.NewHighlighter(o.HighlighterAlpha)
			for _, p := range s.Points {
				h.AddPoint(p)
			}
			return h
		}},
}

func pitchforkEntry(v pitchfork.Variant, desc string) entry {
	return fixed(FamilyPitch, threePoints, desc, func(s ToolSpec, o Options) Tool {
		return pitchfork.New(v, s.Points[0], s.Points[1], s.Points[2])
	})
}

func patternEntry(k patterns.Kind, desc string) entry {
	return fixed(FamilyPatterns, patterns.PointNames(k), desc, func(s ToolSpec, o Options) Tool {
		// Point count is checked before build.
		p, _ := patterns.New(k, s.Points)
		return p
	})
}

func elliottEntry(w elliott.WaveType, desc string) entry {
	return fixed(FamilyElliott, twoPoints, desc, func(s ToolSpec, o Options) Tool {
		return elliott.NewTool(w, s.Points[0], s.Points[1])
	})
}

func samples(s ToolSpec, o Options) int {
	if s.Samples > 0 {
		return s.Samples
	}
	return o.SampleCount
}

func periodAdjust(s ToolSpec, o Options) float64 {
	if s.PeriodAdjust > 0 {
		return s.PeriodAdjust
	}
	return o.PeriodAdjust
}

// Build constructs the tool described by spec. It fails for an unknown
// kind, a wrong number of points, a non-finite coordinate or an invalid
// option. Cycle tools emit at most cycles.MaxCycleLines boundaries however
// small the period multiplier.
func Build(spec ToolSpec, opts Options) (Tool, error) {
	e, ok := registry[spec.Kind]
	if !ok {
		return nil, apperrors.NewToolError("", string(spec.Kind), "build", apperrors.ErrUnknownTool)
	}

	n := len(spec.Points)
	if n < e.min || (e.max >= 0 && n > e.max) {
		return nil, apperrors.NewToolError("", string(spec.Kind), "build",
			apperrors.NewPointCountError(string(spec.Kind), e.min, n))
	}

	for i, p := range spec.Points {
		if !finite(p) {
			return nil, apperrors.NewToolError("", string(spec.Kind), "build",
				apperrors.Wrapf(apperrors.ErrInvalidPoint, "point %d (%v, %v)", i, p.X, p.Y))
		}
	}

	if math.IsNaN(spec.Angle) || math.IsInf(spec.Angle, 0) || math.IsNaN(spec.EndAngle) || math.IsInf(spec.EndAngle, 0) {
		return nil, apperrors.NewToolError("", string(spec.Kind), "build",
			apperrors.Wrap(apperrors.ErrInvalidOption, "angle must be finite"))
	}
	if spec.Samples < 0 || spec.Samples == 1 {
		return nil, apperrors.NewToolError("", string(spec.Kind), "build",
			apperrors.Wrapf(apperrors.ErrInvalidOption, "samples must be at least 2, got %d", spec.Samples))
	}

	if !validAdjust(spec.PeriodAdjust) || !validAdjust(spec.AmplitudeAdjust) {
		return nil, apperrors.NewToolError("", string(spec.Kind), "build",
			apperrors.Wrap(apperrors.ErrInvalidOption, "period and amplitude adjustments must be finite and not negative"))
	}

	return e.build(spec, opts), nil
}

// validAdjust accepts 0 (use the configured default) and positive finite
// multipliers.
func validAdjust(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func finite(p geometry.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
