// Package measure provides the price/date range, position projection and
// forecast tools. These compute scalars and labels; their only geometry is
// the caller's own anchors.
package measure

import (
	"fmt"
	"math"
	"time"

	"chartdraw/internal/geometry"
	"chartdraw/pkg/utils"
)

// Anchor names used in handle tags.
const (
	AnchorStart = "start"
	AnchorEnd   = "end"
)

// CalculatePriceRange returns |endPrice - startPrice|.
func CalculatePriceRange(startPrice, endPrice float64) float64 {
	return math.Abs(endPrice - startPrice)
}

// CalculatePercentageChange returns (end-start)/start * 100, or 0 when start
// is 0.
func CalculatePercentageChange(start, end float64) float64 {
	if start == 0 {
		return 0
	}
	return (end - start) / start * 100
}

// CalculateDataRange returns end - start in milliseconds.
func CalculateDataRange(start, end time.Time) int64 {
	return end.Sub(start).Milliseconds()
}

// PriceDateRange is the combined price and time measurement between two
// anchors whose X is a unix millisecond timestamp and Y a price.
type PriceDateRange struct {
	PriceDelta    float64           `json:"priceDelta"`
	PriceRange    float64           `json:"priceRange"`
	PercentChange float64           `json:"percentChange"`
	Milliseconds  int64             `json:"milliseconds"`
	Label         string            `json:"label"`
	Adjustment    []geometry.Handle `json:"adjustmentPoints"`
	Resize        []geometry.Handle `json:"resizePoints"`
}

// CalculateDataPriceRange measures from start to end. The label reads
// "<delta> (<pct>%) <span>", e.g. "12.50 (5.00%) 3d 4h".
func CalculateDataPriceRange(start, end geometry.Point) PriceDateRange {
	delta := end.Y - start.Y
	pct := CalculatePercentageChange(start.Y, end.Y)
	ms := CalculateDataRange(time.UnixMilli(int64(start.X)), time.UnixMilli(int64(end.X)))

	min, max := geometry.Bounds(start, end)
	return PriceDateRange{
		PriceDelta:    delta,
		PriceRange:    CalculatePriceRange(start.Y, end.Y),
		PercentChange: pct,
		Milliseconds:  ms,
		Label:         fmt.Sprintf("%s (%.2f%%) %s", utils.FormatPrice(delta), pct, utils.FormatSpan(ms)),
		Adjustment: []geometry.Handle{
			geometry.NewHandle(start, geometry.HandleAdjust, AnchorStart),
			geometry.NewHandle(end, geometry.HandleAdjust, AnchorEnd),
		},
		Resize: []geometry.Handle{
			geometry.NewHandle(min, geometry.HandleScale, AnchorStart, AnchorEnd),
			geometry.NewHandle(geometry.Pt(max.X, min.Y), geometry.HandleScale, AnchorStart, AnchorEnd),
			geometry.NewHandle(max, geometry.HandleScale, AnchorStart, AnchorEnd),
			geometry.NewHandle(geometry.Pt(min.X, max.Y), geometry.HandleScale, AnchorStart, AnchorEnd),
		},
	}
}

// PriceDateRangeTool holds the two anchors of a price/date range measurement.
type PriceDateRangeTool struct {
	Start geometry.Point
	End   geometry.Point
}

// NewPriceDateRange creates a price/date range tool.
func NewPriceDateRange(start, end geometry.Point) *PriceDateRangeTool {
	return &PriceDateRangeTool{Start: start, End: end}
}

// AdjustStart moves the first anchor.
func (t *PriceDateRangeTool) AdjustStart(p geometry.Point) { t.Start = p }

// AdjustEnd moves the second anchor.
func (t *PriceDateRangeTool) AdjustEnd(p geometry.Point) { t.End = p }

// Measure computes the current measurement.
func (t *PriceDateRangeTool) Measure() PriceDateRange {
	return CalculateDataPriceRange(t.Start, t.End)
}

// Label is the label of the current measurement.
func (t *PriceDateRangeTool) Label() string { return t.Measure().Label }

// Path is the segment between the anchors.
func (t *PriceDateRangeTool) Path() geometry.Path {
	return geometry.Path{{t.Start, t.End}}
}

// Handles returns the adjustment handles followed by the resize handles.
func (t *PriceDateRangeTool) Handles() []geometry.Handle {
	m := t.Measure()
	return append(m.Adjustment, m.Resize...)
}

// Side is the direction of a projected position.
type Side string

const (
	Long  Side = "long"
	Short Side = "short"
)

// Position is the projected outcome of a trade.
type Position struct {
	Side            Side    `json:"side"`
	Entry           float64 `json:"entry"`
	Stop            float64 `json:"stop"`
	Target          float64 `json:"target"`
	Quantity        float64 `json:"quantity"`
	Profit          float64 `json:"profit"`
	Loss            float64 `json:"loss"`
	RiskRewardRatio float64 `json:"riskRewardRatio"`
}

// LongPosition projects a long trade. RiskRewardRatio is +Inf when the
// loss is exactly 0.
func LongPosition(entry, stop, target, quantity float64) Position {
	return project(Long, entry, stop, target, quantity,
		(target-entry)*quantity, (entry-stop)*quantity)
}

// ShortPosition projects a short trade. RiskRewardRatio is +Inf when the
// loss is exactly 0.
func ShortPosition(entry, stop, target, quantity float64) Position {
	return project(Short, entry, stop, target, quantity,
		(entry-target)*quantity, (stop-entry)*quantity)
}

func project(side Side, entry, stop, target, quantity, profit, loss float64) Position {
	rr := math.Inf(1)
	if loss != 0 {
		rr = profit / loss
	}
	return Position{
		Side:            side,
		Entry:           entry,
		Stop:            stop,
		Target:          target,
		Quantity:        quantity,
		Profit:          profit,
		Loss:            loss,
		RiskRewardRatio: rr,
	}
}

// Label summarizes the projection, e.g. "P 100.00 / L 50.00 / RR 2.00".
func (p Position) Label() string {
	return fmt.Sprintf("P %s / L %s / RR %s",
		utils.FormatPrice(p.Profit), utils.FormatPrice(p.Loss), utils.FormatRatio(p.RiskRewardRatio))
}

// Forecast projects from a source anchor to a target anchor.
type Forecast struct {
	Source geometry.Point
	Target geometry.Point
}

// NewForecast creates a forecast tool.
func NewForecast(source, target geometry.Point) *Forecast {
	return &Forecast{Source: source, Target: target}
}

// AdjustSource moves the source anchor.
func (f *Forecast) AdjustSource(p geometry.Point) { f.Source = p }

// AdjustTarget moves the target anchor.
func (f *Forecast) AdjustTarget(p geometry.Point) { f.Target = p }

// Change is Target.Y - Source.Y.
func (f *Forecast) Change() float64 { return f.Target.Y - f.Source.Y }

// PercentChange is the change relative to the source price; 0 when the
// source price is 0.
func (f *Forecast) PercentChange() float64 {
	return CalculatePercentageChange(f.Source.Y, f.Target.Y)
}

// Label reads "<signed change> (<signed pct>)".
func (f *Forecast) Label() string {
	return fmt.Sprintf("%s (%s)", utils.FormatSignedPrice(f.Change()), utils.FormatPercent(f.PercentChange()))
}

// Path is the segment from source to target.
func (f *Forecast) Path() geometry.Path {
	return geometry.Path{{f.Source, f.Target}}
}

// Handles returns the source and target anchors.
func (f *Forecast) Handles() []geometry.Handle {
	return []geometry.Handle{
		geometry.NewHandle(f.Source, geometry.HandleAdjust, AnchorStart),
		geometry.NewHandle(f.Target, geometry.HandleAdjust, AnchorEnd),
	}
}
