// Package cli provides the command-line interface for the drawing tools.
package cli

import (
	"math"

	"github.com/spf13/cobra"

	"chartdraw/internal/drawing/measure"
	"chartdraw/internal/logging"
	"chartdraw/pkg/utils"
)

func addMeasureCommands(rootCmd *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Price ranges and position projections",
	}
	cmd.AddCommand(newMeasureRangeCmd())
	cmd.AddCommand(newMeasurePositionCmd())
	rootCmd.AddCommand(cmd)
}

func newMeasureRangeCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Measure the price and time span between two points",
		Long: `Measure the price and time span between two points given as
unixMillis,price.`,
		Example: `  chartdraw measure range --from 1704067200000,250 --to 1704348000000,262.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			start, err := ParsePoint(from)
			if err != nil {
				return err
			}
			end, err := ParsePoint(to)
			if err != nil {
				return err
			}

			r := measure.CalculateDataPriceRange(start, end)
			logger := logging.FromContext(cmd.Context())
			logger.Debug().Float64("delta", r.PriceDelta).Int64("ms", r.Milliseconds).Msg("Measured range")

			if output.IsJSON() {
				return output.JSON(r)
			}
			output.Bold("Price/Date Range")
			output.Printf("  Change:   %s\n", output.Signed(r.PriceDelta, utils.FormatSignedPrice(r.PriceDelta)))
			output.Printf("  Range:    %s\n", utils.FormatPrice(r.PriceRange))
			output.Printf("  Percent:  %s\n", output.Signed(r.PercentChange, utils.FormatPercent(r.PercentChange)))
			output.Printf("  Duration: %s\n", utils.FormatSpan(r.Milliseconds))
			output.Printf("  Label:    %s\n", r.Label)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start point unixMillis,price")
	cmd.Flags().StringVar(&to, "to", "", "end point unixMillis,price")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// positionResult is the JSON form of a projection. JSON has no infinity, so
// an unbounded ratio is reported as null with its label.
type positionResult struct {
	measure.Position
	RiskRewardRatio *float64 `json:"riskRewardRatio"`
	RiskRewardLabel string   `json:"riskRewardLabel"`
}

func newPositionResult(p measure.Position) positionResult {
	r := positionResult{Position: p, RiskRewardLabel: utils.FormatRatio(p.RiskRewardRatio)}
	if !math.IsInf(p.RiskRewardRatio, 0) && !math.IsNaN(p.RiskRewardRatio) {
		rr := p.RiskRewardRatio
		r.RiskRewardRatio = &rr
	}
	return r
}

func newMeasurePositionCmd() *cobra.Command {
	var entry, stop, target, qty float64

	cmd := &cobra.Command{
		Use:       "position <long|short>",
		Short:     "Project profit, loss and risk/reward of a position",
		Example:   `  chartdraw measure position long --entry 100 --stop 95 --target 110 --qty 2`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(measure.Long), string(measure.Short)},
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			var p measure.Position
			if measure.Side(args[0]) == measure.Short {
				p = measure.ShortPosition(entry, stop, target, qty)
			} else {
				p = measure.LongPosition(entry, stop, target, qty)
			}
			logger := logging.FromContext(cmd.Context())
			logger.Debug().Str("side", args[0]).Float64("profit", p.Profit).Float64("loss", p.Loss).Msg("Projected position")

			if output.IsJSON() {
				return output.JSON(newPositionResult(p))
			}
			output.Bold("%s position", p.Side)
			output.Printf("  Entry:  %s\n", utils.FormatPrice(p.Entry))
			output.Printf("  Stop:   %s\n", utils.FormatPrice(p.Stop))
			output.Printf("  Target: %s\n", utils.FormatPrice(p.Target))
			output.Printf("  Qty:    %g\n", p.Quantity)
			output.Printf("  Profit: %s\n", output.Green(utils.FormatPrice(p.Profit)))
			output.Printf("  Loss:   %s\n", output.Red(utils.FormatPrice(p.Loss)))
			output.Printf("  R:R:    %s\n", utils.FormatRatio(p.RiskRewardRatio))
			return nil
		},
	}

	cmd.Flags().Float64Var(&entry, "entry", 0, "entry price")
	cmd.Flags().Float64Var(&stop, "stop", 0, "stop-loss price")
	cmd.Flags().Float64Var(&target, "target", 0, "target price")
	cmd.Flags().Float64Var(&qty, "qty", 1, "quantity")
	_ = cmd.MarkFlagRequired("entry")
	_ = cmd.MarkFlagRequired("stop")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
