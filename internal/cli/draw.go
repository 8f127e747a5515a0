// Package cli provides the command-line interface for the drawing tools.
package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chartdraw/internal/drawing"
	apperrors "chartdraw/internal/errors"
	"chartdraw/internal/geometry"
	"chartdraw/internal/logging"
)

// polylineLimit caps how many points a text-mode polyline shows.
const polylineLimit = 8

// drawResult is the JSON form of a built tool.
type drawResult struct {
	ID      string            `json:"id"`
	Kind    drawing.Kind      `json:"kind"`
	Label   string            `json:"label,omitempty"`
	Path    geometry.Path     `json:"path"`
	Handles []geometry.Handle `json:"handles"`
}

func addDrawingCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newDrawCmd(app))
	rootCmd.AddCommand(newToolsCmd())
}

func newDrawCmd(app *App) *cobra.Command {
	var (
		points          []string
		angle           float64
		endAngle        float64
		samples         int
		periodAdjust    float64
		amplitudeAdjust float64
	)

	cmd := &cobra.Command{
		Use:   "draw <kind>",
		Short: "Compute the path and handles of a drawing tool",
		Long: `Build a drawing tool from its anchor points and print its render path
and interactive handles. Anchors are given in drawing order with repeated
--point flags; see 'chartdraw tools' for the anchors each kind takes.`,
		Example: `  chartdraw draw trend_angle --point 0,0 --point 10,10
  chartdraw draw rotated_rectangle -p 0,0 -p 4,2 --angle 30
  chartdraw draw pitchfork -p 0,0 -p 5,10 -p 10,0 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			logger := logging.WithOperation(logging.FromContext(cmd.Context()), "draw")

			pts, err := ParsePoints(points)
			if err != nil {
				return err
			}

			spec := drawing.ToolSpec{
				Kind:            drawing.Kind(args[0]),
				Points:          pts,
				Angle:           geometry.Radians(angle),
				EndAngle:        geometry.Radians(endAngle),
				Samples:         samples,
				PeriodAdjust:    periodAdjust,
				AmplitudeAdjust: amplitudeAdjust,
			}
			logger.Debug().Str("kind", args[0]).Int("points", len(pts)).Msg("Building tool")

			board := app.NewBoard()
			entry, err := board.Add("", spec)
			if err != nil {
				if apperrors.Is(err, apperrors.ErrUnknownTool) {
					output.Error("Unknown tool %q; run 'chartdraw tools' for the list", args[0])
				}
				return err
			}

			result := drawResult{
				ID:      entry.ID,
				Kind:    entry.Kind,
				Path:    entry.Tool.Path(),
				Handles: entry.Tool.Handles(),
			}
			if l, ok := entry.Tool.(drawing.Labeler); ok {
				result.Label = l.Label()
			}

			if output.IsJSON() {
				return output.JSON(result)
			}
			printDrawResult(output, result)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&points, "point", "p", nil, "anchor point x,y (repeatable, in order)")
	cmd.Flags().Float64Var(&angle, "angle", 0, "rotation or arc start angle in degrees")
	cmd.Flags().Float64Var(&endAngle, "end-angle", 0, "arc end angle in degrees")
	cmd.Flags().IntVar(&samples, "samples", 0, "sample count for curved tools (default from config)")
	cmd.Flags().Float64Var(&periodAdjust, "period-adjust", 0, "cycle period multiplier (default from config)")
	cmd.Flags().Float64Var(&amplitudeAdjust, "amplitude-adjust", 0, "sine amplitude multiplier (default from config)")

	return cmd
}

func printDrawResult(output *Output, r drawResult) {
	output.Bold("%s (%s)", r.ID, r.Kind)
	if r.Label != "" {
		output.Printf("Label: %s\n", r.Label)
	}
	output.Println()

	output.Bold("Path")
	if len(r.Path) == 0 {
		output.Dim("  (nothing to render)")
	}
	for i, line := range r.Path {
		output.Printf("  %d: %s\n", i, FormatPolyline(line, polylineLimit))
	}
	output.Println()

	output.Bold("Handles")
	if len(r.Handles) == 0 {
		output.Dim("  (none)")
		return
	}
	table := NewTable(output, "#", "ROLE", "POINT", "ANCHORS")
	for i, h := range r.Handles {
		table.AddRow(strconv.Itoa(i), string(h.Role), FormatPoint(h.Point), strings.Join(h.Anchors, ","))
	}
	table.Render()
}

func newToolsCmd() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the drawing tool kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			var kinds []drawing.Info
			for _, info := range drawing.Kinds() {
				if family == "" || string(info.Family) == family {
					kinds = append(kinds, info)
				}
			}

			if output.IsJSON() {
				return output.JSON(kinds)
			}
			if len(kinds) == 0 {
				output.Warning("No tools in family %q", family)
				return nil
			}

			table := NewTable(output, "KIND", "FAMILY", "POINTS", "DESCRIPTION")
			for _, info := range kinds {
				table.AddRow(string(info.Kind), string(info.Family), pointsLabel(info), info.Description)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only list one family (lines, shapes, channels, ...)")
	return cmd
}

func pointsLabel(info drawing.Info) string {
	if info.MaxPoints < 0 {
		return strconv.Itoa(info.MinPoints) + "+"
	}
	if len(info.PointNames) > 0 {
		return strings.Join(info.PointNames, ",")
	}
	return strconv.Itoa(info.MinPoints)
}
