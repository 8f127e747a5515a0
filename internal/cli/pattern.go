// Package cli provides the command-line interface for the drawing tools.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"chartdraw/internal/drawing/patterns"
	apperrors "chartdraw/internal/errors"
	"chartdraw/internal/logging"
	"chartdraw/pkg/utils"
)

func addPatternCommands(rootCmd *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Harmonic and chart pattern helpers",
	}
	cmd.AddCommand(newPatternCheckCmd())
	cmd.AddCommand(newPatternPointsCmd())
	rootCmd.AddCommand(cmd)
}

// patternCheck is the JSON form of an XABCD validity check.
type patternCheck struct {
	Points map[string]string `json:"points"`
	ABXA   float64           `json:"abXa"`
	BCAB   float64           `json:"bcAb"`
	CDBC   float64           `json:"cdBc"`
	Valid  bool              `json:"valid"`
}

func newPatternCheckCmd() *cobra.Command {
	var points []string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the leg ratios of an XABCD pattern",
		Long: `Check the leg ratios of an XABCD pattern given its five swing points
X, A, B, C and D in order. The pattern is valid when AB/XA and BC/AB lie in
[0.382, 0.886] and CD/BC lies in [1.272, 1.618].`,
		Example: `  chartdraw pattern check -p 0,0 -p 10,100 -p 20,50 -p 30,80 -p 40,30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			pts, err := ParsePoints(points)
			if err != nil {
				return err
			}
			if len(pts) != 5 {
				return apperrors.NewPointCountError(string(patterns.KindXABCD), 5, len(pts))
			}

			p := patterns.NewXABCD(pts[0], pts[1], pts[2], pts[3], pts[4])
			abXA, bcAB, cdBC := p.Ratios()
			valid := p.IsValid()
			logger := logging.FromContext(cmd.Context())
			logger.Debug().Bool("valid", valid).Msg("Checked XABCD pattern")

			if output.IsJSON() {
				named := make(map[string]string, 5)
				for i, name := range patterns.PointNames(patterns.KindXABCD) {
					named[name] = FormatPoint(pts[i])
				}
				return output.JSON(patternCheck{Points: named, ABXA: abXA, BCAB: bcAB, CDBC: cdBC, Valid: valid})
			}

			table := NewTable(output, "RATIO", "VALUE", "RANGE")
			table.AddRow("AB/XA", utils.FormatRatio(abXA), "0.382 - 0.886")
			table.AddRow("BC/AB", utils.FormatRatio(bcAB), "0.382 - 0.886")
			table.AddRow("CD/BC", utils.FormatRatio(cdBC), "1.272 - 1.618")
			table.Render()
			output.Println()
			if valid {
				output.Success("✓ Valid XABCD pattern")
			} else {
				output.Warning("✗ Ratios outside the XABCD bounds")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&points, "point", "p", nil, "swing point x,y (X, A, B, C, D in order)")
	return cmd
}

func newPatternPointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "points <kind>",
		Short:     "List the swing points a pattern kind takes",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"xabcd", "cypher", "abcd", "head_and_shoulders", "triangle_pattern", "three_drives"},
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			names := patterns.PointNames(patterns.Kind(args[0]))
			if len(names) == 0 {
				return apperrors.NewToolError("", args[0], "points", apperrors.ErrUnknownTool)
			}
			if output.IsJSON() {
				return output.JSON(map[string][]string{"points": names})
			}
			output.Println(strings.Join(names, ", "))
			return nil
		},
	}
}
