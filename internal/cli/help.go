// Package cli provides the command-line interface for the drawing tools.
package cli

import (
	"github.com/spf13/cobra"
)

// workflowExamples groups example invocations by task.
var workflowExamples = []struct {
	title    string
	commands []string
}{
	{
		title: "Lines",
		commands: []string{
			"chartdraw draw trend_line -p 0,100 -p 50,120",
			"chartdraw draw trend_angle -p 0,0 -p 10,10       # label: 45.00°",
			"chartdraw draw extended_line -p 0,0 -p 1,2 --json",
		},
	},
	{
		title: "Shapes",
		commands: []string{
			"chartdraw draw rotated_rectangle -p 0,0 -p 40,20 --angle 30",
			"chartdraw draw ellipse -p 0,0 -p 100,50 --samples 36",
			"chartdraw draw arc -p 0,0 -p 10,0 --angle 0 --end-angle 90",
		},
	},
	{
		title: "Channels and Pitchforks",
		commands: []string{
			"chartdraw draw parallel_channel -p 0,10 -p 50,30 -p 0,0",
			"chartdraw draw schiff_pitchfork -p 0,0 -p 10,20 -p 20,5",
		},
	},
	{
		title: "Gann, Cycles and Waves",
		commands: []string{
			"chartdraw draw gann_fan -p 0,0 -p 100,100",
			"chartdraw draw cyclic_lines -p 0,0 -p 20,10 --period-adjust 0.5",
			"chartdraw draw elliott_impulse -p 0,100 -p 100,200",
		},
	},
	{
		title: "Measurement and Patterns",
		commands: []string{
			"chartdraw measure range --from 1704067200000,250 --to 1704348000000,262.5",
			"chartdraw measure position long --entry 100 --stop 95 --target 110",
			"chartdraw pattern check -p 0,0 -p 10,100 -p 20,50 -p 30,80 -p 40,30",
		},
	},
}

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show common workflow examples",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			if output.IsJSON() {
				grouped := make(map[string][]string, len(workflowExamples))
				for _, ex := range workflowExamples {
					grouped[ex.title] = ex.commands
				}
				return output.JSON(grouped)
			}

			output.Bold("Common Workflow Examples")
			output.Println()
			for _, ex := range workflowExamples {
				output.Info(ex.title)
				for _, c := range ex.commands {
					output.Printf("  %s\n", c)
				}
				output.Println()
			}
			return nil
		},
	}
}
