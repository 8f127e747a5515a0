// Package cli provides the command-line interface for the drawing tools.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"chartdraw/internal/config"
	"chartdraw/internal/drawing"
	"chartdraw/internal/logging"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2024-06-01"
)

// skipConfigLoad marks commands that load the configuration themselves.
const skipConfigLoad = "skip-config-load"

// App holds the application dependencies.
type App struct {
	Config     *config.Config
	ConfigPath string
	Logger     zerolog.Logger
}

// NewBoard creates a board that builds tools with the loaded configuration.
func (a *App) NewBoard() *drawing.Board {
	return drawing.NewBoard(drawing.OptionsFromConfig(a.Config), a.Logger)
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: config.Default(),
		Logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:   "chartdraw",
		Short: "Chart drawing-tool geometry",
		Long: `chartdraw computes the geometry of technical-analysis drawing tools.

Given a tool kind and its anchor points it prints the render path and the
interactive handles, and it evaluates the measurement and pattern tools.

Use 'chartdraw tools' to list the supported kinds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.ConfigPath, _ = cmd.Flags().GetString("config")
			if app.ConfigPath == "" {
				app.ConfigPath = config.DefaultConfigPath()
			}

			if cmd.Annotations[skipConfigLoad] != "true" {
				cfg, err := config.Load(app.ConfigPath)
				if err != nil {
					return err
				}
				app.Config = cfg

				lc := logging.FromConfig(cfg.Logging)
				lc.Out = cmd.ErrOrStderr()
				app.Logger = logging.NewLoggerWithConfig(lc)
			}

			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			app.Logger.Debug().Str("command", cmd.CommandPath()).Str("config", app.ConfigPath).Msg("Starting command")

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, app.Logger))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/chartdraw/chartdraw.toml)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	addDrawingCommands(rootCmd, app)
	addMeasureCommands(rootCmd)
	addPatternCommands(rootCmd)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newExamplesCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			}
			output.Printf("chartdraw v%s\n", Version)
			output.Dim("Build date: %s", BuildDate)
			return nil
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage the chartdraw configuration file.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(map[string]string{"path": app.ConfigPath})
			}
			output.Println(app.ConfigPath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:         "validate",
		Short:       "Validate the configuration file",
		Annotations: map[string]string{skipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if _, err := config.Load(app.ConfigPath); err != nil {
				if output.IsJSON() {
					_ = output.JSON(map[string]interface{}{"valid": false, "error": err.Error()})
				} else {
					output.Error("Configuration validation failed: %v", err)
				}
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]bool{"valid": true})
			}
			output.Success("✓ Configuration is valid")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:         "init",
		Short:       "Write the default configuration file",
		Annotations: map[string]string{skipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := config.WriteTemplate(app.ConfigPath); err != nil {
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]string{"path": app.ConfigPath})
			}
			output.Success("✓ Wrote %s", app.ConfigPath)
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Geometry")
	output.Printf("  Extension Length: %g\n", cfg.Geometry.ExtensionLength)
	output.Printf("  Sample Count:     %d\n", cfg.Geometry.SampleCount)
	output.Printf("  Extended X Range: [%g, %g]\n", cfg.Geometry.ExtendedMinX, cfg.Geometry.ExtendedMaxX)
	output.Println()

	output.Bold("Cycles")
	output.Printf("  Period Adjust:    %g\n", cfg.Cycles.PeriodAdjust)
	output.Printf("  Amplitude Adjust: %g\n", cfg.Cycles.AmplitudeAdjust)
	output.Printf("  Sine Points:      %d\n", cfg.Cycles.SinePoints)
	output.Println()

	output.Bold("Freehand")
	output.Printf("  Highlighter Alpha: %g\n", cfg.Freehand.HighlighterAlpha)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:   %s\n", cfg.Logging.Level)
	output.Printf("  Console: %v\n", cfg.Logging.Console)
	file := "off"
	if cfg.Logging.File {
		file = fmt.Sprintf("%s (max %d MB, %d backups, %d days)",
			cfg.Logging.FilePath, cfg.Logging.MaxSize, cfg.Logging.MaxBackups, cfg.Logging.MaxAge)
	}
	output.Printf("  File:    %s\n", file)
}
