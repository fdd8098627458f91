package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sarchlab/overview/config"
	"github.com/sarchlab/overview/timeline"
	"github.com/sarchlab/overview/trace"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	infoColor = color.New(color.FgCyan)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "overview",
	Short: "Render timeline overviews of task traces.",
	Long: `Overview reads task traces from SQLite, JSON or CSV files and ` +
		`renders the timeline overview as SVG, as a display list, or ` +
		`serves it over HTTP.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "",
		"YAML or TOML config file")
	rootCmd.PersistentFlags().String("where", "",
		"Only load tasks executed at this location")
	rootCmd.PersistentFlags().String("kind", "",
		"Only load tasks of this kind")
}

// loadConfig builds the settings from defaults, the --config file and the
// environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		if err := cfg.Load(path); err != nil {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// loadTimeline reads the traces and stacks their tasks into lanes.
func loadTimeline(
	ctx context.Context,
	cmd *cobra.Command,
	cfg config.Config,
	paths []string,
) (*timeline.Aggregator, error) {
	query := trace.TaskQuery{}
	query.Where, _ = cmd.Flags().GetString("where")
	query.Kind, _ = cmd.Flags().GetString("kind")

	tasks, err := trace.LoadAll(ctx, paths, query)
	if err != nil {
		return nil, err
	}

	mode, err := cfg.TimelineHeightMode()
	if err != nil {
		return nil, err
	}

	agg := timeline.FromTasks(tasks, timeline.Options{HeightMode: mode})

	infoColor.Fprintf(os.Stderr, "Loaded %d tasks in %d lanes\n",
		len(tasks), agg.ModelCount())

	return agg, nil
}

func status(format string, args ...any) {
	okColor.Fprint(os.Stderr, "✓ ")
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
