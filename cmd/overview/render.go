package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/overview/canvas"
	"github.com/sarchlab/overview/config"
	"github.com/sarchlab/overview/overview"
	"github.com/sarchlab/overview/timeline"
	"github.com/sarchlab/overview/zoom"
)

var renderCmd = &cobra.Command{
	Use:   "render <trace>...",
	Short: "Render one overview frame to SVG.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		agg, err := loadTimeline(cmd.Context(), cmd, cfg, args)
		if err != nil {
			log.Fatalf("Error loading trace: %v", err)
		}

		svg, err := renderFrame(cmd, cfg, agg, func(s overview.Surface) *canvas.SVG {
			return canvas.NewSVG(s.Width, s.Height)
		})
		if err != nil {
			log.Fatalf("Error rendering: %v", err)
		}

		out, _ := cmd.Flags().GetString("output")

		f, err := os.Create(out)
		if err != nil {
			log.Fatalf("Error creating %s: %v", out, err)
		}
		defer f.Close()

		if _, err := svg.WriteTo(f); err != nil {
			log.Fatalf("Error writing %s: %v", out, err)
		}

		status("Overview written to %s", out)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addFrameFlags(renderCmd)
	renderCmd.Flags().StringP("output", "o", "overview.svg", "Output SVG file")
}

func addFrameFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("start", 0, "Start of the shown window in ns")
	cmd.Flags().Int64("end", 0, "End of the shown window in ns")
}

// renderFrame paints one composite frame of the whole trace, or of the
// --start/--end window when given, onto the context made by newCtx.
func renderFrame[C overview.Canvas](
	cmd *cobra.Command,
	cfg config.Config,
	agg *timeline.Aggregator,
	newCtx func(overview.Surface) C,
) (C, error) {
	var zero C

	palette, err := cfg.Palette()
	if err != nil {
		return zero, err
	}

	clamp, err := cfg.NoteClampMode()
	if err != nil {
		return zero, err
	}

	zc := zoom.NewControl()
	zc.SetTrace(agg.TraceStart(), agg.TraceEnd())

	if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
		start, _ := cmd.Flags().GetInt64("start")
		end, _ := cmd.Flags().GetInt64("end")

		if end <= start {
			return zero, fmt.Errorf("end %d must be after start %d", end, start)
		}

		zc.SetTrace(start, end)
	}

	renderer := overview.MakeBuilder().
		WithDataProvider(agg).
		WithViewRange(zc).
		WithPalette(palette).
		WithNoteClamp(clamp).
		Build()

	surface := cfg.Surface(zc.TraceDuration(), agg.ModelCount())
	ctx := newCtx(surface)
	renderer.Paint(surface, ctx)

	return ctx, nil
}
