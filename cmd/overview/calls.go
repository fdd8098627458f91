package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/overview/canvas"
	"github.com/sarchlab/overview/overview"
)

var callsCmd = &cobra.Command{
	Use:   "calls <trace>...",
	Short: "Write the display list of one overview frame.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		if format != "json" && format != "msgpack" {
			log.Fatalf("Invalid format: %s. Allowed values are `json` and `msgpack`", format)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		agg, err := loadTimeline(cmd.Context(), cmd, cfg, args)
		if err != nil {
			log.Fatalf("Error loading trace: %v", err)
		}

		rec, err := renderFrame(cmd, cfg, agg, func(overview.Surface) *canvas.Recorder {
			return canvas.NewRecorder()
		})
		if err != nil {
			log.Fatalf("Error rendering: %v", err)
		}

		if format == "msgpack" {
			err = rec.EncodeMsgpack(os.Stdout)
		} else {
			err = rec.EncodeJSON(os.Stdout)
		}

		if err != nil {
			log.Fatalf("Error writing display list: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(callsCmd)
	addFrameFlags(callsCmd)
	callsCmd.Flags().String("format", "json", "Encoding: json or msgpack")
}
