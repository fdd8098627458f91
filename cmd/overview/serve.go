package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/sarchlab/overview/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve <trace>...",
	Short: "Serve overview frames, notes and zoom state over HTTP.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		if cmd.Flags().Changed("http") {
			cfg.HTTP, _ = cmd.Flags().GetString("http")
		}

		if open, _ := cmd.Flags().GetBool("open"); open {
			cfg.OpenBrowser = true
		}

		agg, err := loadTimeline(cmd.Context(), cmd, cfg, args)
		if err != nil {
			log.Fatalf("Error loading trace: %v", err)
		}

		s := server.MakeBuilder().
			WithConfig(cfg).
			WithAggregator(agg).
			Build()

		url := s.Start()
		status("Overview served at %s", url)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("http", "", "HTTP service address (e.g., ':3001')")
	serveCmd.Flags().Bool("open", false, "Open the overview in a browser")
}
