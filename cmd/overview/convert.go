package main

import (
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/overview/trace"
)

var convertCmd = &cobra.Command{
	Use:   "convert <trace>...",
	Short: "Convert traces into one SQLite trace.",
	Long: "`convert a.json b.csv -o merged` writes the tasks of all inputs " +
		"to merged.sqlite3. Without -o a unique name is generated.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := trace.TaskQuery{}
		query.Where, _ = cmd.Flags().GetString("where")
		query.Kind, _ = cmd.Flags().GetString("kind")

		tasks, err := trace.LoadAll(cmd.Context(), args, query)
		if err != nil {
			log.Fatalf("Error loading trace: %v", err)
		}

		out, _ := cmd.Flags().GetString("output")
		out = strings.TrimSuffix(out, ".sqlite3")

		w := trace.NewSQLiteWriter(out)
		if err := w.Init(); err != nil {
			log.Fatalf("Error creating trace: %v", err)
		}

		for _, t := range tasks {
			if err := w.Write(t); err != nil {
				log.Fatalf("Error writing task %s: %v", t.ID, err)
			}
		}

		if err := w.Close(); err != nil {
			log.Fatalf("Error closing trace: %v", err)
		}

		status("%d tasks written to %s", len(tasks), w.Filename())
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "Output SQLite file name")
}
