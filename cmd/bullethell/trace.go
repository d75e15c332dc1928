package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-hell/internal/trace"
)

var traceCmd = &cobra.Command{
	Use:   "trace <file.csv>",
	Short: "Summarize a trace written by 'sim --csv'",
	Long: `Read an event trace written by 'bullethell sim --csv' and print the
same summary sim prints: event counts and spawn statistics.

Examples:
  bullethell sim --seed 7 --csv > run.csv
  bullethell trace run.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func runTrace(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("cannot open trace: %w", err)
	}
	defer f.Close()

	records, err := trace.ReadCSV(f)
	if err != nil {
		return err
	}
	logger.Debug("trace loaded", "file", args[0], "records", len(records))

	trace.Summarize(records).Print(cmd.OutOrStdout())
	return nil
}
