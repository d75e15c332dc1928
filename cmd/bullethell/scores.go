package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-hell/internal/registry"
	"github.com/vovakirdan/bullet-hell/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs for a mode, or a per-mode overview
when no mode is given. Needs a database (--db or BULLETHELL_DB).

Examples:
  bullethell scores --db ~/.bullethell/runs.db
  bullethell scores bullethell --limit 20
  bullethell scores bullethell_endless --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagDBPath == "" {
		return errors.New("no runs database, pass --db or set BULLETHELL_DB")
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			return errors.New("--clear needs a mode")
		}
		return printStats(cmd, store)
	}

	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	if flagScoresClear {
		if err := store.ClearRuns(mode); err != nil {
			return err
		}
		logger.Info("runs cleared", "mode", mode)
		return nil
	}
	return printTopRuns(cmd, store, mode)
}

func printTopRuns(cmd *cobra.Command, store *storage.Store, mode string) error {
	out := cmd.OutOrStdout()

	runs, err := store.TopRuns(mode, flagScoresLimit)
	if err != nil {
		return err
	}

	title := mode
	if g, err := registry.Create(mode); err == nil {
		title = g.Title()
	}
	fmt.Fprintf(out, "Best Runs - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'bullethell play %s --db %s' to record the first one!\n", mode, flagDBPath)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-12s  %s\n", "Rank", "Score", "Time", "Seed", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %-12s  %s\n", "----", "-----", "----", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-8d  %-8s  %-12d  %s\n",
			i+1, r.Score, runTime(r.Frames), r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.BestScore(mode)
	if err == nil {
		fmt.Fprintf(out, "\nBest: %d\n", best)
	}
	return nil
}

func printStats(cmd *cobra.Command, store *storage.Store) error {
	out := cmd.OutOrStdout()

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-20s  %-5s  %-5s  %-7s  %s\n", "Mode", "Runs", "Best", "Average", "Last played")
	fmt.Fprintf(out, "  %-20s  %-5s  %-5s  %-7s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, info := range registry.List() {
		s, ok := stats[info.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %-20s  %-5d  %-5d  %-7.1f  %s\n",
			info.ID, s.Runs, s.BestScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// runTime formats a frame count as m:ss at the configured tick rate.
func runTime(frames int) string {
	secs := frames / flagFPS
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
