package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bullet-hell/internal/platform/tui"
	"github.com/vovakirdan/bullet-hell/internal/registry"
)

var flagHold int

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Play in the terminal. The mode defaults to "bullethell".

Terminals only report key presses, not releases, so a key counts as held
for a few ticks after each press. Key repeat keeps it held while the key
is down; --hold tunes how long a single press lasts.

Examples:
  bullethell play
  bullethell play bullethell_endless
  bullethell play --seed 42 --hold 8`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Ticks a key press counts as held")
}

func runPlay(cmd *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	sessLog, closeLog, err := sessionLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	state, err := tui.Run(game, store, sessLog, tui.Options{
		TickRate:  flagFPS,
		HoldTicks: flagHold,
		Seed:      flagSeed,
		Width:     width,
		Height:    height,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Score: %d\n", state.Score)
	return nil
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
