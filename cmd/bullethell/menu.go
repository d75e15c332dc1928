package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-hell/internal/games/bullethell"
	"github.com/vovakirdan/bullet-hell/internal/platform/tui"
	"github.com/vovakirdan/bullet-hell/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start in interactive menu mode.

After a run ends you return to the menu to play again. With --db the menu
shows the best score per mode and Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  bullethell menu
  bullethell menu --db ~/.bullethell/runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Ticks a key press counts as held")
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	scoreboardMode := bullethell.ID

	for {
		res, err := tui.RunMenu(store, width, height)
		if err != nil {
			return err
		}
		width, height = res.Width, res.Height

		if res.Quit {
			return nil
		}

		if res.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, scoreboardMode, width, height)
			if err != nil {
				sessLog.Error("scoreboard failed", "err", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(res.GameID)
		if err != nil {
			sessLog.Error("cannot create game", "mode", res.GameID, "err", err)
			continue
		}
		scoreboardMode = res.GameID

		// A fixed --seed replays the same run every time.
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		if _, err := tui.Run(game, store, sessLog, tui.Options{
			TickRate:  flagFPS,
			HoldTicks: flagHold,
			Seed:      seed,
			Width:     width,
			Height:    height,
		}); err != nil {
			sessLog.Error("game failed", "mode", res.GameID, "err", err)
		}
	}
}
