package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-hell/internal/asset"
	"github.com/vovakirdan/bullet-hell/internal/platform/window"
	"github.com/vovakirdan/bullet-hell/internal/registry"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Play in a desktop window. The mode defaults to "bullethell".

The window size and pixel scale come from the display section of the
tuning config. Sprites are built in; --assets points at a directory of
replacement PNGs with the same file names.

Examples:
  bullethell window
  bullethell window bullethell_endless --db ~/.bullethell/runs.db
  bullethell window --assets ./my-sprites`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with replacement sprite PNGs")
}

func runWindow(cmd *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	assets, err := loadAssets()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	d := shooterCfg.Display
	state, err := window.Run(game, assets, store, logger, window.Options{
		Width:  d.WindowWidth,
		Height: d.WindowHeight,
		Scale:  d.Scale,
		Seed:   flagSeed,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Score: %d\n", state.Score)
	return nil
}

func loadAssets() (*asset.Set, error) {
	if flagAssets == "" {
		return asset.Default()
	}
	logger.Debug("loading sprites", "dir", flagAssets)
	return asset.Load(flagAssets)
}
