package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-hell/internal/config"
)

var (
	flagConfigDefaults bool
	flagConfigInit     bool
	flagConfigForce    bool
	flagConfigTo       string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the tuning config",
	Long: `Print the tuning config in effect, after --config, the user config
and the built-in defaults have been considered.

--defaults prints the commented built-in document instead. --init writes it
to ~/.bullethell/configs/shooter.yaml (or the --to path) as a starting
point for your own tuning.

Examples:
  bullethell config
  bullethell config --defaults > my-shooter.yaml
  bullethell config --init`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	f := configCmd.Flags()
	f.BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
	f.BoolVar(&flagConfigInit, "init", false, "Write the built-in defaults to the user config file")
	f.BoolVar(&flagConfigForce, "force", false, "Let --init replace an existing file")
	f.StringVar(&flagConfigTo, "to", "", "File for --init (default: user config file)")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	switch {
	case flagConfigInit:
		path := flagConfigTo
		if path == "" {
			path = config.UserShooterPath()
		}
		if err := config.WriteDefault(path, flagConfigForce); err != nil {
			return err
		}
		logger.Info("config written", "path", path)
		return nil

	case flagConfigDefaults:
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	data, err := shooterCfg.Marshal()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
