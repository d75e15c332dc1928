// bullethell is a small arcade shooter that runs in a terminal or a window.
//
// Usage:
//
//	bullethell list              - List game modes
//	bullethell play [mode]       - Play in the terminal
//	bullethell window [mode]     - Play in a desktop window
//	bullethell menu              - Pick a mode interactively
//	bullethell scores [mode]     - Show recorded runs
//	bullethell sim [mode]        - Run headless and print a trace
//	bullethell trace <file.csv>  - Summarize a saved trace
//	bullethell config            - Show or create the tuning config
//
// Global flags:
//
//	--fps <rate>         - Tick rate for the terminal and sim (default: 60)
//	--seed <value>       - RNG seed (0 = time based for play)
//	--db <path>          - Keep finished runs in this SQLite file
//	--config <path>      - Tuning YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log file for terminal sessions
//
// BULLETHELL_SEED, BULLETHELL_CONFIG, BULLETHELL_DB and BULLETHELL_LOG_LEVEL
// (also read from ./.env) fill in flags that were not given.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bullet-hell/internal/config"
	"github.com/vovakirdan/bullet-hell/internal/games/bullethell"
	"github.com/vovakirdan/bullet-hell/internal/registry"
	"github.com/vovakirdan/bullet-hell/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string

	// Set up by PersistentPreRunE
	shooterCfg config.ShooterConfig
	logger     *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bullethell",
	Short: "Bullet Hell - a vertical arcade shooter",
	Long: `Bullet Hell is a small vertical shooter. Dodge enemy fire, shoot
down enemies, and see how long you last.

Controls:
  WASD/Arrows  - Move
  Shift        - Move slowly
  Space        - Fire / start from the title screen
  Enter        - Back to the title after a game over
  Esc/Q        - Quit

Examples:
  bullethell play
  bullethell window bullethell_endless
  bullethell menu --db ~/.bullethell/runs.db
  bullethell sim --seed 7 --frames 3600 --csv > trace.csv`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to a runs database (empty = don't keep scores)")
	pf.StringVar(&flagConfig, "config", "", "Path to a tuning YAML")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs of terminal sessions to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies environment overrides, loads the tuning config and builds
// the logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	applyEnv(cmd, env)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d", flagFPS)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = newLogger(os.Stderr, level)

	shooterCfg, err = config.LoadShooter(flagConfig)
	if err != nil {
		return err
	}
	bullethell.SetConfig(shooterCfg)
	w, h := shooterCfg.LogicalSize()
	logger.Debug("config loaded", "path", flagConfig, "playfield", fmt.Sprintf("%dx%d", w, h))
	return nil
}

// applyEnv fills flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command, env config.Env) {
	flags := cmd.Flags()
	if env.Seed != nil && !flags.Changed("seed") {
		flagSeed = *env.Seed
	}
	if env.ConfigPath != "" && !flags.Changed("config") {
		flagConfig = env.ConfigPath
	}
	if env.DBPath != "" && !flags.Changed("db") {
		flagDBPath = env.DBPath
	}
	if env.LogLevel != "" && !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bullethell",
	})
	l.SetLevel(level)
	return l
}

// sessionLogger returns the logger for full-screen terminal sessions, which
// hide stderr: the --log-file if given, otherwise a silent logger.
func sessionLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f, logger.GetLevel()), func() { f.Close() }, nil
}

// openStore opens the runs database when --db is set. Failures are warnings:
// the game still works without a score history.
func openStore() *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// modeArg returns the mode named by args or the default mode.
func modeArg(args []string) (string, error) {
	mode := bullethell.ID
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return "", fmt.Errorf("unknown mode %q, run 'bullethell list' to see available modes", mode)
	}
	return mode, nil
}
