// nbol is a terminal action RPG: steer a caster around an arena, fire
// projectiles at wandering enemies and survive the waves.
//
// Usage:
//
//	nbol list              - List available modes
//	nbol play <mode>       - Play a mode
//	nbol sim <mode>        - Run a headless autopilot simulation
//	nbol scores <mode>     - Show run history for a mode
//	nbol serve             - Start SSH server for remote play
//	nbol config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.nbol/nbol.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/nbol/internal/games/nbol"
	"github.com/vovakirdan/nbol/internal/registry"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

// logger is configured from the global flags before any command runs.
var logger = log.New(io.Discard)

// logFile is the --log-file handle, closed after the command finishes.
var logFile *os.File

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nbol",
	Short: "Nbol - a tiny action RPG in your terminal",
	Long: `Nbol is a terminal action RPG. Move around the arena, cast
projectiles at enemies, level up and clear every wave.

Available commands:
  list     - Show all available modes
  play     - Play a mode
  sim      - Run a headless simulation with the autopilot
  scores   - View run history
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  nbol list
  nbol play arena
  nbol play endless --difficulty hard
  nbol sim arena --seed 7 --ticks 36000
  nbol serve --ssh :2222
  nbol scores arena`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogger(cmd)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nbol/nbol.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger builds the process logger. Interactive play draws on the
// terminal, so without --log-file its logs are discarded.
func setupLogger(cmd *cobra.Command) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		logFile = f
		w = f
	case cmd.Name() == "play":
		w = io.Discard
	}

	logger = log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "nbol",
	})
	nbol.SetLogger(logger.WithPrefix("sim"))
	return nil
}

// closeLogger releases the --log-file handle. Later log calls are discarded.
func closeLogger() {
	if logFile == nil {
		return
	}
	logger.SetOutput(io.Discard)
	nbol.SetLogger(log.New(io.Discard))
	if err := logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing log file: %v\n", err)
	}
	logFile = nil
}

// requireMode exits with a hint when id is not a registered mode.
func requireMode(id string) {
	if registry.Exists(id) {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", id)
	fmt.Fprintln(os.Stderr, "Run 'nbol list' to see available modes.")
	os.Exit(1)
}

// applyGameFlags hands --config and --difficulty to the game package.
func applyGameFlags(configPath, difficulty string) {
	if difficulty != "" && !validDifficulty(difficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", difficulty)
		os.Exit(1)
	}
	nbol.SetConfigPath(configPath)
	nbol.SetDifficultyPreset(difficulty)
}

func validDifficulty(s string) bool {
	switch s {
	case "easy", "normal", "hard", "fixed":
		return true
	}
	return false
}
