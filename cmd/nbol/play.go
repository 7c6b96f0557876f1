package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/nbol/internal/core"
	"github.com/vovakirdan/nbol/internal/platform/tui"
	"github.com/vovakirdan/nbol/internal/registry"
	"github.com/vovakirdan/nbol/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  WASD/Arrows        - Move (hold; terminals repeat held keys)
  Shift+move         - Boost while energy lasts
  Space/F            - Cast a projectile
  P/Esc              - Pause
  Tab                - Run history (paused or after the run)
  R                  - Restart (after the run)
  Ctrl+S             - Save a screenshot to ~/.nbol/screenshots
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - More health, fewer and weaker enemies
  normal - Base stats, enemies ramp up with waves and score
  hard   - More, faster enemies that start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  nbol play arena
  nbol play endless --difficulty hard
  nbol play arena --config ./my-arena.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	modeID := args[0]
	requireMode(modeID)
	applyGameFlags(flagConfig, flagDifficulty)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tui.Options{Logger: logger})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
