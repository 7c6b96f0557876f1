package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nbol/internal/core"
	"github.com/vovakirdan/nbol/internal/games/nbol"
	"github.com/vovakirdan/nbol/internal/platform/tui"
	"github.com/vovakirdan/nbol/internal/registry"
	"github.com/vovakirdan/nbol/internal/storage"
)

var (
	flagSimTicks      int
	flagSimSave       bool
	flagSimConfig     string
	flagSimDifficulty string
)

var simCmd = &cobra.Command{
	Use:   "sim <mode>",
	Short: "Run a headless simulation",
	Long: `Run a mode without a terminal UI, driven by the built-in autopilot.
The run stops when the player is defeated, the arena is cleared or the
tick budget runs out, then prints a summary.

The same --seed always produces the same run.

Examples:
  nbol sim arena --seed 7
  nbol sim endless --ticks 108000 --difficulty hard
  nbol sim arena --seed 7 --save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*10, "Maximum ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the database")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, args []string) {
	modeID := args[0]
	requireMode(modeID)
	applyGameFlags(flagSimConfig, flagSimDifficulty)

	created, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game, ok := created.(*nbol.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: mode %q does not support headless runs\n", modeID)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     seed,
	})

	logger.Info("simulation started", "mode", modeID, "seed", seed, "ticks", flagSimTicks)
	start := time.Now()

	pilot := nbol.NewAutopilot()
	for range flagSimTicks {
		st := game.State()
		if st.GameOver || st.Won {
			break
		}
		game.Step(pilot.Next(game))
	}

	sum := game.Summary()
	logger.Info("simulation finished", "outcome", sum.Outcome, "elapsed", time.Since(start).Round(time.Millisecond))

	printSummary(os.Stdout, game, seed)

	if !flagSimSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(tui.RunRecordFor(game))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		return
	}
	fmt.Printf("Run ID:     %s\n", id)
}

// printSummary writes the run totals. Game time uses the world's own tick
// length, which already falls back to the default rate.
func printSummary(w io.Writer, game *nbol.Game, seed int64) {
	sum := game.Summary()
	seconds := float64(sum.Ticks) * game.World().TickSeconds()

	fmt.Fprintf(w, "Mode:       %s\n", sum.Mode)
	fmt.Fprintf(w, "Difficulty: %s\n", sum.Difficulty)
	fmt.Fprintf(w, "Seed:       %d\n", seed)
	fmt.Fprintf(w, "Outcome:    %s\n", sum.Outcome)
	fmt.Fprintf(w, "Ticks:      %d (%.1fs game time)\n", sum.Ticks, seconds)
	fmt.Fprintf(w, "Level:      %d\n", sum.Level)
	fmt.Fprintf(w, "Kills:      %d\n", sum.Kills)
	fmt.Fprintf(w, "Waves:      %d\n", sum.Waves)
	fmt.Fprintf(w, "Score:      %d\n", sum.Score)
}
