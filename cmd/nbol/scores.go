package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/nbol/internal/platform/tui"
	"github.com/vovakirdan/nbol/internal/registry"
	"github.com/vovakirdan/nbol/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresTUI        bool
	flagScoresLimit      int
	flagScoresRun        string
	flagScoresClear      bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show run history for a mode",
	Long: `Display the best recorded runs for the specified mode.

Examples:
  nbol scores arena
  nbol scores endless --difficulty hard
  nbol scores arena --tui
  nbol scores --run 01JAZ3K8Q0V5X2M7N9P4R6T8W1
  nbol scores arena --clear`,
	Args: cobra.RangeArgs(0, 1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show runs at this difficulty")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse runs interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show one run by its ID")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	if flagScoresRun != "" {
		store := openStoreOrExit()
		defer store.Close()
		if err := showRun(os.Stdout, store, flagScoresRun); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: a mode is required unless --run is given")
		fmt.Fprintln(os.Stderr, "Run 'nbol list' to see available modes.")
		os.Exit(1)
	}
	modeID := args[0]
	requireMode(modeID)
	if flagScoresDifficulty != "" && !validDifficulty(flagScoresDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagScoresDifficulty)
		os.Exit(1)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store := openStoreOrExit()
	defer store.Close()

	if flagScoresClear {
		if err := clearScores(os.Stdout, store, modeID); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height, modeID, flagScoresDifficulty); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(modeID, flagScoresDifficulty, flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'nbol play %s' to set the first high score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-3s  %-5s  %-5s  %-8s  %-8s  %-26s  %s\n",
		"Rank", "Score", "Lv", "Kills", "Waves", "Result", "Diff", "Run", "Date")
	fmt.Printf("  %-4s  %-7s  %-3s  %-5s  %-5s  %-8s  %-8s  %-26s  %s\n",
		"----", "-----", "--", "-----", "-----", "------", "----", "---", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-3d  %-5d  %-5d  %-8s  %-8s  %-26s  %s\n",
			i+1, r.Score, r.Level, r.Kills, r.Waves, r.Outcome, r.Difficulty, r.RunID,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(modeID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func openStoreOrExit() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// showRun prints one stored run. Unknown IDs return storage.ErrRunNotFound.
func showRun(w io.Writer, store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}

	fmt.Fprintf(w, "Run:        %s\n", r.RunID)
	fmt.Fprintf(w, "Mode:       %s\n", r.GameID)
	fmt.Fprintf(w, "Difficulty: %s\n", r.Difficulty)
	fmt.Fprintf(w, "Outcome:    %s\n", r.Outcome)
	fmt.Fprintf(w, "Score:      %d\n", r.Score)
	fmt.Fprintf(w, "Level:      %d\n", r.Level)
	fmt.Fprintf(w, "Kills:      %d\n", r.Kills)
	fmt.Fprintf(w, "Waves:      %d\n", r.Waves)
	fmt.Fprintf(w, "Ticks:      %d\n", r.Ticks)
	fmt.Fprintf(w, "Date:       %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

// clearScores wipes a mode's history and reports how much was removed.
func clearScores(w io.Writer, store *storage.Store, modeID string) error {
	n, err := store.ClearScores(modeID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d runs for %s.\n", n, modeID)
	return nil
}
