package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nbol/internal/config"
	"github.com/vovakirdan/nbol/internal/games/nbol"
)

var (
	flagShowConfig     string
	flagShowDifficulty string
	flagShowDefaults   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration new games start with, as YAML.

The file is looked up in this order: --config, ~/.nbol/configs/nbol.yaml,
./configs/nbol.yaml, then built-in defaults. The difficulty preset is applied on top.
Redirect the output to start a custom config file.

Examples:
  nbol config
  nbol config --difficulty hard
  nbol config --defaults > my-arena.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagShowConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagShowDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagShowDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	applyGameFlags(flagShowConfig, flagShowDifficulty)
	cfg, err := nbol.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# difficulty: %s\n", nbol.DifficultyPreset())
	os.Stdout.Write(data)
}
