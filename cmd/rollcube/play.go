package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmvolkov/rollcube/internal/core"
	"github.com/dmvolkov/rollcube/internal/games/rollcube"
	"github.com/dmvolkov/rollcube/internal/platform/tui"
	"github.com/dmvolkov/rollcube/internal/registry"
	"github.com/dmvolkov/rollcube/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a puzzle in the current terminal.

Controls:
  Arrows/WASD  - Roll the cube
  Mouse click  - Roll toward the clicked cell
  N/R          - New puzzle
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Preset options:
  casual    - 4x4 board
  standard  - 5x5 board
  expert    - 6x6 board

Examples:
  rollcube play
  rollcube play --preset expert
  rollcube play --size 7
  rollcube play --seed 42
  rollcube play --config ./my-rollcube.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: casual, standard, expert")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Side:    flagSize,
	}

	// Set config path and preset before creation
	rollcube.SetConfigPath(flagConfig)
	rollcube.SetPreset(flagPreset)

	game, err := registry.Create("rollcube")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
