// rollcube is a terminal puzzle about rolling a cube across a board to
// collect paint on all six of its faces.
//
// Usage:
//
//	rollcube play            - Play in the current terminal
//	rollcube serve           - Start SSH server for remote play
//	rollcube scores          - Show best results
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible puzzles
//	--size <n>      - Board side length (must be greater than 2)
//	--db <path>     - Set database path (default: ~/.rollcube/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/dmvolkov/rollcube/internal/games/rollcube"
)

var (
	// Global flags
	flagSeed   int64
	flagSize   int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rollcube",
	Short: "Roll a cube across the board until every face is painted",
	Long: `Rollcube is a terminal puzzle. A cube sits on a square board where some
cells carry paint. Rolling the cube onto a painted cell transfers the
paint to the face that lands on it; rolling a painted face onto a blank
cell leaves the paint behind. Solve the puzzle by getting paint on all
six faces.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View best results

Examples:
  rollcube play
  rollcube play --size 6 --preset expert
  rollcube play --seed 42
  rollcube serve --ssh :2222
  rollcube scores --size 4`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board side length (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rollcube/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
