package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmvolkov/rollcube/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best results",
	Long: `Display the top 10 results, ranked by fewest moves to solve.

Use --size to restrict the table to boards of one side length.

Examples:
  rollcube scores
  rollcube scores --size 6`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.BestResults("rollcube", flagSize, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	if flagSize > 0 {
		fmt.Printf("Best Results - Rollcube (%dx%d)\n", flagSize, flagSize)
	} else {
		fmt.Println("Best Results - Rollcube")
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rollcube play' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "Rank", "Moves", "Board", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range results {
		board := fmt.Sprintf("%dx%d", entry.Side, entry.Side)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6s  %-5ds  %s\n", i+1, entry.Moves, board, entry.Duration, dateStr)
	}

	fmt.Println()
	if best, bestErr := store.BestMoves("rollcube", flagSize); bestErr == nil {
		fmt.Printf("Best: %d moves\n", best)
	}
	if solved, countErr := store.SolvedCount("rollcube"); countErr == nil {
		fmt.Printf("Total solves: %d\n", solved)
	}
}
