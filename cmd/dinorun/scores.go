package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dinorun/internal/storage"
)

var flagHistory int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high scores",
	Long: `Display the top five scores.

With the sqlite store, --history also lists the most recent runs and
a summary of every run recorded.

Examples:
  dinorun scores
  dinorun scores --store sqlite --history 10`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagHistory, "history", 0, "Also list this many recent runs (sqlite store only)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := openStore()
	if err != nil {
		fatal("cannot open score store: %v", err)
	}
	defer store.Close()

	scores, err := store.HighScores()
	if err != nil {
		store.Close()
		fatal("cannot read scores: %v", err)
	}

	fmt.Println("High Scores - Dino Runner")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dinorun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %s\n", "Rank", "Score")
	fmt.Printf("  %-4s  %s\n", "----", "-----")
	for i, s := range scores {
		fmt.Printf("  %-4d  %d\n", i+1, s)
	}

	if flagHistory <= 0 {
		return
	}
	sq, ok := store.(*storage.SQLiteStore)
	if !ok {
		fmt.Println()
		fmt.Printf("Run history needs --store sqlite (using %s).\n", flagStore)
		return
	}

	runs, err := sq.History(flagHistory)
	if err != nil {
		store.Close()
		fatal("cannot read history: %v", err)
	}
	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Printf("  %-16s  %-6s  %-6s  %s\n", "Date", "Score", "Ticks", "Seed")
	fmt.Printf("  %-16s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-6d  %-6d  %d\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Ticks, r.Seed)
	}

	if stats, err := sq.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Avg: %.1f  Last played: %s\n",
			stats.Runs, stats.Best, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
