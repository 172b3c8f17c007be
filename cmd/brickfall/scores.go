package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfall/internal/registry"
	"github.com/vovakirdan/brickfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top high scores for a variant, ranked by score and then by
level reached. Without a variant, print a summary line per variant.

Examples:
  brickfall scores
  brickfall scores brickfall
  brickfall scores brickfall_rush --limit 0   # every round
  brickfall scores brickfall --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickfall list' to see available variants.")
		return
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	var scores []storage.ScoreEntry
	if flagScoresLimit > 0 {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'brickfall play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-6s  %s\n",
			i+1, entry.Score, entry.Level, entry.Outcome, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Cleared: %d  Best level: %d\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.BestLevel)
	}
}

// printSummary prints one line per variant that has rounds on record.
func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-6s  %-7s  %-6s  %-5s  %s\n", "Variant", "Rounds", "Cleared", "Best", "Level", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-16s  %-6d  %-7d  %-6d  %-5d  %s\n",
			id, s.GamesCount, s.Wins, s.HighScore, s.BestLevel, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
