package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-gym/internal/storage"
)

var (
	flagScoresPolicy string
	flagScoresLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded episode results",
	Long: `Display the top recorded episodes, ranked by score.

Examples:
  flappygym scores
  flappygym scores --policy seeker
  flappygym scores --limit 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPolicy, "policy", "", "Only show episodes from this policy")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of episodes to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening episodes database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var episodes []storage.Episode
	if flagScoresPolicy != "" {
		episodes, err = store.PolicyEpisodes(flagScoresPolicy, flagScoresLimit)
	} else {
		episodes, err = store.TopEpisodes(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving episodes: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Episodes")
	fmt.Println()

	if len(episodes) == 0 {
		fmt.Println("No episodes recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappygym play' or 'flappygym run' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %-10s  %s\n", "Rank", "Policy", "Score", "Steps", "Reward", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %-10s  %s\n", "----", "------", "-----", "-----", "------", "----")

	for i, ep := range episodes {
		dateStr := ep.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-6d  %-8d  %-10.2f  %s\n",
			i+1, ep.Policy, ep.Score, ep.Steps, ep.TotalReward, dateStr)
	}

	// Aggregate summary
	stats, statsErr := store.GetStats()
	if statsErr == nil && stats.Episodes > 0 {
		fmt.Println()
		fmt.Printf("Episodes: %d   Best: %d   Avg score: %.1f   Avg steps: %.0f\n",
			stats.Episodes, stats.HighScore, stats.AvgScore, stats.AvgSteps)
	}
}
