// flappygym is a Flappy Bird reinforcement-learning environment you can
// play in the terminal, roll out headless with built-in policies, or
// serve over SSH.
//
// Usage:
//
//	flappygym play          - Play interactively in the terminal
//	flappygym run           - Run headless episodes with a policy
//	flappygym scores        - Show recorded episode results
//	flappygym serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Frame rate for interactive play (default: 60)
//	--seed <value>  - RNG seed for reproducible episodes (0 = time-based)
//	--db <path>     - Episodes database path (default: ~/.flappygym/episodes.db)
//	--config <path> - Custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-gym/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappygym",
	Short: "Flappy Bird as a playable RL environment",
	Long: `flappygym is a Flappy Bird simulation exposed as a
reinforcement-learning environment with pixel observations.

Available commands:
  play     - Play the game interactively in your terminal
  run      - Run headless episodes with a built-in policy
  scores   - View recorded episode results
  serve    - Start SSH server for remote play

Examples:
  flappygym play
  flappygym run --episodes 10 --policy seeker
  flappygym run --render --policy random
  flappygym scores
  flappygym serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate for interactive play")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappygym/episodes.db", "Path to episodes database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the game config honoring the --config and --fps
// flags, exiting on error since no command can proceed without one.
func loadGameConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Screen.FPS = flagFPS
	}
	return cfg
}
