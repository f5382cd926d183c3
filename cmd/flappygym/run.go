package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-gym/internal/agent"
	"github.com/vovakirdan/flappy-gym/internal/env"
	"github.com/vovakirdan/flappy-gym/internal/platform/term"
	"github.com/vovakirdan/flappy-gym/internal/storage"
)

var (
	flagEpisodes int
	flagPolicy   string
	flagRender   bool
	flagMaxSteps int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run headless episodes with a built-in policy",
	Long: `Roll out one or more episodes driven by a built-in policy and
record the results.

Policies:
  random - Flaps with a fixed probability each tick
  seeker - Flaps when the bird drifts below the next gap

Examples:
  flappygym run --episodes 10 --policy seeker
  flappygym run --policy random --seed 7
  flappygym run --render --policy seeker    # Watch in the terminal`,
	Run: runRollouts,
}

func init() {
	runCmd.Flags().IntVar(&flagEpisodes, "episodes", 1, "Number of episodes to run")
	runCmd.Flags().StringVar(&flagPolicy, "policy", "random", "Policy: random or seeker")
	runCmd.Flags().BoolVar(&flagRender, "render", false, "Render episodes in the terminal")
	runCmd.Flags().IntVar(&flagMaxSteps, "max-steps", 100000, "Step cap per episode (0 = unlimited)")
}

func runRollouts(_ *cobra.Command, _ []string) {
	cfg := loadGameConfig()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappygym",
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	policy, err := agent.New(flagPolicy, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := []env.Option{}
	if flagRender {
		display, dispErr := term.Open(cfg.Screen.FPS)
		if dispErr != nil {
			fmt.Fprintf(os.Stderr, "Error opening display: %v\n", dispErr)
			os.Exit(1)
		}
		opts = append(opts, env.WithRenderMode(env.ModeHuman), env.WithDisplay(display))
	}

	e, err := env.New(cfg, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating environment: %v\n", err)
		os.Exit(1)
	}
	defer e.Close()

	store, storeErr := storage.Open(flagDBPath)
	if storeErr != nil {
		logger.Warn("episodes will not be recorded", "error", storeErr)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	for i := 0; i < flagEpisodes; i++ {
		episodeSeed := seed + int64(i)
		score, steps, totalReward, epErr := runEpisode(e, policy, episodeSeed)
		if epErr != nil {
			logger.Error("episode failed", "episode", i+1, "error", epErr)
			os.Exit(1)
		}

		logger.Info("episode finished",
			"episode", i+1,
			"policy", policy.Name(),
			"seed", episodeSeed,
			"score", score,
			"steps", steps,
			"reward", fmt.Sprintf("%.2f", totalReward),
		)

		if store != nil {
			//nolint:errcheck // Best-effort save
			store.SaveEpisode(storage.Episode{
				Seed:        episodeSeed,
				Policy:      policy.Name(),
				Score:       score,
				Steps:       steps,
				TotalReward: totalReward,
			})
		}
	}
}

// runEpisode plays one full episode and returns its outcome.
func runEpisode(e *env.Env, policy agent.Policy, seed int64) (score, steps int, totalReward float64, err error) {
	_, info, err := e.Reset(&env.ResetOptions{Seed: &seed})
	if err != nil {
		return 0, 0, 0, err
	}

	for {
		res, stepErr := e.Step(policy.Act(info))
		if stepErr != nil {
			return 0, 0, 0, stepErr
		}

		info = res.Info
		steps++
		totalReward += res.Reward

		if res.Terminated {
			return res.Info.Score, steps, totalReward, nil
		}
		if flagMaxSteps > 0 && steps >= flagMaxSteps {
			return res.Info.Score, steps, totalReward, nil
		}
	}
}
