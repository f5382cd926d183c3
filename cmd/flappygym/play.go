package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-gym/internal/env"
	"github.com/vovakirdan/flappy-gym/internal/platform/tui"
	"github.com/vovakirdan/flappy-gym/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game interactively",
	Long: `Start an interactive game session in your terminal.

Controls:
  Space/Up/W - Flap
  R          - Restart (after game over)
  Ctrl+S     - Save a PNG screenshot
  Q/Ctrl+C   - Quit

Examples:
  flappygym play
  flappygym play --seed 42
  flappygym play --config ./my-flappy.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play requires a terminal")
		fmt.Fprintln(os.Stderr, "Use 'flappygym run' for headless episodes.")
		os.Exit(1)
	}

	cfg := loadGameConfig()

	e, err := env.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating environment: %v\n", err)
		os.Exit(1)
	}
	defer e.Close()

	// Episode results are recorded best-effort; play works without a
	// database.
	store, storeErr := storage.Open(flagDBPath)
	if storeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: episodes will not be recorded: %v\n", storeErr)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(e, store, cfg, flagSeed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
