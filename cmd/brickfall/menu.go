package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickfall/internal/platform/tui"
	"github.com/vovakirdan/brickfall/internal/registry"
	"github.com/vovakirdan/brickfall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants and difficulty from a menu",
	Long: `Start brickfall in interactive menu mode.

Use arrow keys or j/k to pick a variant and left/right to pick the
difficulty. --difficulty sets the starting choice. After a round you return
to the menu with the same variant and difficulty selected.

Controls:
  Up/Down/j/k     - Navigate
  Left/Right      - Change difficulty
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit

Examples:
  brickfall menu
  brickfall menu --fps 30 --sound`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	cleanup, err := setupGame()
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	last := tui.MenuResult{Difficulty: flagDifficulty}
	for {
		result, err := tui.RunMenu(store, cfg, last)
		if err != nil {
			return err
		}
		cfg = result.Config
		last = result

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if t, ok := game.(registry.Tunable); ok {
			//nolint:errcheck // menu only offers known presets
			t.SetPreset(result.Difficulty)
		}

		// Fresh seed per round unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
