package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickfall/internal/audio"
	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/brickfall"
	"github.com/vovakirdan/brickfall/internal/platform/tui"
	"github.com/vovakirdan/brickfall/internal/registry"
	"github.com/vovakirdan/brickfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagLogPath    string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a brickfall round. Without an argument the classic variant runs.

Controls:
  A/D, Left/Right  - Move paddle
  Enter/Space      - Continue after a level-up
  P                - Pause
  R                - Restart (after the round ends)
  Esc/B            - Leave (when paused or finished)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Wider paddle, slower descent, curve starts at 0%
  normal - Reference tuning, curve starts at 30%
  hard   - Narrower paddle, tougher blocks, curve starts at 70%
  fixed  - No difficulty curve

Examples:
  brickfall play
  brickfall play brickfall_rush
  brickfall play --difficulty hard --sound
  brickfall play --config ./my-brickfall.yaml --log /tmp/brickfall.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom brickfall config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	cmd.Flags().StringVar(&flagLogPath, "log", "", "Write game logs to this file")
}

// setupGame applies the shared game flags. The returned func releases the
// log file and the audio device.
func setupGame() (func(), error) {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return nil, err
		}
	}
	brickfall.SetConfigPath(flagConfig)
	brickfall.SetDifficultyPreset(flagDifficulty)

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	// The TUI owns the terminal, so logs only go to a file.
	var logger *log.Logger
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		cleanups = append(cleanups, func() { f.Close() })
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "brickfall",
		})
		brickfall.SetLogger(logger)
	}

	if flagSound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Playing silently beats not playing
			if logger != nil {
				logger.Warn("sound disabled", "error", err)
			}
		} else {
			brickfall.SetAudio(sm)
			cleanups = append(cleanups, sm.Cleanup)
		}
	}

	return cleanup, nil
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "brickfall"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'brickfall list' to see available variants)", gameID)
	}

	cleanup, err := setupGame()
	if err != nil {
		return err
	}
	defer cleanup()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the round still plays
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
