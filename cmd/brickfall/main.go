// brickfall is a falling-formation breakout for the terminal.
//
// Usage:
//
//	brickfall list               - List playable variants
//	brickfall play [variant]     - Play a variant (default: brickfall)
//	brickfall menu               - Pick variants interactively
//	brickfall serve              - Start SSH server for remote play
//	brickfall scores <variant>   - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.brickfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/brickfall/internal/games/brickfall"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickfall",
	Short: "Brickfall - break the descending wall before it reaches you",
	Long: `Brickfall is a breakout variant for the terminal. The block formation
creeps down on a timer and new rows keep arriving; broken blocks feed an
experience bar, and power-ups split the ball, enlarge it or widen the paddle.

Available commands:
  list     - Show all playable variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  brickfall play
  brickfall play brickfall_rush --difficulty hard
  brickfall menu
  brickfall serve --ssh :2222
  brickfall scores brickfall`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickfall/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
