// blockfall is a terminal falling-block puzzle game.
//
// Usage:
//
//	blockfall play           - Play the game
//	blockfall achievements   - Browse the achievement catalog
//	blockfall scores         - Show high scores
//	blockfall stats          - Show lifetime play statistics
//	blockfall serve          - Start SSH server for remote play
//	blockfall reset          - Reset achievements and statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockfall/blockfall.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "blockfall",
	Short: "Blockfall - falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game with levels,
combos, and an achievement system.

Available commands:
  play          - Start a game
  achievements  - Browse the achievement catalog and your progress
  scores        - View high scores
  stats         - View lifetime play statistics
  serve         - Start SSH server for remote play
  reset         - Reset achievements and statistics

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall achievements
  blockfall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/blockfall.db", "Path to database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}
