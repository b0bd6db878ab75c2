package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/achievements"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime play statistics",
	Long: `Display aggregate statistics over every game played, along with
a summary of achievement progress.

Examples:
  blockfall stats`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "blockfall"})
	engine := achievements.NewEngine(store, logger, 0)

	session := engine.Session()
	unlocked := len(engine.Unlocked())
	total := len(engine.Catalog())

	fmt.Println("Blockfall - Lifetime Statistics")
	fmt.Println()
	fmt.Printf("  Games played   %d\n", session.GamesPlayed)
	fmt.Printf("  Lines cleared  %d\n", session.TotalLines)
	fmt.Printf("  Tetrises       %d\n", session.TetrisCount)
	fmt.Printf("  Best combo     %d\n", session.MaxCombo)
	fmt.Printf("  Time played    %s\n", formatSeconds(session.TimePlayed))
	fmt.Println()
	fmt.Printf("  Achievements   %d/%d unlocked\n", unlocked, total)
}

// formatSeconds formats a second count as h:mm:ss or m:ss.
func formatSeconds(seconds int) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
