package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/achievements"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset achievements and statistics",
	Long: `Delete all unlocked achievements and lifetime statistics.
High scores are kept.

Requires --yes to actually perform the reset.

Examples:
  blockfall reset --yes`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Confirm the reset")
}

func runReset(_ *cobra.Command, _ []string) {
	if !flagResetYes {
		fmt.Println("This will delete all unlocked achievements and lifetime statistics.")
		fmt.Println("Re-run with --yes to confirm.")
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "blockfall"})
	engine := achievements.NewEngine(store, logger, 0)

	engine.ResetAll()
	fmt.Println("Achievements and statistics reset.")
}
