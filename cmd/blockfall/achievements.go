package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/achievements"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Browse the achievement catalog",
	Long: `Open an interactive browser over the achievement catalog showing
which achievements you have unlocked and your progress toward the rest.

Examples:
  blockfall achievements`,
	Run: runAchievements,
}

func runAchievements(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "blockfall"})
	engine := achievements.NewEngine(store, logger, 0)

	if err := tui.RunAchievementsBrowser(engine, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
