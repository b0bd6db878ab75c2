package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/achievements"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/events"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Left/H, Right/L  - Move piece
  Down/J           - Soft drop
  Up/K/X           - Rotate
  Space            - Hard drop
  +/-              - Adjust game speed
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower falling pieces
  normal - Standard speed
  hard   - Faster falling pieces

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --config ./my-blockfall.yaml
  blockfall play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	cfg.ResolveSeed()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		gameCfg = config.DefaultGameConfig()
	}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "blockfall"})

	bus := events.NewBus()
	game := engine.New(gameCfg, bus, cfg.Seed)
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		game.SetSpeedMultiplier(preset.SpeedMultiplier())
	}

	ach := achievements.NewEngine(store, logger, gameCfg.Notifications.Capacity)
	ach.Attach(bus)

	runErr := tui.Run(game, ach, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
