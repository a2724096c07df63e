package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coinstorm/internal/config"
	"github.com/vovakirdan/coinstorm/internal/core"
	"github.com/vovakirdan/coinstorm/internal/platform/tui"
	"github.com/vovakirdan/coinstorm/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a play session in the current terminal.

Controls:
  Arrows/WASD - Steer the ship
  Mouse       - Steer toward the pointer
  B           - Open the upgrade shop
  P           - Pause
  R           - Restart the run (upgrades persist)
  Q/Ctrl+C    - Quit

Progress autosaves while you play, so quitting mid-run loses nothing.

Examples:
  coinstorm play
  coinstorm play --slot alice
  coinstorm play --config ./my-game.yaml
  coinstorm play --seed 42 --fps 30`,
	Run: runPlay,
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

	game, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load game config: %v\n", err)
		game = config.DefaultGame()
	}

	// Open save storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open saves database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, flagSlot, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
