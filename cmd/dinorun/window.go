package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/games/dino"
	"github.com/vovakirdan/dinorun/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x400 window and play there.

Controls are the same as in the terminal; Esc or Q closes the window.

Examples:
  dinorun window
  dinorun window --difficulty easy --store gdata`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := dino.New(cfg, saverFor(store))
	rt := core.RuntimeConfig{
		ScreenW:  int(cfg.World.Width),
		ScreenH:  int(cfg.World.Height),
		TickRate: cfg.World.TickRate,
		Seed:     flagSeed,
	}

	if err := window.Run(game, rt, cfg.World.Width, cfg.World.Height, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
