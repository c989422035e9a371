package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dinorun/internal/games/dino"
	"github.com/vovakirdan/dinorun/internal/platform/tui"
	"github.com/vovakirdan/dinorun/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Up/W/Space - Jump
  Down/S     - Descend quickly
  P          - Pause
  R          - Restart (on the game over screen)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options set how much faster each obstacle is than the base speed:
  easy   - +3
  normal - +5 (default)
  hard   - +8

Examples:
  dinorun play
  dinorun play --difficulty hard
  dinorun play --seed 42 --store sqlite
  dinorun play --config ./my-dino.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	// Open score storage
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		logger.Warn("playing without a score store", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := dino.New(cfg, saverFor(store))
	rt := runtimeConfig(cfg)
	logger.Info("starting run", "store", flagStore, "difficulty", flagDifficulty, "seed", rt.Seed)

	if err := tui.Run(game, rt, cfg.World.Width, cfg.World.Height, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}

// saverFor keeps a nil store a nil interface.
func saverFor(store storage.Store) dino.ScoreSaver {
	if store == nil {
		return nil
	}
	return store
}
