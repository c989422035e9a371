package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/storage"
)

// loadConfig reads dino.yaml and applies --fps and --difficulty.
func loadConfig() (config.DinoConfig, error) {
	cfg, err := config.LoadDino(flagConfig)
	if err != nil {
		return config.DinoConfig{}, err
	}
	if flagFPS > 0 {
		cfg.World.TickRate = flagFPS
	}
	if flagDifficulty != "" {
		if err := config.ApplyDinoPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
			return config.DinoConfig{}, err
		}
	}
	return cfg, nil
}

// runtimeConfig sizes the session to the terminal.
func runtimeConfig(cfg config.DinoConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.World.TickRate,
		Seed:     flagSeed,
	}
}

func openStore() (storage.Store, error) {
	return storage.Open(storage.Backend(flagStore), flagScores)
}

// newLogger builds the process logger. Full-screen front ends own the
// terminal, so they log to ~/.dinorun/dinorun.log instead of stderr.
// The returned func closes the log file.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		dir := filepath.Join(home, ".dinorun")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
		}
		f, err := os.OpenFile(filepath.Join(dir, "dinorun.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dinorun",
		Level:           level,
	})
	return logger, closeFn, nil
}

// fatal prints an error and exits.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
