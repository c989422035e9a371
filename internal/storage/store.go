// Package storage persists the bounded top-5 high-score list.
//
// Three backends share one contract: a plain text file (the default), a SQLite
// database that also keeps the full run history, and the per-user application
// data directory managed by gdata.
package storage

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// MaxEntries is the number of high scores kept.
const MaxEntries = 5

// Run describes one finished session.
type Run struct {
	Score int   // Obstacles cleared
	Ticks int   // Ticks survived
	Seed  int64 // RNG seed of the session
}

// Store persists high scores. Each call opens, reads or writes, and releases its
// backing resource; no partial write is ever visible to a later HighScores call.
type Store interface {
	// HighScores returns at most MaxEntries scores sorted descending.
	// A store that has never been written returns an empty list.
	HighScores() ([]int, error)
	// SaveRun merges the run's score into the list and returns the new top list.
	SaveRun(run Run) ([]int, error)
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendGdata  Backend = "gdata"
)

// DefaultPath returns the default location for a backend.
// For gdata the "path" is the application name.
func DefaultPath(b Backend) string {
	switch b {
	case BackendSQLite:
		return "~/.dinorun/scores.db"
	case BackendGdata:
		return "dinorun"
	default:
		return "~/.dinorun/high_scores.txt"
	}
}

// Open creates the store for the given backend. An empty path selects DefaultPath.
func Open(b Backend, path string) (Store, error) {
	if path == "" {
		path = DefaultPath(b)
	}
	switch b {
	case BackendFile, "":
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendGdata:
		return OpenData(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", b)
	}
}

// Merge adds score to scores and returns a new list sorted descending and
// truncated to MaxEntries. The input slice is not modified.
func Merge(scores []int, score int) []int {
	merged := make([]int, 0, len(scores)+1)
	merged = append(merged, scores...)
	merged = append(merged, score)
	return Top(merged)
}

// Top sorts scores descending in place and returns at most MaxEntries of them.
func Top(scores []int) []int {
	slices.SortFunc(scores, func(a, b int) int { return cmp.Compare(b, a) })
	if len(scores) > MaxEntries {
		scores = scores[:MaxEntries]
	}
	return scores
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
