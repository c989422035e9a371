package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSQLiteStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteStoreTopFive(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	empty, err := store.HighScores()
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("new store should have no scores, got %v", empty)
	}

	var top []int
	for i, s := range []int{10, 30, 20, 5, 40, 25} {
		top, err = store.SaveRun(Run{Score: s, Ticks: 100 * (i + 1), Seed: 7})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	expected := []int{40, 30, 25, 20, 10}
	if !reflect.DeepEqual(top, expected) {
		t.Errorf("SaveRun() returned %v, expected %v", top, expected)
	}

	scores, err := store.HighScores()
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	if !reflect.DeepEqual(scores, expected) {
		t.Errorf("HighScores() = %v, expected %v", scores, expected)
	}
}

func TestSQLiteStoreHistoryAndStats(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || stats.Best != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(Run{Score: 4, Ticks: 300})
	store.SaveRun(Run{Score: 8, Ticks: 500})
	store.SaveRun(Run{Score: 0, Ticks: 40})

	history, err := store.History(10)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(history))
	}
	// Newest first
	if history[0].Score != 0 || history[0].Ticks != 40 {
		t.Errorf("newest run = %+v", history[0])
	}
	if history[0].ID == "" || history[0].ID == history[1].ID {
		t.Error("runs should get distinct ids")
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Best != 8 || stats.TotalTicks != 840 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %v, expected 4", stats.AvgScore)
	}
}
