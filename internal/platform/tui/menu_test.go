package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
)

func TestMenuSelectsPreset(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected config.DifficultyPreset
	}{
		{"default is normal", nil, config.DifficultyNormal},
		{"up picks easy", []tea.KeyMsg{{Type: tea.KeyUp}}, config.DifficultyEasy},
		{"down picks hard", []tea.KeyMsg{{Type: tea.KeyDown}}, config.DifficultyHard},
		{"cursor stops at the end", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}}, config.DifficultyHard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(core.DefaultConfig())
			for _, k := range tc.keys {
				next, _ := m.Update(k)
				m = next.(MenuModel)
			}
			next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			m = next.(MenuModel)

			if m.Selected() == nil {
				t.Fatal("enter should select an item")
			}
			if m.Selected().Preset != tc.expected {
				t.Errorf("selected %q, expected %q", m.Selected().Preset, tc.expected)
			}
			if cmd == nil {
				t.Error("selecting should end the menu program")
			}
		})
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit the menu")
	}
}

func TestDefaultMenuItemsShowIncrement(t *testing.T) {
	items := DefaultMenuItems()
	if len(items) != 3 {
		t.Fatalf("got %d items, expected 3", len(items))
	}
	if items[2].Title != "Hard" || items[2].Hint != "speed +8" {
		t.Errorf("hard item = %+v", items[2])
	}
}

type fixedScores []int

func (f fixedScores) HighScores() ([]int, error) { return f, nil }

func TestScoreboardRows(t *testing.T) {
	m := NewScoreboardModel(fixedScores{40, 30, 25}, 80, 24)
	if len(m.rows) != 3 {
		t.Fatalf("got %d rows, expected 3", len(m.rows))
	}
	if m.rows[0][0] != "#1" || m.rows[0][1] != "40" {
		t.Errorf("first row = %v", m.rows[0])
	}

	// Tab is ignored without run history
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if next.(ScoreboardModel).tab != tabTop {
		t.Error("tab switched without a history source")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}
