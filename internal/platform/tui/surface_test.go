package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dinorun/internal/config"
	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/games/dino"
)

// 80x20 cells over an 800x400 world: 10 x 20 world units per cell.
func newTestSurface() (*core.Screen, *CellSurface) {
	screen := core.NewScreen(80, 20)
	return screen, NewCellSurface(screen, 800, 400)
}

func TestCellSurfaceFillRect(t *testing.T) {
	screen, s := newTestSurface()
	s.Clear(core.ColorWhite)
	s.FillRect(core.NewRect(50, 320, 40, 60), core.ColorBlack)

	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			inside := x >= 5 && x < 9 && y >= 16 && y < 19
			got := screen.Get(x, y) == FillChar
			if got != inside {
				t.Fatalf("cell (%d,%d) filled = %v, expected %v", x, y, got, inside)
			}
		}
	}
	if c := screen.GetCell(5, 16).Color; c != core.ColorDefault {
		t.Errorf("black should map to the terminal foreground, got %v", c)
	}
}

func TestCellSurfaceThinRectIsLine(t *testing.T) {
	screen, s := newTestSurface()
	s.FillRect(core.NewRect(0, 380, 800, 2), core.ColorGray)

	if screen.Get(0, 19) != LineChar || screen.Get(79, 19) != LineChar {
		t.Errorf("ground row = %q", screen.Row(19))
	}
	if c := screen.GetCell(40, 19).Color; c != core.ColorGray {
		t.Errorf("ground color = %v", c)
	}
}

func TestCellSurfacePolygon(t *testing.T) {
	screen, s := newTestSurface()
	tri := []core.Point{{X: 100, Y: 200}, {X: 115, Y: 140}, {X: 130, Y: 200}}
	s.FillPolygon(tri, core.ColorRed)

	if cell := screen.GetCell(11, 8); cell.Rune != FillChar || cell.Color != core.ColorRed {
		t.Errorf("triangle interior cell = %+v", cell)
	}
	if screen.Get(10, 7) != ' ' {
		t.Error("cell outside the triangle was filled")
	}

	// Smaller than a cell: still visible
	screen.Clear()
	s.FillPolygon([]core.Point{{X: 301, Y: 101}, {X: 303, Y: 101}, {X: 302, Y: 103}}, core.ColorBlue)
	if screen.Get(30, 5) != FillChar {
		t.Errorf("tiny polygon not drawn, row = %q", screen.Row(5))
	}
}

func TestCellSurfaceText(t *testing.T) {
	screen, s := newTestSurface()
	s.DrawText(10, 10, "Score: 3", core.ColorBlack)

	if !strings.HasPrefix(screen.Row(0)[1:], "Score: 3") {
		t.Errorf("row 0 = %q", screen.Row(0))
	}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDescend, false},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause, false},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart, false},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey() = %v, %v; expected %v, %v", action, quit, tc.action, tc.quit)
			}

			frame := core.NewInputFrame()
			quit = km.MapKeyToFrame(tc.msg, &frame)
			if quit != tc.quit {
				t.Errorf("MapKeyToFrame() quit = %v", quit)
			}
			if !tc.quit && !frame.Has(core.ActionAnyKey) {
				t.Error("every non-quit key should count as any key")
			}
		})
	}
}

func TestModelStartsOnKeyAndQuits(t *testing.T) {
	game := dino.New(config.DefaultDinoConfig(), nil)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 20, TickRate: 30, Seed: 9}
	m := NewModel(game, cfg, 800, 400, nil)
	m.Init()

	next, _ := m.Update(TickMsg{})
	m = next.(Model)
	if m.gameState.Phase != core.PhaseInstructions {
		t.Fatalf("phase = %v, expected instructions", m.gameState.Phase)
	}
	if !strings.Contains(m.View(), "Press any key to start.") {
		t.Error("instructions not rendered")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = next.(Model)
	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if m.gameState.Phase != core.PhasePlaying {
		t.Fatalf("phase = %v, expected playing", m.gameState.Phase)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
}
