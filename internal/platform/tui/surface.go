package tui

import (
	"math"

	"github.com/vovakirdan/dinorun/internal/core"
)

// Visual characters for rasterized shapes
const (
	FillChar = '█'
	LineChar = '─'
)

// ellipseSegments is the vertex count used to rasterize ellipses.
const ellipseSegments = 24

// CellSurface rasterizes world-space draw commands into a Screen.
// The world is stretched to cover the whole screen.
type CellSurface struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

// NewCellSurface creates a surface mapping a worldW x worldH world onto screen.
func NewCellSurface(screen *core.Screen, worldW, worldH float64) *CellSurface {
	return &CellSurface{screen: screen, worldW: worldW, worldH: worldH}
}

// scale returns world units per cell on each axis.
func (s *CellSurface) scale() (sx, sy float64) {
	w, h := s.screen.Width(), s.screen.Height()
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	return s.worldW / float64(w), s.worldH / float64(h)
}

// cellSpan converts a world interval [from, to) into cell indices [c0, c1).
// A non-empty interval always covers at least one cell.
func cellSpan(from, to, unit float64) (c0, c1 int) {
	c0 = int(math.Floor(from / unit))
	c1 = int(math.Ceil(to / unit))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1
}

// ink maps world colors to terminal colors. Black and white become the
// terminal's own foreground and background.
func ink(c core.Color) core.Color {
	switch c {
	case core.ColorBlack, core.ColorWhite:
		return core.ColorDefault
	}
	return c
}

// Clear blanks the screen. The terminal background stands in for bg.
func (s *CellSurface) Clear(bg core.Color) {
	s.screen.Fill(core.Cell{Rune: ' ', Color: ink(bg)})
}

// FillRect fills every cell the rectangle touches. Rectangles thinner than
// half a row are drawn as a line.
func (s *CellSurface) FillRect(r core.Rect, c core.Color) {
	sx, sy := s.scale()
	x0, x1 := cellSpan(r.X, r.Right(), sx)
	y0, y1 := cellSpan(r.Y, r.Bottom(), sy)

	ch := FillChar
	if r.H < sy/2 {
		ch = LineChar
	}
	cell := core.Cell{Rune: ch, Color: ink(c)}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetCell(x, y, cell)
		}
	}
}

func (s *CellSurface) FillEllipse(r core.Rect, c core.Color) {
	s.FillPolygon(core.EllipsePoints(r, ellipseSegments), c)
}

// FillPolygon fills the cells whose centers lie inside the polygon. A polygon
// too small to cover any cell center still marks the cell under its center.
func (s *CellSurface) FillPolygon(pts []core.Point, c core.Color) {
	if len(pts) < 3 {
		return
	}
	sx, sy := s.scale()
	b := core.PolygonBounds(pts)
	x0, x1 := cellSpan(b.X, b.Right(), sx)
	y0, y1 := cellSpan(b.Y, b.Bottom(), sy)

	cell := core.Cell{Rune: FillChar, Color: ink(c)}
	filled := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cx, cy := (float64(x)+0.5)*sx, (float64(y)+0.5)*sy
			if core.PolygonContains(pts, cx, cy) {
				s.screen.SetCell(x, y, cell)
				filled = true
			}
		}
	}
	if !filled {
		center := b.Center()
		s.screen.SetCell(int(center.X/sx), int(center.Y/sy), cell)
	}
}

// DrawText places text at the cell containing (x, y).
func (s *CellSurface) DrawText(x, y float64, text string, c core.Color) {
	sx, sy := s.scale()
	s.screen.DrawText(int(x/sx), int(y/sy), text, ink(c))
}
