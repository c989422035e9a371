package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dinorun/internal/core"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

const (
	ellipseSegments = 32
	maxCachedTexts  = 256
)

// Surface draws world-space commands onto an ebiten image.
type Surface struct {
	dst   *ebiten.Image
	white *ebiten.Image
	texts map[string]*ebiten.Image // Rendered debug text, white on transparent
}

// NewSurface creates a surface drawing onto dst.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst, texts: make(map[string]*ebiten.Image)}
}

func (s *Surface) Clear(bg core.Color) {
	s.dst.Fill(rgba(bg))
}

func (s *Surface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(c), false)
}

func (s *Surface) FillEllipse(r core.Rect, c core.Color) {
	s.FillPolygon(core.EllipsePoints(r, ellipseSegments), c)
}

// FillPolygon fills a convex polygon as a triangle fan.
func (s *Surface) FillPolygon(pts []core.Point, c core.Color) {
	if len(pts) < 3 {
		return
	}
	if s.white == nil {
		s.white = ebiten.NewImage(1, 1)
		s.white.Fill(color.White)
	}

	col := rgba(c)
	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			ColorR: float32(col.R) / 255,
			ColorG: float32(col.G) / 255,
			ColorB: float32(col.B) / 255,
			ColorA: float32(col.A) / 255,
		}
	}
	indices := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}

	s.dst.DrawTriangles(vertices, indices, s.white, &ebiten.DrawTrianglesOptions{})
}

// DrawText draws text with the debug font, scaled and tinted.
func (s *Surface) DrawText(x, y float64, text string, c core.Color) {
	img, ok := s.texts[text]
	if !ok {
		if len(s.texts) >= maxCachedTexts {
			for k, v := range s.texts {
				v.Deallocate()
				delete(s.texts, k)
			}
		}
		img = ebiten.NewImage(len(text)*glyphW+1, glyphH)
		ebitenutil.DebugPrintAt(img, text, 0, 0)
		s.texts[text] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(c))
	s.dst.DrawImage(img, op)
}
