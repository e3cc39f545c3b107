// Package term renders the backdrop in a terminal with tcell. Every cell
// stands for a block of CellWidth x CellHeight pixels, so the field keeps
// working in pixel units.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Background is the terminal background color.
var Background = color.NRGBA{R: 10, G: 10, B: 18, A: 255}

// Surface draws into a tcell screen.
type Surface struct {
	screen     tcell.Screen
	CellWidth  float64
	CellHeight float64
	background colorful.Color
}

// NewSurface creates a surface over screen where each cell covers cellW by
// cellH pixels.
func NewSurface(screen tcell.Screen, cellW, cellH float64) *Surface {
	bg, _ := colorful.MakeColor(Background)
	return &Surface{
		screen:     screen,
		CellWidth:  cellW,
		CellHeight: cellH,
		background: bg,
	}
}

func (s *Surface) Size() (float64, float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.CellWidth, float64(rows) * s.CellHeight
}

func (s *Surface) Clear() {
	s.screen.Fill(' ', s.style(Background, 1))
}

// Cell converts a pixel position to the cell containing it.
func (s *Surface) Cell(x, y float64) (int, int) {
	return int(math.Floor(x / s.CellWidth)), int(math.Floor(y / s.CellHeight))
}

// blend mixes clr over the background at its own alpha scaled by opacity.
func (s *Surface) blend(clr color.Color, opacity float64) colorful.Color {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	c, ok := colorful.MakeColor(color.NRGBA{R: n.R, G: n.G, B: n.B, A: 255})
	if !ok {
		return s.background
	}
	t := float64(n.A) / 255 * math.Max(0, math.Min(opacity, 1))
	return s.background.BlendRgb(c, t).Clamped()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (s *Surface) style(clr color.Color, opacity float64) tcell.Style {
	bg := toTcell(s.background)
	return tcell.StyleDefault.Background(bg).Foreground(toTcell(s.blend(clr, opacity)))
}

// particleRune picks a glyph by pixel radius.
func particleRune(r float64) rune {
	switch {
	case r < 1.5:
		return '·'
	case r < 2.5:
		return '•'
	default:
		return '●'
	}
}

func isParticleRune(r rune) bool {
	return r == '·' || r == '•' || r == '●'
}

func (s *Surface) inside(cx, cy int) bool {
	cols, rows := s.screen.Size()
	return cx >= 0 && cy >= 0 && cx < cols && cy < rows
}

// FillCircle marks the cell under the center. A glow tints the cell
// background with the particle color.
func (s *Surface) FillCircle(x, y, r float64, clr color.Color, glow float64) {
	cx, cy := s.Cell(x, y)
	if !s.inside(cx, cy) {
		return
	}
	style := s.style(clr, 1)
	if glow > 0 {
		style = style.Background(toTcell(s.blend(clr, 0.25)))
	}
	s.screen.SetContent(cx, cy, particleRune(r), nil, style)
}

// StrokeLine walks the cells between both ends. Cells holding a particle
// are left alone.
func (s *Surface) StrokeLine(x0, y0, x1, y1, _ float64, clr color.Color, opacity float64) {
	if opacity <= 0 {
		return
	}
	style := s.style(clr, opacity)
	glyph := lineRune(x1-x0, y1-y0)

	cx0, cy0 := s.Cell(x0, y0)
	cx1, cy1 := s.Cell(x1, y1)
	steps := max(abs(cx1-cx0), abs(cy1-cy0))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		cx := cx0 + int(math.Round(t*float64(cx1-cx0)))
		cy := cy0 + int(math.Round(t*float64(cy1-cy0)))
		if !s.inside(cx, cy) {
			continue
		}
		if current, _, _, _ := s.screen.GetContent(cx, cy); isParticleRune(current) {
			continue
		}
		s.screen.SetContent(cx, cy, glyph, nil, style)
	}
}

// DrawText writes str starting at pixel (x, y).
func (s *Surface) DrawText(str string, x, y float64, clr color.Color) {
	cx, cy := s.Cell(x, y)
	style := s.style(clr, 1)
	for _, r := range str {
		if s.inside(cx, cy) {
			s.screen.SetContent(cx, cy, r, nil, style)
		}
		cx++
	}
}

// lineRune picks a box-drawing glyph for a line of direction (dx, dy).
// Screen y grows downwards.
func lineRune(dx, dy float64) rune {
	angle := math.Abs(math.Atan2(dy, dx)) * 180 / math.Pi
	if angle > 90 {
		angle = 180 - angle
	}
	switch {
	case angle < 22.5:
		return '─'
	case angle > 67.5:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
