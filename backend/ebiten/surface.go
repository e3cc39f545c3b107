// Package ebiten renders the backdrop into an ebiten window and feeds window
// input back into the particle field and the page.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Background is the page background color.
var Background = color.NRGBA{R: 10, G: 10, B: 18, A: 255}

// glowLayers is how many translucent rings approximate the blurred halo.
const glowLayers = 4

// Canvas is a field.Surface that can also draw the page chrome.
type Canvas interface {
	Size() (w, h float64)
	Clear()
	FillCircle(x, y, r float64, clr color.Color, glow float64)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color, opacity float64)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	DrawText(s string, x, y float64, clr color.Color)
}

// Surface draws onto the ebiten image it currently targets. The game
// retargets it to the screen image every frame.
type Surface struct {
	target *ebiten.Image
	width  float64
	height float64
	tint   func(color.Color) color.Color
}

// NewSurface creates a surface of the given pixel size with no target.
func NewSurface(width, height int) *Surface {
	return &Surface{width: float64(width), height: float64(height)}
}

// Target sets the image subsequent draw calls render into.
func (s *Surface) Target(img *ebiten.Image) {
	s.target = img
}

// SetSize records the size reported by the window layout.
func (s *Surface) SetSize(width, height int) {
	s.width = float64(width)
	s.height = float64(height)
}

// SetTint installs a filter applied to every color drawn. Nil removes it.
func (s *Surface) SetTint(tint func(color.Color) color.Color) {
	s.tint = tint
}

func (s *Surface) color(c color.Color) color.Color {
	if s.tint == nil {
		return c
	}
	return s.tint(c)
}

func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *Surface) Clear() {
	if s.target == nil {
		return
	}
	s.target.Fill(s.color(Background))
}

func (s *Surface) FillCircle(x, y, r float64, clr color.Color, glow float64) {
	if s.target == nil {
		return
	}
	c := color.NRGBAModel.Convert(s.color(clr)).(color.NRGBA)

	if glow > 0 {
		for i := glowLayers; i > 0; i-- {
			ring := c
			ring.A = uint8(float64(c.A) * 0.12 * float64(glowLayers-i+1) / glowLayers)
			radius := r + glow*float64(i)/glowLayers
			vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(radius), ring, true)
		}
	}
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(r), c, true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color, opacity float64) {
	if s.target == nil || opacity <= 0 {
		return
	}
	c := color.NRGBAModel.Convert(s.color(clr)).(color.NRGBA)
	c.A = uint8(float64(c.A) * min(opacity, 1))
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), s.color(clr), false)
}

func (s *Surface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeRect(s.target, float32(x), float32(y), float32(w), float32(h), float32(width), s.color(clr), false)
}

// DrawText draws s with its baseline at y.
func (s *Surface) DrawText(str string, x, y float64, clr color.Color) {
	if s.target == nil {
		return
	}
	text.Draw(s.target, str, basicfont.Face7x13, int(x), int(y), s.color(clr))
}

// TextWidth returns the advance of str in the HUD font.
func TextWidth(str string) float64 {
	return float64(len([]rune(str)) * basicfont.Face7x13.Advance)
}
