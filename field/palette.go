package field

import (
	"image/color"
	"math/rand/v2"
)

// Color is an entry of the fixed particle palette.
type Color uint8

const (
	Cyan Color = iota
	Magenta
	Purple
	Green
)

// Palette lists every particle color in declaration order.
var Palette = []Color{Cyan, Magenta, Purple, Green}

var paletteValues = [...]color.NRGBA{
	Cyan:    {R: 0, G: 240, B: 255, A: 204},
	Magenta: {R: 255, G: 0, B: 255, A: 153},
	Purple:  {R: 157, G: 0, B: 255, A: 178},
	Green:   {R: 57, G: 255, B: 20, A: 127},
}

var paletteNames = [...]string{
	Cyan:    "cyan",
	Magenta: "magenta",
	Purple:  "purple",
	Green:   "green",
}

// ConnectionColor is the stroke color used for lines between near-by particles.
var ConnectionColor = color.NRGBA{R: 0, G: 240, B: 255, A: 255}

// NRGBA returns the display value of the palette entry.
func (c Color) NRGBA() color.NRGBA {
	if int(c) >= len(paletteValues) {
		return paletteValues[Cyan]
	}
	return paletteValues[c]
}

func (c Color) String() string {
	if int(c) >= len(paletteNames) {
		return "unknown"
	}
	return paletteNames[c]
}

// RandomColor picks a palette entry uniformly.
func RandomColor(rng *rand.Rand) Color {
	return Palette[rng.IntN(len(Palette))]
}
