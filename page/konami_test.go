package page_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/plus3/backdrop/page"
	"github.com/stretchr/testify/assert"
)

func TestKeySequence(t *testing.T) {
	t.Run("completes the konami code", func(t *testing.T) {
		seq := page.NewKeySequence(page.KonamiCode...)
		for i, key := range page.KonamiCode {
			done := seq.Press(key)
			assert.Equal(t, i == len(page.KonamiCode)-1, done, "key %d", i)
		}
		assert.Equal(t, 0, seq.Progress())
	})

	t.Run("wrong key resets", func(t *testing.T) {
		seq := page.NewKeySequence(page.KonamiCode...)
		seq.Press("ArrowUp")
		seq.Press("ArrowUp")
		assert.Equal(t, 2, seq.Progress())

		// A third ArrowUp does not continue the code and starts over.
		assert.False(t, seq.Press("ArrowUp"))
		assert.Equal(t, 0, seq.Progress())

		seq.Press("ArrowUp")
		assert.False(t, seq.Press("x"))
		assert.Equal(t, 0, seq.Progress())
	})

	t.Run("empty sequence never completes", func(t *testing.T) {
		seq := page.NewKeySequence()
		assert.False(t, seq.Press("a"))
	})
}

func TestEasterEgg(t *testing.T) {
	egg := page.NewEasterEgg()
	red := color.NRGBA{R: 255, A: 128}

	assert.False(t, egg.Active(t0))
	assert.Equal(t, red, egg.Tint(red, t0))

	egg.Activate(t0)
	assert.True(t, egg.Active(at(4999*time.Millisecond)))
	assert.False(t, egg.Active(at(5*time.Second)))

	assert.Equal(t, color.NRGBA{G: 255, B: 255, A: 128}, egg.Tint(red, t0))
	assert.Equal(t, red, egg.Tint(red, at(5*time.Second)))
}

func TestHueRotate(t *testing.T) {
	tests := []struct {
		name string
		in   color.NRGBA
		deg  float64
		want color.NRGBA
	}{
		{"red to cyan", color.NRGBA{R: 255, A: 255}, 180, color.NRGBA{G: 255, B: 255, A: 255}},
		{"green to red", color.NRGBA{G: 255, A: 10}, -120, color.NRGBA{R: 255, A: 10}},
		{"full turn", color.NRGBA{B: 255, A: 200}, 360, color.NRGBA{B: 255, A: 200}},
		{"gray has no hue", color.NRGBA{R: 128, G: 128, B: 128, A: 255}, 90, color.NRGBA{R: 128, G: 128, B: 128, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, page.HueRotate(tt.in, tt.deg))
		})
	}
}
