package page

import (
	"image/color"
	"math"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// KonamiCode is the key sequence that unlocks the easter egg.
var KonamiCode = []string{
	"ArrowUp", "ArrowUp",
	"ArrowDown", "ArrowDown",
	"ArrowLeft", "ArrowRight",
	"ArrowLeft", "ArrowRight",
	"b", "a",
}

// EasterEggMessage is shown when the konami code is entered.
const EasterEggMessage = "Cheat code activated! Matrix mode enabled."

// KeySequence detects a fixed sequence of key presses. Any key that does not
// continue the sequence starts it over.
type KeySequence struct {
	keys  []string
	index int
}

// NewKeySequence creates a detector for keys.
func NewKeySequence(keys ...string) *KeySequence {
	return &KeySequence{keys: append([]string(nil), keys...)}
}

// Press feeds one key and reports whether it completed the sequence.
func (k *KeySequence) Press(key string) bool {
	if len(k.keys) == 0 {
		return false
	}
	if key != k.keys[k.index] {
		k.index = 0
		return false
	}
	k.index++
	if k.index == len(k.keys) {
		k.index = 0
		return true
	}
	return false
}

// Progress returns how many keys of the sequence have been matched.
func (k *KeySequence) Progress() int {
	return k.index
}

// EasterEgg is the temporary "matrix mode": every color on the page is
// rotated half way around the hue circle.
type EasterEgg struct {
	Duration time.Duration
	Hue      float64 // degrees
	until    time.Time
}

// NewEasterEgg creates an inactive easter egg lasting 5s with a 180 degree
// hue rotation.
func NewEasterEgg() *EasterEgg {
	return &EasterEgg{
		Duration: 5 * time.Second,
		Hue:      180,
	}
}

// Activate turns matrix mode on until now + Duration.
func (e *EasterEgg) Activate(now time.Time) {
	e.until = now.Add(e.Duration)
}

// Active reports whether matrix mode is on at now.
func (e *EasterEgg) Active(now time.Time) bool {
	return now.Before(e.until)
}

// Tint returns c, hue-rotated while matrix mode is active.
func (e *EasterEgg) Tint(c color.Color, now time.Time) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if !e.Active(now) {
		return n
	}
	return HueRotate(n, e.Hue)
}

// HueRotate rotates the hue of c by deg degrees, keeping its alpha.
func HueRotate(c color.NRGBA, deg float64) color.NRGBA {
	opaque := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
	cf, ok := colorful.MakeColor(opaque)
	if !ok {
		return c
	}
	h, s, v := cf.Hsv()
	h = math.Mod(h+deg, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: c.A}
}
