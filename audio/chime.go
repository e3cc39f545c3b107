// Package audio plays the chime that accompanies the easter egg.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// DefaultSampleRate is used when a Chime is created with a zero rate.
const DefaultSampleRate = beep.SampleRate(44100)

// Note is one tone of the melody.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// MatrixMelody is a rising E minor arpeggio.
var MatrixMelody = []Note{
	{Freq: 659.25, Duration: 120 * time.Millisecond},  // E5
	{Freq: 783.99, Duration: 120 * time.Millisecond},  // G5
	{Freq: 987.77, Duration: 120 * time.Millisecond},  // B5
	{Freq: 1318.51, Duration: 240 * time.Millisecond}, // E6
}

// Chime synthesises and plays the easter egg melody.
type Chime struct {
	Rate   beep.SampleRate
	Volume float64 // linear gain in (0, 1]
	Notes  []Note

	mu          sync.Mutex
	initialized bool
}

// NewChime creates a chime for the given sample rate.
func NewChime(rate beep.SampleRate) *Chime {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Chime{
		Rate:   rate,
		Volume: 0.3,
		Notes:  MatrixMelody,
	}
}

// Init opens the speaker. A chime that was never initialised stays silent.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.Rate, c.Rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	c.initialized = true
	return nil
}

// Melody builds a fresh streamer for the notes, one after the other.
func (c *Chime) Melody() (beep.Streamer, error) {
	tones := make([]beep.Streamer, 0, len(c.Notes))
	for _, note := range c.Notes {
		sine, err := generators.SineTone(c.Rate, note.Freq)
		if err != nil {
			return nil, fmt.Errorf("audio: note %.2fHz: %w", note.Freq, err)
		}
		tones = append(tones, beep.Take(c.Rate.N(note.Duration), sine))
	}

	if c.Volume <= 0 {
		return &effects.Volume{Streamer: beep.Seq(tones...), Base: 2, Silent: true}, nil
	}
	return &effects.Volume{
		Streamer: beep.Seq(tones...),
		Base:     2,
		Volume:   math.Log2(c.Volume),
	}, nil
}

// Play starts the melody on the speaker. It does nothing before Init.
func (c *Chime) Play() error {
	c.mu.Lock()
	ready := c.initialized
	c.mu.Unlock()
	if !ready {
		return nil
	}

	melody, err := c.Melody()
	if err != nil {
		return err
	}
	speaker.Play(melody)
	return nil
}
