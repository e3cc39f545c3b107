package page

import (
	"image/color"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/backdrop/field"
)

// SparksConfig controls the cursor trail.
type SparksConfig struct {
	Interval time.Duration // minimum time between two sparks
	Lifetime time.Duration
	Rise     float64 // pixels travelled upwards over a lifetime
	Radius   float64
	Glow     float64
	Color    color.NRGBA
}

// DefaultSparksConfig returns the trail used on the portfolio: a cyan 4px
// dot every 80ms that rises 30px and fades out over a second.
func DefaultSparksConfig() SparksConfig {
	cyan := field.Cyan.NRGBA()
	cyan.A = 255
	return SparksConfig{
		Interval: 80 * time.Millisecond,
		Lifetime: time.Second,
		Rise:     30,
		Radius:   2,
		Glow:     10,
		Color:    cyan,
	}
}

// Spark is one dot of the cursor trail.
type Spark struct {
	Pos  field.Vec2
	Born time.Time
}

// Sparks is the cursor trail. The time of the last emission is owned here so
// several trails never share throttling state.
type Sparks struct {
	config  SparksConfig
	last    time.Time
	emitted bool
	items   *intmap.Map[uint32, Spark]
	order   []uint32
	nextID  uint32
}

// NewSparks creates an empty trail.
func NewSparks(config SparksConfig) *Sparks {
	return &Sparks{
		config: config,
		items:  intmap.New[uint32, Spark](32),
	}
}

// Emit adds a spark at (x, y) unless one was emitted less than Interval ago.
// It reports whether a spark was added.
func (s *Sparks) Emit(x, y float64, now time.Time) bool {
	if s.emitted && now.Sub(s.last) <= s.config.Interval {
		return false
	}
	s.emitted = true
	s.last = now

	s.nextID++
	s.items.Put(s.nextID, Spark{Pos: field.Vec2{X: x, Y: y}, Born: now})
	s.order = append(s.order, s.nextID)
	return true
}

// Update drops sparks that outlived their lifetime.
func (s *Sparks) Update(now time.Time) {
	expired := 0
	for _, id := range s.order {
		spark, ok := s.items.Get(id)
		if ok && now.Sub(spark.Born) < s.config.Lifetime {
			break
		}
		s.items.Del(id)
		expired++
	}
	s.order = s.order[expired:]
}

// Len returns the number of live sparks.
func (s *Sparks) Len() int {
	return s.items.Len()
}

// Draw renders every live spark onto the surface: each one rises, shrinks to
// half its size and fades out over its lifetime.
func (s *Sparks) Draw(surface field.Surface, now time.Time) {
	for _, id := range s.order {
		spark, ok := s.items.Get(id)
		if !ok {
			continue
		}
		t := progress(now.Sub(spark.Born), s.config.Lifetime)
		clr := s.config.Color
		clr.A = uint8(float64(clr.A) * (1 - t))
		surface.FillCircle(
			spark.Pos.X,
			spark.Pos.Y-s.config.Rise*t,
			s.config.Radius*(1-0.5*t),
			clr,
			s.config.Glow,
		)
	}
}
