// Package field implements the animated particle backdrop: a set of drifting
// particles on a 2D surface, joined by faint lines when they come close and
// pushed away from the pointer.
//
// A Field does no scheduling of its own. Each call to Tick renders one frame;
// a frame.Loop (or any other driver) decides when that happens. Field is also a
// frame.System so it can be registered on a Loop directly.
package field

import (
	"math"
	"math/rand/v2"
	"sync/atomic"

	"github.com/plus3/backdrop/frame"
)

// pointerEpsilon is the distance below which the pointer is considered to sit
// on the particle. The push direction is undefined there, so no force is
// applied.
const pointerEpsilon = 1e-9

// Field owns the particles of a single drawing surface.
type Field struct {
	surface   Surface
	config    Config
	rng       *rand.Rand
	particles []Particle
	width     float64
	height    float64
	pointer   atomic.Pointer[Vec2]

	// LastConnections is the number of lines drawn by the latest Tick.
	LastConnections int
}

// Option customises a Field at construction.
type Option func(*Field)

// WithRand makes the field draw every random value from rng.
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) {
		f.rng = rng
	}
}

// New creates a field sized to the surface and fills it with
// cfg.ParticleCount random particles. Zero values in cfg take their
// DefaultConfig value.
func New(surface Surface, cfg Config, opts ...Option) *Field {
	f := &Field{
		surface: surface,
		config:  cfg.withDefaults(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	w, h := surface.Size()
	f.Resize(w, h)
	return f
}

// Config returns the configuration the field was built with, defaults applied.
func (f *Field) Config() Config {
	return f.config
}

// Size returns the surface dimensions the field currently simulates within.
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// Resize records new surface dimensions and regenerates every particle.
// Previous trajectories are discarded, the particle count is unchanged.
func (f *Field) Resize(w, h float64) {
	f.width = math.Max(w, 0)
	f.height = math.Max(h, 0)

	particles := make([]Particle, f.config.ParticleCount)
	for i := range particles {
		particles[i] = f.newParticle()
	}
	f.particles = particles
}

func (f *Field) newParticle() Particle {
	cfg := f.config
	return Particle{
		Pos: Vec2{
			X: f.rng.Float64() * f.width,
			Y: f.rng.Float64() * f.height,
		},
		Vel: Vec2{
			X: (f.rng.Float64() - 0.5) * cfg.SpeedRange,
			Y: (f.rng.Float64() - 0.5) * cfg.SpeedRange,
		},
		Radius: cfg.MinRadius + f.rng.Float64()*(cfg.MaxRadius-cfg.MinRadius),
		Color:  RandomColor(f.rng),
	}
}

// Particles returns a copy of the particles in render order.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// SetParticles replaces the whole particle set, as a reset does.
func (f *Field) SetParticles(particles []Particle) {
	f.particles = make([]Particle, len(particles))
	copy(f.particles, particles)
}

// PointerMove records the pointer position. Safe to call from any goroutine.
func (f *Field) PointerMove(x, y float64) {
	f.pointer.Store(&Vec2{X: x, Y: y})
}

// PointerLeave clears the pointer position. Safe to call from any goroutine.
func (f *Field) PointerLeave() {
	f.pointer.Store(nil)
}

// Pointer returns the last pointer position and whether one is present.
func (f *Field) Pointer() (Vec2, bool) {
	p := f.pointer.Load()
	if p == nil {
		return Vec2{}, false
	}
	return *p, true
}

// UpdateParticle advances p by one frame: integrate, reflect off the surface
// edges, push away from the pointer, then apply friction.
func (f *Field) UpdateParticle(p *Particle) {
	p.Pos = p.Pos.Add(p.Vel)

	// Positions are not clamped; a particle may sit outside the surface for a
	// frame or two while its reflected velocity brings it back.
	if (p.Pos.X < 0 && p.Vel.X < 0) || (p.Pos.X > f.width && p.Vel.X > 0) {
		p.Vel.X = -p.Vel.X
	}
	if (p.Pos.Y < 0 && p.Vel.Y < 0) || (p.Pos.Y > f.height && p.Vel.Y > 0) {
		p.Vel.Y = -p.Vel.Y
	}

	if pointer, ok := f.Pointer(); ok {
		p.Vel = p.Vel.Sub(f.repulsion(p.Pos, pointer))
	}

	p.Vel = p.Vel.Scale(f.config.Friction)
}

// repulsion returns the velocity removed from a particle at pos by the
// pointer: the unit vector towards the pointer scaled by a linear falloff.
func (f *Field) repulsion(pos, pointer Vec2) Vec2 {
	radius := f.config.PointerRadius
	toPointer := pointer.Sub(pos)
	distance := toPointer.Len()
	if distance >= radius || distance < pointerEpsilon {
		return Vec2{}
	}

	force := (radius - distance) / radius
	return toPointer.Scale(force * f.config.RepulsionStrength / distance)
}

// DrawParticle renders p with its halo.
func (f *Field) DrawParticle(p Particle) {
	f.surface.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Color.NRGBA(), f.config.Glow)
}

// ConnectionOpacity returns the line opacity for two particles at the given
// distance. It falls linearly from the configured maximum at distance zero to
// zero at the connection distance.
func (f *Field) ConnectionOpacity(distance float64) float64 {
	limit := f.config.ConnectionDistance
	if distance < 0 || distance >= limit {
		return 0
	}
	return (1 - distance/limit) * f.config.ConnectionOpacity
}

// DrawConnections strokes a line between every pair of particles closer than
// the connection distance and returns how many lines were drawn. Every pair is
// visited, so the cost grows with the square of the particle count.
func (f *Field) DrawConnections() int {
	cfg := f.config
	drawn := 0
	for i := 0; i < len(f.particles); i++ {
		a := f.particles[i].Pos
		for j := i + 1; j < len(f.particles); j++ {
			b := f.particles[j].Pos
			opacity := f.ConnectionOpacity(a.Sub(b).Len())
			if opacity <= 0 {
				continue
			}
			f.surface.StrokeLine(a.X, a.Y, b.X, b.Y, cfg.ConnectionWidth, cfg.ConnectionColor, opacity)
			drawn++
		}
	}
	return drawn
}

// Tick renders one frame: clear the surface, update and draw each particle in
// order, then draw the connections.
func (f *Field) Tick() {
	f.surface.Clear()

	for i := range f.particles {
		f.UpdateParticle(&f.particles[i])
		f.DrawParticle(f.particles[i])
	}

	f.LastConnections = f.DrawConnections()
}

// Execute runs Tick as part of a frame.Loop.
func (f *Field) Execute(_ *frame.Frame) {
	f.Tick()
}
