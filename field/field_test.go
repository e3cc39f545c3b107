package field_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/plus3/backdrop/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestField(t *testing.T, w, h float64, cfg field.Config) (*field.Field, *field.Recorder) {
	t.Helper()
	rec := field.NewRecorder(w, h)
	f := field.New(rec, cfg, field.WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NotNil(t, f)
	return f, rec
}

func TestNewField(t *testing.T) {
	f, _ := newTestField(t, 800, 600, field.DefaultConfig())

	w, h := f.Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 600.0, h)

	cfg := f.Config()
	particles := f.Particles()
	require.Len(t, particles, cfg.ParticleCount)

	for _, p := range particles {
		assert.GreaterOrEqual(t, p.Pos.X, 0.0)
		assert.Less(t, p.Pos.X, 800.0)
		assert.GreaterOrEqual(t, p.Pos.Y, 0.0)
		assert.Less(t, p.Pos.Y, 600.0)

		assert.GreaterOrEqual(t, p.Vel.X, -cfg.SpeedRange/2)
		assert.Less(t, p.Vel.X, cfg.SpeedRange/2)
		assert.GreaterOrEqual(t, p.Vel.Y, -cfg.SpeedRange/2)
		assert.Less(t, p.Vel.Y, cfg.SpeedRange/2)

		assert.GreaterOrEqual(t, p.Radius, cfg.MinRadius)
		assert.Less(t, p.Radius, cfg.MaxRadius)
		assert.Contains(t, field.Palette, p.Color)
	}

	_, ok := f.Pointer()
	assert.False(t, ok, "a new field has no pointer")
}

func TestConfigDefaults(t *testing.T) {
	f, _ := newTestField(t, 100, 100, field.Config{ParticleCount: 5, Friction: 1.5})

	cfg := f.Config()
	def := field.DefaultConfig()
	assert.Equal(t, 5, cfg.ParticleCount)
	assert.Equal(t, def.Friction, cfg.Friction, "friction must stay below 1")
	assert.Equal(t, def.ConnectionDistance, cfg.ConnectionDistance)
	assert.Equal(t, def.PointerRadius, cfg.PointerRadius)
	assert.Equal(t, def.Glow, cfg.Glow)
	assert.Equal(t, field.ConnectionColor, cfg.ConnectionColor)

	noGlow, _ := newTestField(t, 100, 100, field.Config{Glow: -1})
	assert.Zero(t, noGlow.Config().Glow)
}

func TestSpeedNonIncreasingWithoutPointer(t *testing.T) {
	f, _ := newTestField(t, 400, 300, field.DefaultConfig())
	particles := f.Particles()

	for step := 0; step < 500; step++ {
		for i := range particles {
			before := particles[i].Speed()
			f.UpdateParticle(&particles[i])
			after := particles[i].Speed()
			require.LessOrEqual(t, after, before, "particle %d at step %d sped up", i, step)
		}
	}
}

func TestBoundaryReflection(t *testing.T) {
	tests := []struct {
		name  string
		start field.Particle
		check func(t *testing.T, p field.Particle)
	}{
		{
			name:  "beyond right edge moving right",
			start: field.Particle{Pos: field.Vec2{X: 100.5, Y: 50}, Vel: field.Vec2{X: 0.3}},
			check: func(t *testing.T, p field.Particle) { assert.Less(t, p.Vel.X, 0.0) },
		},
		{
			name:  "beyond left edge moving left",
			start: field.Particle{Pos: field.Vec2{X: -0.5, Y: 50}, Vel: field.Vec2{X: -0.3}},
			check: func(t *testing.T, p field.Particle) { assert.Greater(t, p.Vel.X, 0.0) },
		},
		{
			name:  "beyond bottom edge moving down",
			start: field.Particle{Pos: field.Vec2{X: 50, Y: 100.5}, Vel: field.Vec2{Y: 0.3}},
			check: func(t *testing.T, p field.Particle) { assert.Less(t, p.Vel.Y, 0.0) },
		},
		{
			name:  "beyond top edge moving up",
			start: field.Particle{Pos: field.Vec2{X: 50, Y: -0.5}, Vel: field.Vec2{Y: -0.3}},
			check: func(t *testing.T, p field.Particle) { assert.Greater(t, p.Vel.Y, 0.0) },
		},
		{
			name:  "axes reflect independently",
			start: field.Particle{Pos: field.Vec2{X: 100.5, Y: 50}, Vel: field.Vec2{X: 0.3, Y: 0.2}},
			check: func(t *testing.T, p field.Particle) {
				assert.Less(t, p.Vel.X, 0.0)
				assert.Greater(t, p.Vel.Y, 0.0)
			},
		},
		{
			name:  "crossing the edge this frame",
			start: field.Particle{Pos: field.Vec2{X: 99.9, Y: 50}, Vel: field.Vec2{X: 0.3}},
			check: func(t *testing.T, p field.Particle) {
				assert.Less(t, p.Vel.X, 0.0)
				assert.InDelta(t, 100.2, p.Pos.X, 1e-9, "position is not clamped")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newTestField(t, 100, 100, field.Config{ParticleCount: 1})
			p := tt.start
			f.UpdateParticle(&p)
			tt.check(t, p)
		})
	}
}

func TestOvershootingParticleReturns(t *testing.T) {
	f, _ := newTestField(t, 100, 100, field.Config{ParticleCount: 1})
	p := field.Particle{Pos: field.Vec2{X: 99.9, Y: 50}, Vel: field.Vec2{X: 0.3}}

	for i := 0; i < 10; i++ {
		f.UpdateParticle(&p)
	}
	assert.Less(t, p.Pos.X, 100.0)
	assert.Less(t, p.Vel.X, 0.0)
}

func TestPointerRepulsion(t *testing.T) {
	cfg := field.DefaultConfig()

	t.Run("inside the radius pushes away", func(t *testing.T) {
		for _, offset := range []field.Vec2{{X: 10}, {X: -30, Y: 40}, {Y: -149}, {X: 0.5, Y: 0.5}} {
			f, _ := newTestField(t, 400, 400, cfg)
			pointer := field.Vec2{X: 200, Y: 200}
			f.PointerMove(pointer.X, pointer.Y)

			p := field.Particle{Pos: pointer.Add(offset)}
			f.UpdateParticle(&p)

			away := p.Pos.Sub(pointer)
			assert.Greater(t, p.Vel.Dot(away), 0.0, "offset %+v", offset)
		}
	})

	t.Run("force falls off linearly", func(t *testing.T) {
		f, _ := newTestField(t, 400, 400, cfg)
		f.PointerMove(200, 200)

		near := field.Particle{Pos: field.Vec2{X: 230, Y: 200}}
		far := field.Particle{Pos: field.Vec2{X: 320, Y: 200}}
		f.UpdateParticle(&near)
		f.UpdateParticle(&far)

		wantNear := (cfg.PointerRadius - 30) / cfg.PointerRadius * cfg.RepulsionStrength * cfg.Friction
		wantFar := (cfg.PointerRadius - 120) / cfg.PointerRadius * cfg.RepulsionStrength * cfg.Friction
		assert.InDelta(t, wantNear, near.Vel.X, 1e-12)
		assert.InDelta(t, wantFar, far.Vel.X, 1e-12)
		assert.InDelta(t, 0, near.Vel.Y, 1e-12)
	})

	t.Run("outside the radius has no effect", func(t *testing.T) {
		withPointer, _ := newTestField(t, 400, 400, cfg)
		withPointer.PointerMove(200, 200)
		without, _ := newTestField(t, 400, 400, cfg)

		for _, start := range []field.Particle{
			{Pos: field.Vec2{X: 350, Y: 200}, Vel: field.Vec2{X: 0.1, Y: -0.2}},
			{Pos: field.Vec2{X: 200, Y: 40}, Vel: field.Vec2{X: -0.1}},
			{Pos: field.Vec2{X: 10, Y: 10}},
		} {
			a, b := start, start
			withPointer.UpdateParticle(&a)
			without.UpdateParticle(&b)
			assert.Equal(t, b.Vel, a.Vel)
		}
	})

	t.Run("pointer on the particle is skipped", func(t *testing.T) {
		f, _ := newTestField(t, 400, 400, cfg)
		f.PointerMove(100, 100)

		p := field.Particle{Pos: field.Vec2{X: 100, Y: 100}}
		f.UpdateParticle(&p)
		assert.False(t, math.IsNaN(p.Vel.X) || math.IsNaN(p.Vel.Y))
		assert.Equal(t, field.Vec2{}, p.Vel)
	})

	t.Run("leave stops the repulsion", func(t *testing.T) {
		f, _ := newTestField(t, 400, 400, cfg)
		f.PointerMove(200, 200)
		pos, ok := f.Pointer()
		require.True(t, ok)
		assert.Equal(t, field.Vec2{X: 200, Y: 200}, pos)

		f.PointerLeave()
		_, ok = f.Pointer()
		require.False(t, ok)

		p := field.Particle{Pos: field.Vec2{X: 210, Y: 200}}
		f.UpdateParticle(&p)
		assert.Equal(t, field.Vec2{}, p.Vel)
	})
}

func TestConnectionOpacity(t *testing.T) {
	f, _ := newTestField(t, 100, 100, field.Config{ParticleCount: 1, ConnectionDistance: 100})
	cfg := f.Config()

	assert.InDelta(t, cfg.ConnectionOpacity, f.ConnectionOpacity(0), 1e-12)

	prev := f.ConnectionOpacity(0)
	for d := 0.5; d < 100; d += 0.5 {
		cur := f.ConnectionOpacity(d)
		require.Less(t, cur, prev, "opacity at %.1f", d)
		require.Greater(t, cur, 0.0)
		prev = cur
	}

	assert.Zero(t, f.ConnectionOpacity(100))
	assert.Zero(t, f.ConnectionOpacity(150))
}

func TestResize(t *testing.T) {
	f, _ := newTestField(t, 800, 600, field.Config{ParticleCount: 40})
	before := f.Particles()

	f.Resize(320, 200)

	w, h := f.Size()
	assert.Equal(t, 320.0, w)
	assert.Equal(t, 200.0, h)

	after := f.Particles()
	require.Len(t, after, 40)
	assert.NotEqual(t, before, after)
	for _, p := range after {
		assert.GreaterOrEqual(t, p.Pos.X, 0.0)
		assert.LessOrEqual(t, p.Pos.X, 320.0)
		assert.GreaterOrEqual(t, p.Pos.Y, 0.0)
		assert.LessOrEqual(t, p.Pos.Y, 200.0)
	}
}

func TestTickConnectsOnlyNearPairs(t *testing.T) {
	f, rec := newTestField(t, 300, 100, field.Config{ParticleCount: 3, ConnectionDistance: 100})
	f.SetParticles([]field.Particle{
		{Pos: field.Vec2{X: 0, Y: 0}, Radius: 1, Color: field.Cyan},
		{Pos: field.Vec2{X: 50, Y: 0}, Radius: 1, Color: field.Magenta},
		{Pos: field.Vec2{X: 200, Y: 0}, Radius: 1, Color: field.Green},
	})

	f.Tick()

	assert.Equal(t, 1, rec.Clears)
	require.Len(t, rec.Circles, 3)
	require.Len(t, rec.Lines, 1)
	assert.Equal(t, 1, f.LastConnections)

	line := rec.Lines[0]
	assert.Equal(t, 0.0, line.X0)
	assert.Equal(t, 0.0, line.Y0)
	assert.Equal(t, 50.0, line.X1)
	assert.Equal(t, 0.0, line.Y1)
	assert.InDelta(t, f.ConnectionOpacity(50), line.Opacity, 1e-12)
	assert.Equal(t, f.Config().ConnectionColor, line.Color)
	assert.Equal(t, f.Config().ConnectionWidth, line.Width)
}

func TestTickDrawsEveryParticle(t *testing.T) {
	f, rec := newTestField(t, 640, 480, field.DefaultConfig())

	for i := 0; i < 3; i++ {
		f.Tick()
	}

	assert.Equal(t, 3, rec.Clears)
	particles := f.Particles()
	require.Len(t, rec.Circles, len(particles))
	for i, op := range rec.Circles {
		assert.Equal(t, particles[i].Pos.X, op.X)
		assert.Equal(t, particles[i].Pos.Y, op.Y)
		assert.Equal(t, particles[i].Radius, op.R)
		assert.Equal(t, particles[i].Color.NRGBA(), op.Color)
		assert.Equal(t, f.Config().Glow, op.Glow)
	}
	assert.Len(t, rec.Lines, f.LastConnections)
}

func TestPaletteColors(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	seen := make(map[field.Color]int)
	for i := 0; i < 400; i++ {
		seen[field.RandomColor(rng)]++
	}
	assert.Len(t, seen, len(field.Palette))

	assert.Equal(t, "cyan", field.Cyan.String())
	assert.Equal(t, uint8(240), field.Cyan.NRGBA().G)
	assert.Equal(t, "unknown", field.Color(42).String())
}
