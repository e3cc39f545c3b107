package field

import "math"

// Vec2 is a point or displacement on the drawing surface, in pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Particle is a single simulated point of the backdrop.
// Radius and Color are fixed when the particle is created.
type Particle struct {
	Pos    Vec2
	Vel    Vec2 // pixels per frame
	Radius float64
	Color  Color
}

// Speed returns the magnitude of the particle's velocity.
func (p Particle) Speed() float64 {
	return p.Vel.Len()
}
