package field

import "image/color"

// Config holds the tunables of a particle field. All values are fixed for the
// lifetime of a Field.
type Config struct {
	// ParticleCount is the number of particles kept on the surface.
	ParticleCount int

	// ConnectionDistance is the pixel distance under which two particles are
	// joined by a line.
	ConnectionDistance float64

	// PointerRadius is the pixel radius of the pointer's repulsion.
	PointerRadius float64

	// SpeedRange is the width of the symmetric range initial velocity
	// components are drawn from, in pixels per frame.
	SpeedRange float64

	// MinRadius and MaxRadius bound the particle draw radius.
	MinRadius float64
	MaxRadius float64

	// Friction multiplies both velocity components every frame. Must be < 1.
	Friction float64

	// RepulsionStrength is the fraction of the pointer force removed from a
	// particle's velocity per frame.
	RepulsionStrength float64

	// ConnectionOpacity is the opacity of a connection between two particles
	// at distance zero.
	ConnectionOpacity float64

	// ConnectionWidth is the stroke width of connection lines.
	ConnectionWidth float64

	// Glow is the blur size of the halo drawn around each particle. A
	// negative value disables the halo.
	Glow float64

	// ConnectionColor is the stroke color of connection lines.
	ConnectionColor color.NRGBA
}

// DefaultConfig returns the configuration the portfolio backdrop ships with.
func DefaultConfig() Config {
	return Config{
		ParticleCount:      80,
		ConnectionDistance: 150,
		PointerRadius:      150,
		SpeedRange:         0.5,
		MinRadius:          1,
		MaxRadius:          3,
		Friction:           0.99,
		RepulsionStrength:  0.5,
		ConnectionOpacity:  0.3,
		ConnectionWidth:    1,
		Glow:               10,
		ConnectionColor:    ConnectionColor,
	}
}

// withDefaults fills every unset field from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ParticleCount <= 0 {
		c.ParticleCount = d.ParticleCount
	}
	if c.ConnectionDistance <= 0 {
		c.ConnectionDistance = d.ConnectionDistance
	}
	if c.PointerRadius <= 0 {
		c.PointerRadius = d.PointerRadius
	}
	if c.SpeedRange <= 0 {
		c.SpeedRange = d.SpeedRange
	}
	if c.MinRadius <= 0 {
		c.MinRadius = d.MinRadius
	}
	if c.MaxRadius < c.MinRadius {
		c.MaxRadius = c.MinRadius + (d.MaxRadius - d.MinRadius)
	}
	if c.Friction <= 0 || c.Friction >= 1 {
		c.Friction = d.Friction
	}
	if c.RepulsionStrength <= 0 {
		c.RepulsionStrength = d.RepulsionStrength
	}
	if c.ConnectionOpacity <= 0 || c.ConnectionOpacity > 1 {
		c.ConnectionOpacity = d.ConnectionOpacity
	}
	if c.ConnectionWidth <= 0 {
		c.ConnectionWidth = d.ConnectionWidth
	}
	switch {
	case c.Glow == 0:
		c.Glow = d.Glow
	case c.Glow < 0:
		c.Glow = 0
	}
	if c.ConnectionColor == (color.NRGBA{}) {
		c.ConnectionColor = d.ConnectionColor
	}
	return c
}
