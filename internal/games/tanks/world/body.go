package world

import "math"

// Body carries the state every entity shares: position, velocity and
// registry membership.
type Body struct {
	X, Y   float64
	VX, VY float64

	handle Handle
	alive  bool
}

func (b *Body) base() *Body {
	return b
}

// Handle returns the registry handle assigned at spawn.
func (b *Body) Handle() Handle {
	return b.handle
}

// Alive reports registry membership.
func (b *Body) Alive() bool {
	return b.alive
}

// Speed returns the velocity magnitude.
func (b *Body) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Integrate advances the position by velocity*dt.
func (b *Body) Integrate(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}
