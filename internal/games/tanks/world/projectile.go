package world

import (
	"math"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// ProjectileSpec holds shell tuning.
type ProjectileSpec struct {
	Lifespan float64 // Seconds before the shell expires and is refunded
	Radius   float64
	Speed    float64 // Base muzzle speed
	Grace    float64 // Seconds after launch during which nothing is hit
}

// DefaultProjectileSpec returns the classic shell tuning.
func DefaultProjectileSpec() ProjectileSpec {
	return ProjectileSpec{
		Lifespan: 10,
		Radius:   5,
		Speed:    230,
		Grace:    0.25,
	}
}

// Projectile is a shell that bounces off walls until it expires or hits a tank.
type Projectile struct {
	Body
	Age   float64
	Spec  ProjectileSpec
	Firer Handle // Non-owning; refund target on expiry
}

// SpawnProjectile registers a shell at (x, y) heading along angle (degrees),
// moving at the base speed plus launchSpeed.
func SpawnProjectile(w *World, x, y, angle float64, firer Handle, launchSpeed float64, spec ProjectileSpec) *Projectile {
	sin, cos := math.Sincos(core.Radians(angle))
	speed := spec.Speed + launchSpeed
	p := &Projectile{
		Body: Body{
			X:  x,
			Y:  y,
			VX: -speed * sin,
			VY: -speed * cos,
		},
		Spec:  spec,
		Firer: firer,
	}
	w.Spawn(p)
	return p
}

// Kind implements Entity.
func (p *Projectile) Kind() Kind {
	return KindProjectile
}

// Update ages the shell. An expired shell refunds one round to its firer, if
// the firer is still alive, and removes itself. Past the grace period the shell
// checks every tank (a hit destroys both) and then every wall (a hit reverses
// one velocity component) before moving.
func (p *Projectile) Update(w *World, dt float64) {
	p.Age += dt
	if p.Age >= p.Spec.Lifespan {
		if firer, ok := w.Tank(p.Firer); ok {
			firer.Ammo++
		}
		w.Destroy(p.handle)
		return
	}

	if p.Age > p.Spec.Grace {
		for _, t := range w.Tanks() {
			if p.HitsTank(t) {
				w.Destroy(t.handle)
				w.Destroy(p.handle)
				return
			}
		}
		for _, wall := range w.Walls() {
			switch ClassifyWallHit(p.X, p.Y, p.VY, p.Spec.Radius, dt, wall.Rect()) {
			case WallHitHorizontal:
				p.VX = -p.VX
			case WallHitVertical:
				p.VY = -p.VY
			}
		}
	}

	p.Integrate(dt)
}

// HitsTank tests the shell against t's rotated body by moving the shell into
// the tank's frame and comparing against the half extents grown by the radius.
func (p *Projectile) HitsTank(t *Tank) bool {
	lx, ly := ToLocalFrame(p.X-t.X, p.Y-t.Y, t.Rotation)
	r := p.Spec.Radius
	hw, hh := t.Spec.Width/2, t.Spec.Height/2
	return lx+r > -hw && hw > lx-r && ly+r > -hh && hh > ly-r
}
