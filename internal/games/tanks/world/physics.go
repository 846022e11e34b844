package world

import (
	"math"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// ToLocalFrame rotates an offset (dx, dy) from a tank's center into the tank's
// own axis-aligned frame, given the tank rotation in degrees.
func ToLocalFrame(dx, dy, rotation float64) (lx, ly float64) {
	sin, cos := math.Sincos(core.Radians(rotation))
	lx = dx*cos - dy*sin
	ly = dy*cos + dx*sin
	return lx, ly
}

// CircleHitsRect tests a circle against a box by inflating the circle to its
// bounding square. Corners therefore register slightly early.
func CircleHitsRect(x, y, r float64, rect core.RectF) bool {
	return core.Centered(x, y, 2*r, 2*r).Intersects(rect)
}

// WallHit classifies a projectile/wall contact.
type WallHit int

const (
	WallMiss WallHit = iota
	WallHitHorizontal // Struck a side face: reverse VX
	WallHitVertical   // Struck a top/bottom face: reverse VY
)

// String returns a human-readable name for the hit.
func (h WallHit) String() string {
	switch h {
	case WallMiss:
		return "miss"
	case WallHitHorizontal:
		return "horizontal"
	case WallHitVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ClassifyWallHit rewinds the circle's y by one step. If the previous y already
// overlapped the wall's vertical span the contact came from the side, otherwise
// from above or below. Corner hits can be misclassified.
func ClassifyWallHit(x, y, vy, r, dt float64, wall core.RectF) WallHit {
	if !CircleHitsRect(x, y, r, wall) {
		return WallMiss
	}
	prevY := y - vy*dt
	if wall.SpanY(prevY-r, prevY+r) {
		return WallHitHorizontal
	}
	return WallHitVertical
}
