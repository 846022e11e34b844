package world

import (
	"math"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// TankSpec holds tank body size and handling.
type TankSpec struct {
	Width        float64
	Height       float64
	TurnSpeed    float64 // Degrees per second
	MoveSpeed    float64 // Units per second
	ReloadFrames int     // Ticks between shots
	BaseAmmo     int
}

// DefaultTankSpec returns the classic tank tuning.
func DefaultTankSpec() TankSpec {
	return TankSpec{
		Width:        26,
		Height:       32,
		TurnSpeed:    90,
		MoveSpeed:    110,
		ReloadFrames: 10,
		BaseAmmo:     5,
	}
}

// Tank is a player-controlled vehicle. Rotation 0 faces up (negative y) and
// grows counterclockwise.
type Tank struct {
	Body
	Rotation  float64 // Degrees in [0, 360)
	Omega     int     // Turn intent: -1, 0, 1
	Direction int     // Move intent: -1, 0, 1
	Reload    int     // Ticks until the next shot is allowed
	Ammo      int
	Color     core.Color
	Spec      TankSpec
	Shell     ProjectileSpec

	controller Controller
}

// NewTank registers a tank with full ammo at (x, y).
func NewTank(w *World, x, y float64, color core.Color, c Controller, spec TankSpec, shell ProjectileSpec) *Tank {
	t := &Tank{
		Body:       Body{X: x, Y: y},
		Ammo:       spec.BaseAmmo,
		Color:      color,
		Spec:       spec,
		Shell:      shell,
		controller: c,
	}
	w.Spawn(t)
	return t
}

// Kind implements Entity.
func (t *Tank) Kind() Kind {
	return KindTank
}

// Update applies turn intent, derives velocity from move intent, cancels all
// motion for this tick if the predicted body would enter a wall, counts down
// the reload and integrates.
func (t *Tank) Update(w *World, dt float64) {
	t.Rotation = core.WrapDegrees(t.Rotation + t.Spec.TurnSpeed*float64(t.Omega)*dt)

	sin, cos := math.Sincos(core.Radians(t.Rotation))
	t.VX = -float64(t.Direction) * t.Spec.MoveSpeed * sin
	t.VY = -float64(t.Direction) * t.Spec.MoveSpeed * cos

	for _, wall := range w.Walls() {
		if wall.BlocksTank(t, dt) {
			t.VX, t.VY = 0, 0
			t.Omega = 0
			break
		}
	}

	if t.Reload > 0 {
		t.Reload--
	}

	t.Integrate(dt)
}

// CanFire reports whether a shot is allowed right now.
func (t *Tank) CanFire() bool {
	return t.Reload == 0 && t.Ammo > 0
}

// Fire launches a shell from the tank's center along its heading. The shell
// gets the tank's current speed as a launch bonus. Returns false, changing
// nothing, while reloading or out of ammo.
func (t *Tank) Fire(w *World) bool {
	if !t.CanFire() {
		return false
	}
	SpawnProjectile(w, t.X, t.Y, t.Rotation, t.handle, t.Speed(), t.Shell)
	t.Reload = t.Spec.ReloadFrames
	t.Ammo--
	return true
}

// Heading returns the unit vector the tank drives along when moving forward.
func (t *Tank) Heading() (dx, dy float64) {
	sin, cos := math.Sincos(core.Radians(t.Rotation))
	return -sin, -cos
}
