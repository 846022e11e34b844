package tanks

import (
	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks/world"
)

// Player is one seat at the keyboard. It outlives rounds; its tank does not.
type Player struct {
	Color core.Color
	Score int

	controller world.Controller
	tank       world.Handle
}

// NewPlayer creates a player without a tank.
func NewPlayer(color core.Color, c world.Controller) *Player {
	return &Player{Color: color, controller: c}
}

// Name returns the color name used in announcements.
func (p *Player) Name() string {
	return p.Color.String()
}

// HasTank reports whether a tank was ever spawned for this player.
func (p *Player) HasTank() bool {
	return !p.tank.IsZero()
}

// Tank returns the player's current tank if it is still alive.
func (p *Player) Tank(w *world.World) (*world.Tank, bool) {
	return w.Tank(p.tank)
}

// Alive reports whether the player owns a live tank.
func (p *Player) Alive(w *world.World) bool {
	_, ok := p.Tank(w)
	return ok
}

// spawn replaces the player's tank with a fresh one at (x, y).
func (p *Player) spawn(w *world.World, x, y float64, spec world.TankSpec, shell world.ProjectileSpec) *world.Tank {
	t := world.NewTank(w, x, y, p.Color, p.controller, spec, shell)
	p.tank = t.Handle()
	return t
}
