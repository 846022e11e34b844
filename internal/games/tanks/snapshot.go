package tanks

import (
	"math"

	"github.com/vovakirdan/tui-tanks/internal/games/tanks/world"
)

// fixedScale converts float state into ints for stable comparison.
const fixedScale = 1000

// Snapshot contains the match state in primitive types.
// Entity data is flattened in registry order.
type Snapshot struct {
	Tick     uint64
	Round    int
	Ticker   int // Survivor ticker, fixed-point
	Paused   bool
	GameOver bool
	Scores   []int

	// Each entity is 8 ints: Kind, X, Y, VX, VY, Rotation, Ammo, Reload.
	// Floats are fixed-point; non-tank fields are zero.
	EntityCount int
	EntityData  []int
}

func fixed(v float64) int {
	return int(math.Round(v * fixedScale))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     uint64(max(0, g.tickCount)), //nolint:gosec // tickCount is always non-negative
		Round:    g.level.Round(),
		Ticker:   fixed(g.level.Ticker()),
		Paused:   g.paused,
		GameOver: g.gameOver,
		Scores:   make([]int, len(g.players)),
	}
	for i, p := range g.players {
		snap.Scores[i] = p.Score
	}

	g.world.Each(func(e world.Entity) {
		var rot, ammo, reload int
		var x, y, vx, vy float64
		switch v := e.(type) {
		case *world.Wall:
			x, y = v.X, v.Y
		case *world.Tank:
			x, y, vx, vy = v.X, v.Y, v.VX, v.VY
			rot, ammo, reload = fixed(v.Rotation), v.Ammo, v.Reload
		case *world.Projectile:
			x, y, vx, vy = v.X, v.Y, v.VX, v.VY
		}
		snap.EntityData = append(snap.EntityData,
			int(e.Kind()), fixed(x), fixed(y), fixed(vx), fixed(vy), rot, ammo, reload)
		snap.EntityCount++
	})
	return snap
}

// Hash returns a hash of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Round)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ticker)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}
	if snap.GameOver {
		h = h*31 + 2
	}
	for _, v := range snap.Scores {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EntityData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
