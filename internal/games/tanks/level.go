package tanks

import (
	"math/rand"

	"github.com/vovakirdan/tui-tanks/internal/games/tanks/world"
)

// RoundResult describes how a round ended.
type RoundResult struct {
	Round  int
	Winner *Player // nil on a draw
	Draw   bool
}

// Level is one round: a maze, a fresh tank per player and the win-condition
// watch. A round ends immediately when no tank is left, or once a single
// survivor has lasted OneLeftTimeout seconds.
type Level struct {
	world   *world.World
	players []*Player
	rules   Rules
	rng     *rand.Rand

	round  int
	ticker float64 // Seconds with exactly one survivor; reset otherwise
}

// NewLevel carves a maze into w and spawns every player's tank.
func NewLevel(w *world.World, players []*Player, rules Rules, rng *rand.Rand, round int) *Level {
	l := &Level{
		world:   w,
		players: players,
		rules:   rules,
		rng:     rng,
		round:   round,
	}
	l.generateMaze()

	spawn := rules.Arena.Spawn
	for _, p := range players {
		x := spawn.MinX + rng.Intn(spawn.MaxX-spawn.MinX+1)
		y := spawn.MinY + rng.Intn(spawn.MaxY-spawn.MinY+1)
		p.spawn(w, float64(x), float64(y), rules.Tank, rules.Shell)
	}
	return l
}

// generateMaze walks the grid row by row. For every cell corner it places the
// vertical edge below it and then the horizontal edge to its right. Perimeter
// edges are always walls; interior edges are walls with WallChance.
func (l *Level) generateMaze() {
	a := l.rules.Arena
	for y := 0; y <= a.Rows; y++ {
		for x := 0; x <= a.Cols; x++ {
			px, py := float64(x)*a.CellSize, float64(y)*a.CellSize
			if y < a.Rows && (x == 0 || x == a.Cols || l.chance()) {
				world.NewVWall(l.world, px, py, a.CellSize, a.WallThickness)
			}
			if x < a.Cols && (y == 0 || y == a.Rows || l.chance()) {
				world.NewHWall(l.world, px, py, a.CellSize, a.WallThickness)
			}
		}
	}
}

func (l *Level) chance() bool {
	return l.rng.Float64() < l.rules.Arena.WallChance
}

// Round returns the 1-based round number.
func (l *Level) Round() int {
	return l.round
}

// Ticker returns how long the current sole survivor has lasted.
func (l *Level) Ticker() float64 {
	return l.ticker
}

// Survivors returns the players that still own a live tank.
func (l *Level) Survivors() []*Player {
	var alive []*Player
	for _, p := range l.players {
		if p.Alive(l.world) {
			alive = append(alive, p)
		}
	}
	return alive
}

// Update evaluates the win condition. It returns true when the round is over;
// the caller then moves on with Next.
func (l *Level) Update(dt float64) (RoundResult, bool) {
	alive := l.Survivors()
	switch len(alive) {
	case 0:
		l.ticker = 0
		return RoundResult{Round: l.round, Draw: true}, true
	case 1:
		l.ticker += dt
		if l.ticker >= l.rules.OneLeftTimeout {
			alive[0].Score++
			return RoundResult{Round: l.round, Winner: alive[0]}, true
		}
	default:
		l.ticker = 0
	}
	return RoundResult{}, false
}

// Next clears the world without side effects and starts the following round.
func (l *Level) Next() *Level {
	l.world.DestroyAll()
	return NewLevel(l.world, l.players, l.rules, l.rng, l.round+1)
}
