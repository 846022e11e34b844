package tanks

import (
	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks/world"
)

// Rules is the resolved tuning for one match.
type Rules struct {
	Arena          config.ArenaConfig
	Tank           world.TankSpec
	Shell          world.ProjectileSpec
	OneLeftTimeout float64 // Seconds
	WinScore       int     // 0 = endless
}

// RulesFromConfig converts YAML tuning into simulation specs.
func RulesFromConfig(cfg config.TanksConfig) Rules {
	return Rules{
		Arena: cfg.Arena,
		Tank: world.TankSpec{
			Width:        cfg.Tank.Width,
			Height:       cfg.Tank.Height,
			TurnSpeed:    cfg.Tank.TurnSpeed,
			MoveSpeed:    cfg.Tank.MoveSpeed,
			ReloadFrames: cfg.Tank.ReloadFrames,
			BaseAmmo:     cfg.Tank.BaseAmmo,
		},
		Shell: world.ProjectileSpec{
			Lifespan: cfg.Projectile.Lifespan,
			Radius:   cfg.Projectile.Radius,
			Speed:    cfg.Projectile.Speed,
			Grace:    cfg.Projectile.Grace,
		},
		OneLeftTimeout: cfg.Round.OneLeftTimeout,
		WinScore:       cfg.Round.WinScore,
	}
}

// ArenaSize returns the maze extent in world units.
func (r Rules) ArenaSize() (w, h float64) {
	return float64(r.Arena.Cols) * r.Arena.CellSize, float64(r.Arena.Rows) * r.Arena.CellSize
}

// MaxWalls returns the wall count of a maze with every edge filled.
func (r Rules) MaxWalls() int {
	cols, rows := r.Arena.Cols, r.Arena.Rows
	return (cols+1)*rows + cols*(rows+1)
}

// MinWalls returns the wall count of the perimeter alone.
func (r Rules) MinWalls() int {
	return 2 * (r.Arena.Cols + r.Arena.Rows)
}
