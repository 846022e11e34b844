// Package config provides YAML-based tuning for the tank arena and
// named presets that adjust it.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

// TanksConfig contains all tunable parameters for a match.
type TanksConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Tank       TankConfig       `yaml:"tank"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Round      RoundConfig      `yaml:"round"`
	Players    []PlayerConfig   `yaml:"players"`
}

// ArenaConfig defines the maze grid and spawn area.
type ArenaConfig struct {
	Cols          int       `yaml:"cols"`
	Rows          int       `yaml:"rows"`
	CellSize      float64   `yaml:"cell_size"`
	WallThickness float64   `yaml:"wall_thickness"`
	WallChance    float64   `yaml:"wall_chance"` // Probability that an interior edge is a wall
	Spawn         SpawnArea `yaml:"spawn"`
}

// SpawnArea is the rectangle tanks are dropped into at round start.
type SpawnArea struct {
	MinX int `yaml:"min_x"`
	MaxX int `yaml:"max_x"`
	MinY int `yaml:"min_y"`
	MaxY int `yaml:"max_y"`
}

// TankConfig defines tank body and handling.
type TankConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	TurnSpeed    float64 `yaml:"turn_speed"` // Degrees per second
	MoveSpeed    float64 `yaml:"move_speed"` // Units per second
	ReloadFrames int     `yaml:"reload_frames"`
	BaseAmmo     int     `yaml:"base_ammo"`
}

// ProjectileConfig defines shell behavior.
type ProjectileConfig struct {
	Lifespan float64 `yaml:"lifespan"` // Seconds
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	Grace    float64 `yaml:"grace"` // Seconds before a fresh shell can hit anything
}

// RoundConfig defines win conditions.
type RoundConfig struct {
	OneLeftTimeout float64 `yaml:"one_left_timeout"` // Seconds a sole survivor must last
	WinScore       int     `yaml:"win_score"`        // 0 = endless
}

// PlayerConfig assigns a color to a seat.
type PlayerConfig struct {
	Color string `yaml:"color"`
}

// Validate reports the first nonsensical value in the config.
func (c TanksConfig) Validate() error {
	var errs []error
	if c.Arena.Cols < 1 || c.Arena.Rows < 1 {
		errs = append(errs, fmt.Errorf("arena must be at least 1x1 cells, got %dx%d", c.Arena.Cols, c.Arena.Rows))
	}
	if c.Arena.CellSize <= 0 || c.Arena.WallThickness <= 0 {
		errs = append(errs, errors.New("arena cell_size and wall_thickness must be positive"))
	}
	if c.Arena.WallChance < 0 || c.Arena.WallChance > 1 {
		errs = append(errs, fmt.Errorf("arena wall_chance must be within [0, 1], got %v", c.Arena.WallChance))
	}
	if c.Arena.Spawn.MaxX < c.Arena.Spawn.MinX || c.Arena.Spawn.MaxY < c.Arena.Spawn.MinY {
		errs = append(errs, errors.New("arena spawn area is inverted"))
	}
	arenaW := float64(c.Arena.Cols) * c.Arena.CellSize
	arenaH := float64(c.Arena.Rows) * c.Arena.CellSize
	if c.Arena.Spawn.MinX < 0 || c.Arena.Spawn.MinY < 0 ||
		float64(c.Arena.Spawn.MaxX) > arenaW || float64(c.Arena.Spawn.MaxY) > arenaH {
		errs = append(errs, fmt.Errorf("arena spawn area must lie within the %gx%g arena", arenaW, arenaH))
	}
	if c.Tank.Width <= 0 || c.Tank.Height <= 0 {
		errs = append(errs, errors.New("tank width and height must be positive"))
	}
	if c.Tank.MoveSpeed <= 0 || c.Tank.TurnSpeed <= 0 {
		errs = append(errs, errors.New("tank move_speed and turn_speed must be positive"))
	}
	if c.Tank.BaseAmmo < 0 || c.Tank.ReloadFrames < 0 {
		errs = append(errs, errors.New("tank base_ammo and reload_frames must not be negative"))
	}
	if c.Projectile.Lifespan <= 0 || c.Projectile.Radius <= 0 {
		errs = append(errs, errors.New("projectile lifespan and radius must be positive"))
	}
	if c.Projectile.Speed < 0 || c.Projectile.Grace < 0 {
		errs = append(errs, errors.New("projectile speed and grace must not be negative"))
	}
	if c.Round.OneLeftTimeout < 0 || c.Round.WinScore < 0 {
		errs = append(errs, errors.New("round timeout and win_score must not be negative"))
	}
	if len(c.Players) != 2 {
		errs = append(errs, fmt.Errorf("exactly 2 players required, got %d", len(c.Players)))
	}
	seen := make(map[core.Color]bool, len(c.Players))
	for i, p := range c.Players {
		color, err := core.ParseColor(p.Color)
		if err != nil {
			errs = append(errs, fmt.Errorf("player %d: %w", i+1, err))
			continue
		}
		if seen[color] {
			errs = append(errs, fmt.Errorf("player %d: color %s already taken", i+1, color))
		}
		seen[color] = true
	}
	return errors.Join(errs...)
}
