package config

import (
	_ "embed"
)

//go:embed defaults/tanks.yaml
var defaultTanksYAML []byte

// DefaultTanksConfig returns the built-in tuning, used when the embedded YAML
// cannot be parsed.
func DefaultTanksConfig() TanksConfig {
	return TanksConfig{
		Arena: ArenaConfig{
			Cols:          15,
			Rows:          10,
			CellSize:      70,
			WallThickness: 6,
			WallChance:    1.0 / 3.0,
			Spawn: SpawnArea{
				MinX: 50,
				MaxX: 750,
				MinY: 50,
				MaxY: 420,
			},
		},
		Tank: TankConfig{
			Width:        26,
			Height:       32,
			TurnSpeed:    90,
			MoveSpeed:    110,
			ReloadFrames: 10,
			BaseAmmo:     5,
		},
		Projectile: ProjectileConfig{
			Lifespan: 10,
			Radius:   5,
			Speed:    230,
			Grace:    0.25,
		},
		Round: RoundConfig{
			OneLeftTimeout: 3,
			WinScore:       0,
		},
		Players: []PlayerConfig{
			{Color: "red"},
			{Color: "green"},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTanksYAML
}
