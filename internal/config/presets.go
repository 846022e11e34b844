package config

import "fmt"

// Preset represents a named tuning variant.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetFrantic Preset = "frantic"
	PresetSniper  Preset = "sniper"
)

// ParsePreset validates a preset name. Empty means classic.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case "", PresetClassic:
		return PresetClassic, nil
	case PresetFrantic, PresetSniper:
		return Preset(name), nil
	default:
		return "", fmt.Errorf("unknown preset %q (want classic, frantic or sniper)", name)
	}
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *TanksConfig, preset Preset) {
	switch preset {
	case PresetFrantic:
		cfg.Tank.MoveSpeed *= 1.5
		cfg.Tank.TurnSpeed *= 1.5
		cfg.Tank.ReloadFrames = 5
		cfg.Tank.BaseAmmo = 8
		cfg.Projectile.Lifespan = 6
		cfg.Round.OneLeftTimeout = 2
	case PresetSniper:
		cfg.Tank.BaseAmmo = 1
		cfg.Projectile.Speed *= 2
		cfg.Projectile.Lifespan = 5
		cfg.Arena.WallChance = 0.2
	}
}
