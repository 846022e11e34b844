package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := DefaultTanksConfig()
	if cfg.Arena.Cols != def.Arena.Cols || cfg.Arena.Rows != def.Arena.Rows {
		t.Errorf("arena = %dx%d, expected %dx%d", cfg.Arena.Cols, cfg.Arena.Rows, def.Arena.Cols, def.Arena.Rows)
	}
	if cfg.Tank != def.Tank {
		t.Errorf("tank = %+v, expected %+v", cfg.Tank, def.Tank)
	}
	if cfg.Projectile != def.Projectile {
		t.Errorf("projectile = %+v, expected %+v", cfg.Projectile, def.Projectile)
	}
	if len(cfg.Players) != 2 || cfg.Players[0].Color != "red" || cfg.Players[1].Color != "green" {
		t.Errorf("players = %+v, expected red and green", cfg.Players)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("tank:\n  base_ammo: 3\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Tank.BaseAmmo != 3 {
		t.Errorf("BaseAmmo = %d, expected 3", cfg.Tank.BaseAmmo)
	}
	if cfg.Tank.MoveSpeed != 110 {
		t.Errorf("MoveSpeed = %v, expected default 110", cfg.Tank.MoveSpeed)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero columns", "arena:\n  cols: 0\n"},
		{"wall chance above one", "arena:\n  wall_chance: 1.5\n"},
		{"negative ammo", "tank:\n  base_ammo: -1\n"},
		{"zero move speed", "tank:\n  move_speed: 0\n"},
		{"negative turn speed", "tank:\n  turn_speed: -90\n"},
		{"negative shell speed", "projectile:\n  speed: -1\n"},
		{"negative grace", "projectile:\n  grace: -0.1\n"},
		{"spawn past right edge", "arena:\n  spawn:\n    max_x: 2000\n"},
		{"spawn past bottom edge", "arena:\n  spawn:\n    max_y: 701\n"},
		{"spawn left of arena", "arena:\n  spawn:\n    min_x: -10\n"},
		{"one player", "players:\n  - color: red\n"},
		{"unknown color", "players:\n  - color: red\n  - color: purple\n"},
		{"same color twice", "players:\n  - color: blue\n  - color: blue\n"},
		{"not yaml", "tank: [1, 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Error("Parse() should fail")
			}
		})
	}
}

func TestLoadTanksCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("round:\n  win_score: 7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadTanks(path)
	if err != nil {
		t.Fatalf("LoadTanks() failed: %v", err)
	}
	if cfg.Round.WinScore != 7 {
		t.Errorf("WinScore = %d, expected 7", cfg.Round.WinScore)
	}

	if _, err := LoadTanks(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadTanks() with missing custom path should fail")
	}
}

func TestPresets(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != PresetClassic {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected classic", p, err)
	}
	if _, err := ParsePreset("turbo"); err == nil {
		t.Error("ParsePreset(turbo) should fail")
	}

	cfg := DefaultTanksConfig()
	ApplyPreset(&cfg, PresetSniper)
	if cfg.Tank.BaseAmmo != 1 {
		t.Errorf("sniper BaseAmmo = %d, expected 1", cfg.Tank.BaseAmmo)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sniper preset should stay valid: %v", err)
	}

	classic := DefaultTanksConfig()
	ApplyPreset(&classic, PresetClassic)
	if classic.Tank != DefaultTanksConfig().Tank {
		t.Error("classic preset should not change tuning")
	}
}
