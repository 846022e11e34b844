package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List tuning presets",
	Long:  `Shows the tuning each preset applies on top of the loaded config.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	base, err := config.LoadTanks(flagConfig)
	if err != nil {
		fmt.Printf("Warning: %v (showing defaults)\n\n", err)
		base = config.DefaultTanksConfig()
	}

	presets := []config.Preset{config.PresetClassic, config.PresetFrantic, config.PresetSniper}

	// Print header
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-6s  %s\n", "Preset", "Speed", "Turn", "Ammo", "Reload", "Shell")
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-6s  %s\n", "------", "-----", "----", "----", "------", "-----")

	for _, p := range presets {
		cfg := base
		config.ApplyPreset(&cfg, p)
		fmt.Printf("  %-8s  %-6.0f  %-6.0f  %-6d  %-6d  %.0f\n",
			p, cfg.Tank.MoveSpeed, cfg.Tank.TurnSpeed, cfg.Tank.BaseAmmo, cfg.Tank.ReloadFrames, cfg.Projectile.Speed)
	}

	fmt.Println()
	fmt.Println("Run 'tanks play --preset <name>' to use one.")
}
