package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
	"github.com/vovakirdan/tui-tanks/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match in the terminal",
	Long: `Start a two-player match in this terminal.

Terminals report key presses but not releases, so a key counts as held
for a short moment after its last press or auto-repeat.

Presets:
  classic - The original tuning
  frantic - Faster tanks, quicker reloads, bigger magazines
  sniper  - One fast shell each

Examples:
  tanks play
  tanks play --preset sniper
  tanks play --config ./my-tanks.yaml --log ./tanks.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := setup()

	store := openStore()
	runErr := tui.Run(tanks.New(), store, terminalConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
