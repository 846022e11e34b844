package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
	"github.com/vovakirdan/tui-tanks/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play a match in a desktop window",
	Long: `Open a desktop window and play a two-player match there.

Keys are read as held, so driving needs no key repeat.
Press Esc or close the window to quit.

Examples:
  tanks window
  tanks window --preset frantic --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger, closeLog := setup()

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed

	store := openStore()
	runErr := desktop.Run(tanks.New(), store, cfg, logger)

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
