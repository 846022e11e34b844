// tanks is a two-player tank arena for the terminal, a desktop window, or SSH.
//
// Usage:
//
//	tanks                    - Start the menu to pick a preset interactively
//	tanks play               - Play a match in this terminal
//	tanks window             - Play a match in a desktop window
//	tanks serve              - Start SSH server for remote play
//	tanks scores             - Show match history
//	tanks presets            - List tuning presets
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for a reproducible maze sequence
//	--db <path>       - Set database path (default: ~/.tanks/matches.db)
//	--config <path>   - Use a custom tanks.yaml
//	--preset <name>   - Tuning preset: classic, frantic, sniper
//	--log <path>      - Write round and match logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagPreset  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tanks",
	Short: "Tank Arena - two players, one keyboard, a random maze",
	Long: `Tank Arena is a two-player maze shooter. Each round builds a fresh maze;
the last tank standing for three seconds scores a point.

Controls:
  Red    W/S     - Drive forward/back
         A/D     - Turn left/right
         Q       - Fire
  Green  Up/Down - Drive forward/back
         Left/Right - Turn left/right
         Space   - Fire
  P              - Pause
  R              - Restart (after the match is over)
  Esc            - Leave the match

Examples:
  tanks
  tanks play --preset frantic
  tanks window --seed 42
  tanks serve --ssh :2222
  tanks scores`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tanks/matches.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tanks config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Tuning preset: classic, frantic, sniper")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write game logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
}

// configureGame applies the global flags to every game created afterwards.
func configureGame(logger *log.Logger) error {
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return err
	}
	tanks.SetConfigPath(flagConfig)
	tanks.SetDefaultPreset(preset)
	tanks.SetDefaultLogger(logger)
	return nil
}

// openLogger returns a file logger when --log is set and a discard logger
// otherwise. The returned close func is always safe to call.
func openLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "tanks",
	})
	return logger, func() { f.Close() }, nil
}

// openStore opens match history. Failure is reported and play continues
// without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		return nil
	}
	return store
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// setup prepares logging and game defaults for a local command.
// Exits on invalid flags.
func setup() (*log.Logger, func()) {
	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := configureGame(logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeLog
}
