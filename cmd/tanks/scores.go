package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/games/tanks"
	"github.com/vovakirdan/tui-tanks/internal/platform/tui"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show match history",
	Long: `Display recent matches and wins per color.

Examples:
  tanks scores
  tanks scores --limit 25
  tanks scores --interactive
  tanks scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent matches to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(tanks.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Println("Match history cleared.")
		return
	}

	if flagInteractive {
		cfg := terminalConfig()
		if _, err := tui.RunScoreboard(store, tanks.ID, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printScores(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
	}
}

func printScores(store *storage.Store) error {
	matches, err := store.RecentMatches(tanks.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Match History - Tank Arena")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tanks play' and finish a match to record one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-15s  %-15s  %-6s  %s\n", "Date", "Seat 1", "Seat 2", "Rounds", "Winner")
	fmt.Printf("  %-16s  %-15s  %-15s  %-6s  %s\n", "----", "------", "------", "------", "------")

	for _, m := range matches {
		winner := m.Winner
		if winner == "" {
			winner = "-"
		}
		fmt.Printf("  %-16s  %-15s  %-15s  %-6d  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%s %d", m.Color1, m.Score1),
			fmt.Sprintf("%s %d", m.Color2, m.Score2),
			m.Rounds,
			winner,
		)
	}

	totals, err := store.ColorTotals(tanks.ID)
	if err != nil {
		return err
	}

	total, err := store.MatchCount(tanks.ID)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Totals over %d matches:\n", total)
	for _, cs := range totals {
		fmt.Printf("  %-8s %3d wins  %3d rounds won\n", cs.Color, cs.Wins, cs.Points)
	}
	return nil
}
