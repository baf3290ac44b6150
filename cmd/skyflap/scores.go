package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/platform/tui"
	"github.com/vovakirdan/skyflap/internal/storage"
)

var (
	flagPlain         bool
	flagWithAutopilot bool
	flagClear         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the score history",
	Long: `Show the score history for a difficulty preset.

By default an interactive table opens; --plain prints the top 10 instead.
Autopilot runs are hidden unless --autopilot is given.

Examples:
  skyflap scores
  skyflap scores --difficulty easy --plain
  skyflap scores --plain --autopilot
  skyflap scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the top 10 instead of opening the table")
	scoresCmd.Flags().BoolVar(&flagWithAutopilot, "autopilot", false, "Include autopilot runs")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the preset (the best score is kept)")
}

func runScores(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(preset.String()); err != nil {
			return err
		}
		fmt.Printf("Cleared %s history.\n", preset)
		return nil
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, preset, width, height)
	}

	scores, err := store.TopScores(preset.String(), 10, flagWithAutopilot)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", preset)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skyflap play --difficulty %s' to set the first high score!\n", preset)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-4s  %s\n", "Rank", "Score", "Time", "Auto", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-4s  %s\n", "----", "-----", "----", "----", "----")

	for i, entry := range scores {
		auto := ""
		if entry.Autopilot {
			auto = "yes"
		}
		fmt.Printf("  %-4d  %-6d  %-6.1f  %-4s  %s\n",
			i+1, entry.Score, float64(entry.DurationMs)/1000, auto,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.ReadBest(storage.DefaultBestKey); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
