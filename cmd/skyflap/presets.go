package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflap/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets and the gap and speed each one selects.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %s\n", "Preset", "Gap", "Speed")
	fmt.Printf("  %-8s  %-5s  %s\n", "------", "---", "-----")

	for _, p := range config.Presets() {
		t := cfg.Tuning(p)
		marker := ""
		if p == cfg.Preset {
			marker = "  (selected)"
		}
		fmt.Printf("  %-8s  %-5.0f  %.1f%s\n", p, t.GapHeight, t.Speed, marker)
	}

	fmt.Println()
	fmt.Println("Run 'skyflap play --difficulty <preset>' to play.")
	return nil
}
