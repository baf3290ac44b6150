package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflap/internal/platform/headless"
	"github.com/vovakirdan/skyflap/internal/sim"
	"github.com/vovakirdan/skyflap/internal/storage"
)

var (
	flagDuration time.Duration
	flagFrameMs  float64
	flagSave     bool
	flagVerbose  bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Run the autopilot headless and print the result",
	Long: `Run one session on autopilot with a fixed frame delta and no terminal UI.
Runs with the same seed and frame delta are identical.

Examples:
  skyflap autoplay
  skyflap autoplay --seed 7 --duration 5m
  skyflap autoplay --difficulty easy --frame-ms 33 --save`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().DurationVar(&flagDuration, "duration", time.Minute, "Simulated time limit (0 = until game over)")
	autoplayCmd.Flags().Float64Var(&flagFrameMs, "frame-ms", 0, "Fixed frame delta in ms (0 = nominal frame)")
	autoplayCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the score history")
	autoplayCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Print every scored pair")
}

func runAutoplay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := headless.Options{
		Seed:    seed,
		FrameMs: flagFrameMs,
		MaxMs:   float64(flagDuration / time.Millisecond),
		Logger:  logger,
	}
	if flagVerbose {
		opts.Progress = func(r headless.Result) {
			fmt.Printf("  score %-5d at %8.1fs\n", r.Score, r.ElapsedMs/1000)
		}
	}

	var store *storage.Store
	if flagSave {
		if store = openStore(logger); store != nil {
			defer store.Close()
			opts.Best = storage.NewBestScoreKeeper(store, storage.DefaultBestKey, logger)
		}
	}

	res := headless.Run(cfg, opts)

	outcome := "time limit"
	if res.Cause != sim.HitNone {
		outcome = "hit " + res.Cause.String()
	}
	fmt.Printf("Autoplay - %s (seed %d)\n\n", cfg.Preset, seed)
	fmt.Printf("  %-10s %d\n", "Score", res.Score)
	fmt.Printf("  %-10s %d\n", "Best", res.Best)
	fmt.Printf("  %-10s %.1fs\n", "Time", res.ElapsedMs/1000)
	fmt.Printf("  %-10s %d\n", "Frames", res.Frames)
	fmt.Printf("  %-10s %d\n", "Flaps", res.Flaps)
	fmt.Printf("  %-10s %d\n", "Obstacles", res.Spawns)
	fmt.Printf("  %-10s %s\n", "Ended by", outcome)
	if res.Exhausted > 0 {
		fmt.Printf("  %-10s %d\n", "Pool full", res.Exhausted)
	}
	if res.NewBest {
		fmt.Println("\nNEW BEST!")
	}

	if store != nil && res.Score > 0 {
		_, err := store.SaveRun(storage.Run{
			Preset:     cfg.Preset.String(),
			Score:      res.Score,
			Autopilot:  true,
			DurationMs: int64(res.ElapsedMs),
		})
		if err != nil {
			return fmt.Errorf("cannot save run: %w", err)
		}
	}
	return nil
}
