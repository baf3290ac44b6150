// skyflap is a terminal side-scroller: keep the body aloft and thread it
// through the gaps between obstacle pairs.
//
// Usage:
//
//	skyflap play             - Play in the terminal
//	skyflap autoplay         - Run the autopilot headless and print the result
//	skyflap scores           - Browse the score history
//	skyflap presets          - List difficulty presets
//	skyflap serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacles
//	--db <path>           - Set database path (default: ~/.skyflap/scores.db)
//	--config <path>       - Use a custom tuning YAML
//	--difficulty <preset> - normal or easy
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyflap",
	Short: "Skyflap - thread the gaps in your terminal",
	Long: `Skyflap is a side-scrolling avoidance game for the terminal.
A body falls under gravity; each flap kicks it upward. Pass between
obstacle pairs without touching them, the ceiling or the ground.

Available commands:
  play      - Play in the terminal
  autoplay  - Let the autopilot fly headless and print the result
  scores    - Browse the score history
  presets   - List difficulty presets
  serve     - Start SSH server for remote play

Examples:
  skyflap play
  skyflap play --difficulty easy --autopilot
  skyflap autoplay --seed 42 --duration 120
  skyflap serve --ssh :2222
  skyflap scores --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyflap/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: normal, easy")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger at the level named by --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyflap",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// openLogFile opens ~/.skyflap/skyflap.log for interactive commands, which
// cannot write to a terminal the UI owns.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".skyflap")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "skyflap.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig loads the tuning and applies --difficulty.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.WithPreset(preset)
	}
	return cfg, nil
}

// openStore opens the score database. Failures are logged and play goes on
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
