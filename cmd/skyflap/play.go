package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyflap/internal/audio"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/platform/tui"
)

var (
	flagAutopilot bool
	flagMute      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a session in the terminal.

Controls:
  Space/Up/W/K - Flap (also starts from the menu)
  Enter        - Start
  P/Esc        - Pause
  R            - Restart (after game over)
  A            - Toggle autopilot
  D            - Switch difficulty (menu and game over only)
  M            - Mute
  ?            - More help
  Q/Ctrl+C     - Quit

Examples:
  skyflap play
  skyflap play --difficulty easy
  skyflap play --autopilot --mute
  skyflap play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Start with the autopilot engaged")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW, runtime.ScreenH = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player := audio.NewPlayer(cfg.Audio, flagMute, logger)
	defer player.Close()

	err = tui.Run(tui.Options{
		Config:    cfg,
		Runtime:   runtime,
		Store:     store,
		Audio:     player,
		Autopilot: flagAutopilot,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
