// Package headless drives a session with a fixed frame delta and no
// terminal, for benchmarking the autopilot and reproducing runs by seed.
package headless

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/sim"
)

// Options configures a headless run.
type Options struct {
	Seed     int64
	FrameMs  float64 // Fixed delta per frame; <= 0 selects the nominal frame
	MaxMs    float64 // Simulated time limit; <= 0 runs until game over
	Best     sim.BestScoreStore
	Logger   *log.Logger
	Progress func(r Result) // Optional; called after every scored pair
}

// Result summarises a finished run.
type Result struct {
	Score     int
	Best      int
	NewBest   bool
	Frames    uint64
	ElapsedMs float64
	Cause     sim.HitCause // HitNone when the time limit ended the run
	Flaps     int
	Spawns    int
	Exhausted int // Pool exhaustion events
}

// maxFrames bounds runs without a time limit.
const maxFrames = 10_000_000

// Run plays one session on autopilot until it ends or the time limit passes.
func Run(cfg config.Config, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	frameMs := opts.FrameMs
	if frameMs <= 0 {
		frameMs = cfg.Physics.NominalFrameMs
	}

	simOpts := []sim.Option{
		sim.WithSeed(opts.Seed),
		sim.WithLogger(logger),
		sim.WithAutopilot(true),
	}
	if opts.Best != nil {
		simOpts = append(simOpts, sim.WithBestScores(opts.Best))
	}
	s := sim.New(cfg, simOpts...)

	var res Result
	cmds := []sim.Command{sim.Start()}
	for s.Frame() < maxFrames {
		for _, e := range s.Advance(frameMs, cmds) {
			switch e.Kind {
			case sim.EventFlap:
				res.Flaps++
			case sim.EventSpawn:
				res.Spawns++
			case sim.EventPoolExhausted:
				res.Exhausted++
			case sim.EventNewBest:
				res.NewBest = true
			case sim.EventHit:
				res.Cause = e.Cause
			case sim.EventScore:
				if opts.Progress != nil {
					opts.Progress(snapshotResult(s, res))
				}
			}
		}
		cmds = nil

		if s.State() == sim.StateGameOver {
			break
		}
		if opts.MaxMs > 0 && s.ElapsedMs() >= opts.MaxMs {
			logger.Debug("time limit reached", "elapsed_ms", opts.MaxMs, "score", s.Score())
			break
		}
	}

	return snapshotResult(s, res)
}

func snapshotResult(s *sim.Session, res Result) Result {
	res.Score = s.Score()
	res.Best = s.Best()
	res.Frames = s.Frame()
	res.ElapsedMs = s.ElapsedMs()
	return res
}
