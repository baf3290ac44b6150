package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/sim"
)

// sink is the output device. The speaker is the only production sink.
type sink interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Close()
}

// speakerSink feeds a single mixer into the system speaker.
type speakerSink struct {
	mixer beep.Mixer
}

func (k *speakerSink) Init(rate beep.SampleRate, bufferSize int) error {
	if err := speaker.Init(rate, bufferSize); err != nil {
		return err
	}
	speaker.Play(&k.mixer)
	return nil
}

func (k *speakerSink) Play(s beep.Streamer) {
	speaker.Lock()
	k.mixer.Add(s)
	speaker.Unlock()
}

func (k *speakerSink) Close() {
	speaker.Lock()
	k.mixer.Clear()
	speaker.Unlock()
}

// Player turns simulation cues into sound. The device is opened on the first
// cue; if that fails the player stays silent for the rest of its life.
type Player struct {
	mu       sync.Mutex
	out      sink
	rate     beep.SampleRate
	buffer   time.Duration
	gain     float64
	muted    bool
	ready    bool
	disabled bool
	logger   *log.Logger
}

// NewPlayer creates a player for the given audio settings.
func NewPlayer(cfg config.Audio, muted bool, logger *log.Logger) *Player {
	return newPlayer(&speakerSink{}, cfg, muted, logger)
}

func newPlayer(out sink, cfg config.Audio, muted bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		out:    out,
		rate:   beep.SampleRate(cfg.SampleRate),
		buffer: time.Duration(cfg.BufferMs) * time.Millisecond,
		gain:   cfg.Volume,
		muted:  muted,
		logger: logger,
	}
}

// Cue plays c without blocking. It is a no-op while muted or when no audio
// device is available.
func (p *Player) Cue(c sim.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.disabled {
		return
	}
	if !p.ready {
		if err := p.out.Init(p.rate, p.rate.N(p.buffer)); err != nil {
			p.disabled = true
			p.logger.Warn("audio unavailable, continuing without sound", "error", err)
			return
		}
		p.ready = true
	}

	if s := Synthesize(c, p.rate, p.gain); s != nil {
		p.out.Play(s)
	}
}

// SetMuted mutes or unmutes the player.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops every sound still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		p.out.Close()
	}
}
