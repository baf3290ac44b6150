package sim

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyflap/internal/config"
)

// Session is the explicit context every subsystem works on. It is not safe
// for concurrent use: a driver must serialise all calls into one logical
// turn per frame.
type Session struct {
	cfg       config.Config
	state     State
	body      Body
	pool      *ObstaclePool
	score     ScoreTracker
	autopilot Autopilot
	particles ParticleSystem
	rng       *rand.Rand
	elapsed   float64 // ms of Playing time in the current session
	frame     uint64
	drift     float64
	lastHit   HitCause
	preset    config.Preset // Applied by the next reset

	seed   int64
	store  BestScoreStore
	audio  CuePlayer
	logger *log.Logger
	events []Event
}

// Option configures a Session.
type Option func(*Session)

// WithSeed seeds the session RNG (gap centres and particles).
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithLogger sets the logger used for anomalies.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBestScores attaches the best-score persistence collaborator.
func WithBestScores(store BestScoreStore) Option {
	return func(s *Session) { s.store = store }
}

// WithCuePlayer attaches the audio collaborator.
func WithCuePlayer(p CuePlayer) Option {
	return func(s *Session) { s.audio = p }
}

// WithAutopilot sets the initial autopilot flag. The session still starts
// in Menu; use SetAutopilot to start play from there.
func WithAutopilot(enabled bool) Option {
	return func(s *Session) { s.autopilot.Enabled = enabled }
}

// New creates a session in the Menu state with the body at its start pose
// and an empty pool. The best score is read once from the store.
func New(cfg config.Config, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		state:  StateMenu,
		preset: cfg.Preset,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.rng = rand.New(rand.NewSource(s.seed))
	s.pool = NewObstaclePool(cfg.Obstacles.PoolSize, s.rng)
	s.reset()

	if s.store != nil {
		s.score.SeedBest(s.store.ReadBestScore())
	}
	return s
}

// State returns the active state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score.Score() }

// Best returns the best score.
func (s *Session) Best() int { return s.score.Best() }

// Body returns a copy of the body.
func (s *Session) Body() Body { return s.body }

// Config returns the configuration in effect.
func (s *Session) Config() config.Config { return s.cfg }

// NextPreset returns the preset the next Start or Restart will use.
func (s *Session) NextPreset() config.Preset { return s.preset }

// AutopilotEnabled reports whether the autopilot is on.
func (s *Session) AutopilotEnabled() bool { return s.autopilot.Enabled }

// Pool exposes the obstacle pool for read-only inspection.
func (s *Session) Pool() *ObstaclePool { return s.pool }

// Frame returns the number of frames advanced so far.
func (s *Session) Frame() uint64 { return s.frame }

// ElapsedMs returns the Playing time of the current run.
func (s *Session) ElapsedMs() float64 { return s.elapsed }

// Advance runs one frame: commands are applied in order through the
// acceptance table, then, while Playing, autopilot, body integration,
// obstacle movement and spawning, collision and scoring run in that order.
// Particles and background drift tick in every state.
func (s *Session) Advance(dtMs float64, cmds []Command) []Event {
	dt := s.clampDelta(dtMs)
	s.events = nil

	for _, cmd := range cmds {
		s.apply(cmd)
	}

	switch s.state {
	case StatePlaying:
		s.step(dt)
		s.body.Animate(dt, s.cfg.Body)
	case StateMenu:
		s.body.Animate(dt, s.cfg.Body)
	}

	s.particles.Update(dt, s.cfg.Particles)
	s.drift = math.Mod(s.drift+s.cfg.DriftSpeed*dt/s.cfg.Physics.NominalFrameMs, s.cfg.Field.Width)
	s.frame++

	return s.events
}

// clampDelta maps negative, NaN and oversized deltas into [0, MaxFrameMs].
func (s *Session) clampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	return math.Min(dt, s.cfg.Physics.MaxFrameMs)
}

// apply runs a single command if the current state accepts it.
func (s *Session) apply(cmd Command) {
	if !Accepts(s.state, cmd.Kind) {
		return
	}

	switch cmd.Kind {
	case CmdFlap:
		if s.state == StateMenu {
			s.start()
		}
		s.flap()
	case CmdStart:
		s.start()
	case CmdTogglePause:
		if s.state == StatePlaying {
			s.transition(StatePaused)
		} else {
			s.transition(StatePlaying)
		}
	case CmdRestart:
		s.start()
	case CmdSetAutopilot:
		s.autopilot.Enabled = cmd.Enabled
		if cmd.Enabled && s.state == StateMenu {
			s.start()
		}
	case CmdSetDifficulty:
		p, err := config.ParsePreset(string(cmd.Preset))
		if err != nil {
			s.logger.Warn("ignoring difficulty change", "preset", cmd.Preset, "error", err)
			return
		}
		s.preset = p
	}
}

// step runs the Playing-only part of a frame.
func (s *Session) step(dt float64) {
	s.elapsed += dt

	if s.autopilot.Enabled && s.autopilot.Decide(dt, s.body, s.pool, s.cfg) {
		s.flap()
	}

	cause := s.body.Integrate(s.cfg)

	for _, slot := range s.pool.Advance(dt, s.cfg) {
		s.emit(Event{Kind: EventRetire, Slot: slot})
	}
	for _, r := range s.pool.Schedule(dt, s.cfg) {
		if r.exhausted {
			s.logger.Warn("obstacle pool exhausted, reusing slot 0",
				"capacity", s.pool.Cap(), "interval_ms", s.cfg.Obstacles.SpawnIntervalMs)
			s.emit(Event{Kind: EventPoolExhausted, Slot: r.slot})
		}
		s.emit(Event{Kind: EventSpawn, Slot: r.slot})
	}

	if cause == HitNone {
		if slot, hit := FirstObstacleHit(s.body, s.pool, s.cfg); hit {
			cause = HitObstacle
			s.emit(Event{Kind: EventHit, Slot: slot, Cause: cause})
		}
	} else {
		s.emit(Event{Kind: EventHit, Slot: -1, Cause: cause})
	}

	if cause != HitNone {
		s.die(cause)
		return
	}

	for _, slot := range s.score.Update(s.pool, s.body.X, s.cfg) {
		s.emit(Event{Kind: EventScore, Slot: slot, Score: s.score.Score()})
		s.cue(CueScore)
	}
}

// start resets session data and enters Playing.
func (s *Session) start() {
	s.reset()
	s.transition(StatePlaying)
}

// reset restores the canonical initial session data and switches to the
// requested preset. The best score and the autopilot flag survive.
func (s *Session) reset() {
	s.cfg = s.cfg.WithPreset(s.preset)
	s.body = NewBody(s.cfg)
	s.pool.Clear()
	s.score.Reset()
	s.particles.Clear()
	s.autopilot.reset(s.cfg.Autopilot)
	s.elapsed = 0
	s.lastHit = HitNone
}

func (s *Session) flap() {
	s.body.Flap(s.cfg)
	s.emit(Event{Kind: EventFlap})
	s.cue(CueFlap)
}

// die ends the session: explosion, GameOver, best-score decision.
func (s *Session) die(cause HitCause) {
	s.body.Alive = false
	s.lastHit = cause
	s.cue(CueHit)
	s.particles.Burst(s.body.X, s.body.Y, s.rng, s.cfg.Particles)
	s.transition(StateGameOver)

	if s.score.Finish() {
		s.emit(Event{Kind: EventNewBest, Score: s.score.Best()})
		if s.store != nil {
			s.store.WriteBestScore(s.score.Best())
		}
	}
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	s.emit(Event{Kind: EventStateChanged, From: from, To: to})
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) cue(c Cue) {
	if s.audio != nil {
		s.audio.Cue(c)
	}
}
