package sim

import "github.com/vovakirdan/skyflap/internal/config"

// ObstacleView is the render-facing geometry of one active pair.
type ObstacleView struct {
	Slot   int
	Top    Rect
	Bottom Rect
	Scored bool
}

// Snapshot is a read-only copy of everything a renderer needs. Mutating it
// has no effect on the session.
type Snapshot struct {
	Frame      uint64
	State      State
	Body       Body
	Obstacles  []ObstacleView
	Particles  []Particle
	Score      int
	Best       int
	Autopilot  bool
	Preset     config.Preset
	NextPreset config.Preset // Preset of the next run; differs from Preset after a pending change
	Field      config.Field
	Drift      float64
	ElapsedMs  float64
	LastHit    HitCause
}

// Snapshot copies the session state for rendering.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, 0, s.pool.Cap())
	for i := range s.pool.slots {
		pair := s.pool.slots[i]
		if !pair.Active {
			continue
		}
		top, bottom := PairRects(pair, s.cfg)
		obstacles = append(obstacles, ObstacleView{
			Slot:   i,
			Top:    top,
			Bottom: bottom,
			Scored: pair.Scored,
		})
	}

	return Snapshot{
		Frame:      s.frame,
		State:      s.state,
		Body:       s.body,
		Obstacles:  obstacles,
		Particles:  s.particles.Particles(),
		Score:      s.score.Score(),
		Best:       s.score.Best(),
		Autopilot:  s.autopilot.Enabled,
		Preset:     s.cfg.Preset,
		NextPreset: s.preset,
		Field:      s.cfg.Field,
		Drift:      s.drift,
		ElapsedMs:  s.elapsed,
		LastHit:    s.lastHit,
	}
}
