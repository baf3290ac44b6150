package sim

import "github.com/vovakirdan/skyflap/internal/config"

// Autopilot is a reactive controller that flaps based only on the body and
// the nearest obstacle ahead. It aims for competent play, not guaranteed
// survival.
type Autopilot struct {
	Enabled   bool
	sinceFlap float64 // ms since the last synthetic flap
}

// reset makes the next decision eligible to flap immediately.
func (a *Autopilot) reset(cfg config.Autopilot) {
	a.sinceFlap = cfg.CooldownMs
}

// Target returns the y the autopilot steers toward: the gap centre of the
// nearest pair whose trailing edge has not passed the body, or a fixed
// fallback below the middle of the playable height.
func (a *Autopilot) Target(b Body, pool *ObstaclePool, cfg config.Config) float64 {
	best := -1
	for i := range pool.slots {
		pair := pool.slots[i]
		if !pair.Active || pair.X+cfg.Obstacles.PipeWidth < b.X {
			continue
		}
		if best < 0 || pair.X < pool.slots[best].X {
			best = i
		}
	}
	if best < 0 {
		return cfg.Field.GroundY() * cfg.Autopilot.FallbackRatio
	}
	return pool.slots[best].GapCenter
}

// Project returns the body's position after the lookahead horizon under
// constant gravity: y + v*K + g*K*K/2.
func Project(b Body, cfg config.Config) float64 {
	k := cfg.Autopilot.LookaheadFrames
	return b.Y + b.VY*k + 0.5*cfg.Physics.Gravity*k*k
}

// Decide advances the cooldown by dt and reports whether to flap this frame.
func (a *Autopilot) Decide(dtMs float64, b Body, pool *ObstaclePool, cfg config.Config) bool {
	ac := cfg.Autopilot
	a.sinceFlap += dtMs
	if a.sinceFlap < ac.CooldownMs {
		return false
	}

	// Never flap near the ceiling or while already rising fast.
	if b.Top() < ac.CeilingMargin || b.VY < -ac.AscendThreshold {
		return false
	}

	if Project(b, cfg) > a.Target(b, pool, cfg)+ac.Hysteresis {
		a.sinceFlap = 0
		return true
	}
	return false
}
