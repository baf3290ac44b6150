package sim

import (
	"math"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
)

// Body is the controlled entity. X is fixed for the life of a session.
type Body struct {
	X      float64
	Y      float64
	VY     float64 // Positive = down
	Angle  float64 // Radians, positive = nose down
	Phase  int     // Animation phase in [0, AnimPhases)
	Alive  bool
	Radius float64

	animAcc float64
}

// NewBody returns the canonical start pose for the given configuration.
func NewBody(cfg config.Config) Body {
	return Body{
		X:      cfg.Field.Width * cfg.Body.XRatio,
		Y:      cfg.Field.Height * cfg.Body.StartYRatio,
		Alive:  true,
		Radius: cfg.Body.Radius,
	}
}

// Flap applies an upward impulse and snaps the tilt upward.
func (b *Body) Flap(cfg config.Config) {
	b.VY = cfg.Physics.FlapVelocity
	b.Angle = cfg.Body.FlapTilt
}

// Integrate advances the body by one frame and checks the field boundaries.
// Gravity is applied per frame; the tuning assumes the nominal frame rate.
// A breached boundary clamps the body and is reported as the hit cause.
func (b *Body) Integrate(cfg config.Config) HitCause {
	b.VY += cfg.Physics.Gravity
	if b.VY > cfg.Physics.MaxFallSpeed {
		b.VY = cfg.Physics.MaxFallSpeed
	}
	b.Y += b.VY

	target := core.ClampF(b.VY*cfg.Body.TiltPerVelocity, cfg.Body.MinTilt, cfg.Body.MaxTilt)
	b.Angle += (target - b.Angle) * cfg.Body.TiltBlend

	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		return HitCeiling
	}
	groundY := cfg.Field.GroundY()
	if b.Y+b.Radius >= groundY {
		b.Y = groundY - b.Radius
		return HitGround
	}
	return HitNone
}

// Animate advances the animation phase on a fixed cadence of elapsed time,
// independent of physics.
func (b *Body) Animate(elapsedMs float64, bc config.Body) {
	if bc.AnimPhases <= 0 || bc.AnimFrameMs <= 0 {
		return
	}
	if elapsedMs <= 0 || math.IsNaN(elapsedMs) || math.IsInf(elapsedMs, 0) {
		return
	}
	b.animAcc += elapsedMs
	steps := int(b.animAcc / bc.AnimFrameMs)
	if steps == 0 {
		return
	}
	b.animAcc -= float64(steps) * bc.AnimFrameMs
	b.Phase = (b.Phase + steps) % bc.AnimPhases
}

// Top returns the y-coordinate of the top of the body.
func (b Body) Top() float64 {
	return b.Y - b.Radius
}

// Bottom returns the y-coordinate of the bottom of the body.
func (b Body) Bottom() float64 {
	return b.Y + b.Radius
}

// Circle returns the body's collision circle.
func (b Body) Circle() Circle {
	return Circle{X: b.X, Y: b.Y, R: b.Radius}
}
