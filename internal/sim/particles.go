package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/skyflap/internal/config"
)

// Particle is a purely cosmetic explosion fragment.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64 // ms
	Life   float64 // ms
	Size   float64
	Color  int // Palette index
}

// ParticleSystem holds live particles. Expired particles are compacted out
// every update so the collection stays bounded by MaxParticles.
type ParticleSystem struct {
	particles []Particle
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Particles returns a copy of the live particles.
func (ps *ParticleSystem) Particles() []Particle {
	out := make([]Particle, len(ps.particles))
	copy(out, ps.particles)
	return out
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Burst emits up to BurstCount particles at (x, y), stopping at the cap.
// Returns the number emitted.
func (ps *ParticleSystem) Burst(x, y float64, rng *rand.Rand, pc config.Particles) int {
	n := 0
	for i := 0; i < pc.BurstCount && len(ps.particles) < pc.MaxParticles; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := lerp(pc.MinSpeed, pc.MaxSpeed, rng.Float64())
		ps.particles = append(ps.particles, Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  lerp(pc.MinLifeMs, pc.MaxLifeMs, rng.Float64()),
			Size:  lerp(pc.MinSize, pc.MaxSize, rng.Float64()),
			Color: rng.Intn(max(pc.PaletteSize, 1)),
		})
		n++
	}
	return n
}

// Update integrates and ages every particle, dropping expired ones.
func (ps *ParticleSystem) Update(dtMs float64, pc config.Particles) {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += pc.Gravity
		p.Age += dtMs
		if p.Age > p.Life {
			continue
		}
		live = append(live, p)
	}
	ps.particles = live
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
