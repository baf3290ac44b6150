package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/skyflap/internal/config"
)

func TestParticleBurst(t *testing.T) {
	pc := config.Default().Particles
	var ps ParticleSystem

	n := ps.Burst(10, 20, rand.New(rand.NewSource(1)), pc)
	if n != pc.BurstCount || ps.Len() != pc.BurstCount {
		t.Fatalf("Burst() emitted %d (len %d), expected %d", n, ps.Len(), pc.BurstCount)
	}

	for i, p := range ps.Particles() {
		if p.X != 10 || p.Y != 20 {
			t.Errorf("particle %d starts at (%v, %v), expected (10, 20)", i, p.X, p.Y)
		}
		if p.Life < pc.MinLifeMs || p.Life > pc.MaxLifeMs {
			t.Errorf("particle %d life %v outside [%v, %v]", i, p.Life, pc.MinLifeMs, pc.MaxLifeMs)
		}
		if p.Size < pc.MinSize || p.Size > pc.MaxSize {
			t.Errorf("particle %d size %v outside [%v, %v]", i, p.Size, pc.MinSize, pc.MaxSize)
		}
		if p.Color < 0 || p.Color >= pc.PaletteSize {
			t.Errorf("particle %d colour %d outside palette", i, p.Color)
		}
	}
}

func TestParticleCap(t *testing.T) {
	pc := config.Default().Particles
	pc.MaxParticles = 30
	rng := rand.New(rand.NewSource(1))
	var ps ParticleSystem

	ps.Burst(0, 0, rng, pc)
	if n := ps.Burst(0, 0, rng, pc); n != 2 {
		t.Errorf("second Burst() emitted %d, expected 2", n)
	}
	if ps.Len() != pc.MaxParticles {
		t.Errorf("Len() = %d, expected cap %d", ps.Len(), pc.MaxParticles)
	}
}

func TestParticleUpdate(t *testing.T) {
	pc := config.Default().Particles
	ps := ParticleSystem{particles: []Particle{{X: 0, Y: 0, VX: 1, VY: -2, Life: 100}}}

	ps.Update(16, pc)
	p := ps.Particles()[0]
	if p.X != 1 || p.Y != -2 {
		t.Errorf("position = (%v, %v), expected (1, -2)", p.X, p.Y)
	}
	if p.VY != -2+pc.Gravity {
		t.Errorf("VY = %v, expected %v", p.VY, -2+pc.Gravity)
	}
	if p.Age != 16 {
		t.Errorf("Age = %v, expected 16", p.Age)
	}
}

func TestParticlesExpire(t *testing.T) {
	pc := config.Default().Particles
	var ps ParticleSystem
	ps.Burst(0, 0, rand.New(rand.NewSource(3)), pc)

	prev := ps.Len()
	for i := 0; i < 60; i++ {
		ps.Update(1000.0/60, pc)
		if ps.Len() > prev {
			t.Fatalf("particle count grew from %d to %d", prev, ps.Len())
		}
		prev = ps.Len()
	}
	if ps.Len() != 0 {
		t.Errorf("Len() = %d after 1s, expected all expired", ps.Len())
	}
}

func TestParticlesCopyIsDetached(t *testing.T) {
	pc := config.Default().Particles
	var ps ParticleSystem
	ps.Burst(0, 0, rand.New(rand.NewSource(3)), pc)

	out := ps.Particles()
	out[0].X = 999
	if ps.Particles()[0].X == 999 {
		t.Error("Particles() must return a copy")
	}

	ps.Clear()
	if ps.Len() != 0 {
		t.Errorf("Len() = %d after Clear", ps.Len())
	}
}
