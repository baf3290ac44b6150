package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in tuning. It mirrors defaults/flappy.yaml and is
// used when the embedded document cannot be parsed.
func Default() Config {
	return Config{
		Preset: PresetNormal,
		Field: Field{
			Width:           480,
			Height:          640,
			GroundThickness: 80,
		},
		Physics: Physics{
			Gravity:        0.45,
			FlapVelocity:   -7.6,
			MaxFallSpeed:   12.0,
			MaxFrameMs:     32,
			NominalFrameMs: 16.6667,
		},
		Body: Body{
			XRatio:          0.28,
			StartYRatio:     0.4,
			Radius:          14,
			FlapTilt:        -0.45,
			MinTilt:         -0.45,
			MaxTilt:         1.35,
			TiltPerVelocity: 0.08,
			TiltBlend:       0.15,
			AnimFrameMs:     120,
			AnimPhases:      3,
		},
		Obstacles: Obstacles{
			PoolSize:          8,
			PipeWidth:         70,
			SpawnIntervalMs:   1400,
			SpawnOffset:       10,
			RetireMargin:      10,
			MinGapFromCeiling: 60,
			CenterFloor:       120,
		},
		Presets: map[Preset]Tuning{
			PresetNormal: {GapHeight: 150, Speed: 2.6},
			PresetEasy:   {GapHeight: 190, Speed: 2.0},
		},
		Autopilot: Autopilot{
			CooldownMs:      160,
			LookaheadFrames: 10,
			CeilingMargin:   48,
			AscendThreshold: 3.0,
			Hysteresis:      130,
			FallbackRatio:   0.55,
		},
		Particles: Particles{
			BurstCount:   28,
			MaxParticles: 256,
			Gravity:      0.12,
			MinSpeed:     1.0,
			MaxSpeed:     4.5,
			MinLifeMs:    450,
			MaxLifeMs:    900,
			MinSize:      2,
			MaxSize:      5,
			PaletteSize:  4,
		},
		Audio: Audio{
			Volume:     0.5,
			SampleRate: 44100,
			BufferMs:   50,
		},
		DriftSpeed: 0.6,
	}
}
