// Package config provides YAML-based tuning for the flappy simulation and
// the two fixed difficulty presets.
package config

// Config contains all tuning for a simulation session.
// It is read-only while a session runs.
type Config struct {
	Preset     Preset            `yaml:"preset"`
	Field      Field             `yaml:"field"`
	Physics    Physics           `yaml:"physics"`
	Body       Body              `yaml:"body"`
	Obstacles  Obstacles         `yaml:"obstacles"`
	Presets    map[Preset]Tuning `yaml:"presets"`
	Autopilot  Autopilot         `yaml:"autopilot"`
	Particles  Particles         `yaml:"particles"`
	Audio      Audio             `yaml:"audio"`
	DriftSpeed float64           `yaml:"drift_speed"` // Background drift per nominal frame
}

// Field is the logical play field. Y grows downward; the ground occupies the
// bottom GroundThickness units.
type Field struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GroundThickness float64 `yaml:"ground_thickness"`
}

// GroundY returns the y-coordinate of the ground line.
func (f Field) GroundY() float64 {
	return f.Height - f.GroundThickness
}

// Physics defines integration parameters for the controlled body.
type Physics struct {
	Gravity        float64 `yaml:"gravity"`          // Added to velocity every frame
	FlapVelocity   float64 `yaml:"flap_velocity"`    // Negative = up
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`   // Terminal velocity
	MaxFrameMs     float64 `yaml:"max_frame_ms"`     // Upper clamp for a frame delta
	NominalFrameMs float64 `yaml:"nominal_frame_ms"` // Frame length the per-frame values assume
}

// Body defines the controlled body's geometry, start pose and tilt easing.
type Body struct {
	XRatio          float64 `yaml:"x_ratio"`
	StartYRatio     float64 `yaml:"start_y_ratio"`
	Radius          float64 `yaml:"radius"`
	FlapTilt        float64 `yaml:"flap_tilt"`
	MinTilt         float64 `yaml:"min_tilt"`
	MaxTilt         float64 `yaml:"max_tilt"`
	TiltPerVelocity float64 `yaml:"tilt_per_velocity"`
	TiltBlend       float64 `yaml:"tilt_blend"`
	AnimFrameMs     float64 `yaml:"anim_frame_ms"`
	AnimPhases      int     `yaml:"anim_phases"`
}

// Obstacles defines the obstacle pool and spawn policy.
type Obstacles struct {
	PoolSize          int     `yaml:"pool_size"`
	PipeWidth         float64 `yaml:"pipe_width"`
	SpawnIntervalMs   float64 `yaml:"spawn_interval_ms"`
	SpawnOffset       float64 `yaml:"spawn_offset"`  // Distance past the right edge
	RetireMargin      float64 `yaml:"retire_margin"` // Distance past the left edge
	MinGapFromCeiling float64 `yaml:"min_gap_from_ceiling"`
	CenterFloor       float64 `yaml:"center_floor"` // Lowest allowed minimum gap centre
}

// Tuning is the part of the configuration a preset selects.
type Tuning struct {
	GapHeight float64 `yaml:"gap_height"`
	Speed     float64 `yaml:"speed"` // Units per nominal frame
}

// Autopilot defines the reactive controller.
type Autopilot struct {
	CooldownMs      float64 `yaml:"cooldown_ms"`
	LookaheadFrames float64 `yaml:"lookahead_frames"`
	CeilingMargin   float64 `yaml:"ceiling_margin"`
	AscendThreshold float64 `yaml:"ascend_threshold"`
	Hysteresis      float64 `yaml:"hysteresis"`
	FallbackRatio   float64 `yaml:"fallback_ratio"` // Fraction of the playable height
}

// Particles defines the death burst.
type Particles struct {
	BurstCount   int     `yaml:"burst_count"`
	MaxParticles int     `yaml:"max_particles"`
	Gravity      float64 `yaml:"gravity"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MinLifeMs    float64 `yaml:"min_life_ms"`
	MaxLifeMs    float64 `yaml:"max_life_ms"`
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	PaletteSize  int     `yaml:"palette_size"`
}

// Audio defines the synthesized sound cues.
type Audio struct {
	Volume     float64 `yaml:"volume"` // Linear gain in [0, 1]
	SampleRate int     `yaml:"sample_rate"`
	BufferMs   int     `yaml:"buffer_ms"`
}

// Tuning returns the gap height and obstacle speed for the given preset.
// Unknown presets resolve to the normal preset.
func (c Config) Tuning(p Preset) Tuning {
	if t, ok := c.Presets[p]; ok {
		return t
	}
	return c.Presets[PresetNormal]
}

// Active returns the tuning for the configured preset.
func (c Config) Active() Tuning {
	return c.Tuning(c.Preset)
}

// WithPreset returns a copy of the config with the preset switched.
func (c Config) WithPreset(p Preset) Config {
	c.Preset = p
	return c
}
