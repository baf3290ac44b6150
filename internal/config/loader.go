package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the simulation configuration.
// Search order: customPath -> ~/.skyflap/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
// Documents are decoded over Default(), so partial files only override the
// keys they name.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flappy.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := mergePresets(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergePresets re-decodes each presets entry over the built-in tuning. yaml
// replaces map values wholesale, so without this a partial entry would zero
// the fields it does not name.
func mergePresets(data []byte, cfg *Config) error {
	var doc struct {
		Presets map[Preset]yaml.Node `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Presets) == 0 {
		return nil
	}

	defaults := Default().Presets
	if cfg.Presets == nil {
		cfg.Presets = make(map[Preset]Tuning, len(doc.Presets))
	}
	for p, node := range doc.Presets {
		t := defaults[p]
		if err := node.Decode(&t); err != nil {
			return fmt.Errorf("presets.%s: %w", p, err)
		}
		cfg.Presets[p] = t
	}
	return nil
}

// Validate reports every field that would make the simulation ill-defined.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Field.Width > 0, "field.width must be positive, got %v", c.Field.Width)
	check(c.Field.Height > 0, "field.height must be positive, got %v", c.Field.Height)
	check(c.Field.GroundThickness >= 0 && c.Field.GroundThickness < c.Field.Height,
		"field.ground_thickness must be in [0, height), got %v", c.Field.GroundThickness)
	check(c.Physics.MaxFrameMs > 0, "physics.max_frame_ms must be positive, got %v", c.Physics.MaxFrameMs)
	check(c.Physics.NominalFrameMs > 0, "physics.nominal_frame_ms must be positive, got %v", c.Physics.NominalFrameMs)
	check(c.Physics.MaxFallSpeed > 0, "physics.max_fall_speed must be positive, got %v", c.Physics.MaxFallSpeed)
	check(c.Body.Radius > 0, "body.radius must be positive, got %v", c.Body.Radius)
	check(c.Body.Radius*2 < c.Field.GroundY(), "body.radius does not fit the playable height")
	check(c.Body.AnimPhases > 0, "body.anim_phases must be at least 1, got %d", c.Body.AnimPhases)
	check(c.Obstacles.PoolSize > 0, "obstacles.pool_size must be at least 1, got %d", c.Obstacles.PoolSize)
	check(c.Obstacles.PipeWidth > 0, "obstacles.pipe_width must be positive, got %v", c.Obstacles.PipeWidth)
	check(c.Obstacles.SpawnIntervalMs > 0, "obstacles.spawn_interval_ms must be positive, got %v", c.Obstacles.SpawnIntervalMs)
	check(c.Particles.MaxParticles >= 0, "particles.max_particles must not be negative")
	check(c.Particles.MaxLifeMs >= c.Particles.MinLifeMs, "particles.max_life_ms must be >= min_life_ms")
	check(c.Particles.PaletteSize > 0, "particles.palette_size must be at least 1")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	check(c.Audio.BufferMs > 0, "audio.buffer_ms must be positive, got %d", c.Audio.BufferMs)

	for _, p := range Presets() {
		t, ok := c.Presets[p]
		if !ok {
			errs = append(errs, fmt.Errorf("config: preset %q is missing", p))
			continue
		}
		check(t.GapHeight > 0, "presets.%s.gap_height must be positive, got %v", p, t.GapHeight)
		check(t.Speed > 0, "presets.%s.speed must be positive, got %v", p, t.Speed)
	}
	if _, err := ParsePreset(string(c.Preset)); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyflap", "configs", filename)
}
