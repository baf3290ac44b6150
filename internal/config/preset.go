package config

import (
	"errors"
	"fmt"
	"strings"
)

// Preset names one of the fixed difficulty presets.
type Preset string

const (
	PresetNormal Preset = "normal"
	PresetEasy   Preset = "easy"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognised names.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// Presets lists the known presets in display order.
func Presets() []Preset {
	return []Preset{PresetNormal, PresetEasy}
}

// ParsePreset resolves a preset name. An empty name selects normal.
func ParsePreset(name string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "normal":
		return PresetNormal, nil
	case "easy":
		return PresetEasy, nil
	default:
		return "", fmt.Errorf("config: %w %q", ErrUnknownPreset, name)
	}
}

// Next cycles to the other preset.
func (p Preset) Next() Preset {
	if p == PresetEasy {
		return PresetNormal
	}
	return PresetEasy
}

// String returns the preset name.
func (p Preset) String() string {
	return string(p)
}
