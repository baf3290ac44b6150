package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/sim"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Flap       key.Binding
	Start      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Autopilot  key.Binding
	Difficulty key.Binding
	Mute       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Pause, k.Restart, k.Autopilot, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Start, k.Pause, k.Restart},
		{k.Autopilot, k.Difficulty, k.Mute},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Autopilot: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autopilot"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command translates a key to a simulation command. Toggles are resolved
// against the current autopilot flag and preset. Keys that are not
// simulation commands return false.
func (k KeyMap) Command(msg tea.KeyMsg, autopilot bool, preset config.Preset) (sim.Command, bool) {
	switch {
	case key.Matches(msg, k.Flap):
		return sim.Flap(), true
	case key.Matches(msg, k.Start):
		return sim.Start(), true
	case key.Matches(msg, k.Pause):
		return sim.TogglePause(), true
	case key.Matches(msg, k.Restart):
		return sim.Restart(), true
	case key.Matches(msg, k.Autopilot):
		return sim.SetAutopilot(!autopilot), true
	case key.Matches(msg, k.Difficulty):
		return sim.SetDifficulty(preset.Next()), true
	}
	return sim.Command{}, false
}

// resolveToggles returns the autopilot flag and preset the session will hold
// once the pending commands are applied, so repeated toggles between ticks
// alternate instead of repeating.
func resolveToggles(autopilot bool, preset config.Preset, pending []sim.Command) (bool, config.Preset) {
	for _, cmd := range pending {
		switch cmd.Kind {
		case sim.CmdSetAutopilot:
			autopilot = cmd.Enabled
		case sim.CmdSetDifficulty:
			if p, err := config.ParsePreset(string(cmd.Preset)); err == nil {
				preset = p
			}
		}
	}
	return autopilot, preset
}
