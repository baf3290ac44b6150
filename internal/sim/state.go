// Package sim implements the flappy simulation core: body integration,
// the obstacle pool, collision, scoring, the session state machine, the
// autopilot and the death particle burst.
//
// The package performs no I/O and owns no clock. A driver delivers elapsed
// frame time to Session.Advance together with the commands collected since
// the previous frame, and receives the events that frame produced.
package sim

import "github.com/vovakirdan/skyflap/internal/config"

// State is the session state. Exactly one is active at a time.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
	numStates
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// CommandKind identifies one of the commands the core accepts.
type CommandKind int

const (
	CmdFlap CommandKind = iota
	CmdStart
	CmdTogglePause
	CmdRestart
	CmdSetAutopilot
	CmdSetDifficulty
	numCommands
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdFlap:
		return "Flap"
	case CmdStart:
		return "Start"
	case CmdTogglePause:
		return "TogglePause"
	case CmdRestart:
		return "Restart"
	case CmdSetAutopilot:
		return "SetAutopilot"
	case CmdSetDifficulty:
		return "SetDifficulty"
	default:
		return "Unknown"
	}
}

// Command is a single input to the session. Enabled is read by
// CmdSetAutopilot and Preset by CmdSetDifficulty.
type Command struct {
	Kind    CommandKind
	Enabled bool
	Preset  config.Preset
}

// Flap returns an impulse command.
func Flap() Command { return Command{Kind: CmdFlap} }

// Start returns the explicit start command.
func Start() Command { return Command{Kind: CmdStart} }

// TogglePause returns the pause toggle command.
func TogglePause() Command { return Command{Kind: CmdTogglePause} }

// Restart returns the restart command.
func Restart() Command { return Command{Kind: CmdRestart} }

// SetAutopilot returns a command enabling or disabling the autopilot.
func SetAutopilot(enabled bool) Command {
	return Command{Kind: CmdSetAutopilot, Enabled: enabled}
}

// SetDifficulty returns a command selecting a difficulty preset.
func SetDifficulty(p config.Preset) Command {
	return Command{Kind: CmdSetDifficulty, Preset: p}
}

// acceptance is the single gate for commands: a command whose entry is false
// for the current state is dropped without effect.
var acceptance = [numCommands][numStates]bool{
	//                 Menu   Playing Paused GameOver
	CmdFlap:          {true, true, false, false},
	CmdStart:         {true, false, false, false},
	CmdTogglePause:   {false, true, true, false},
	CmdRestart:       {false, false, false, true},
	CmdSetAutopilot:  {true, true, true, true},
	CmdSetDifficulty: {true, false, false, true},
}

// Accepts reports whether the command kind has any effect in state s.
func Accepts(s State, k CommandKind) bool {
	if s < 0 || s >= numStates || k < 0 || k >= numCommands {
		return false
	}
	return acceptance[k][s]
}
