package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyflap/internal/audio"
	"github.com/vovakirdan/skyflap/internal/config"
	"github.com/vovakirdan/skyflap/internal/core"
	"github.com/vovakirdan/skyflap/internal/sim"
	"github.com/vovakirdan/skyflap/internal/storage"
)

// Options configures a play Model.
type Options struct {
	Config    config.Config
	Runtime   core.RuntimeConfig
	Store     *storage.Store // Optional; nil disables history and best-score persistence
	BestKey   string         // Best-score row; empty selects storage.DefaultBestKey
	Audio     *audio.Player  // Optional
	Autopilot bool           // Start with the autopilot engaged
	Logger    *log.Logger
}

// Model is the Bubble Tea model that drives one simulation session.
type Model struct {
	session *sim.Session
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	store   *storage.Store
	audio   *audio.Player
	runtime core.RuntimeConfig
	logger  *log.Logger
	clock   *frameClock

	pending      []sim.Command
	status       Status
	runAutopilot bool // Autopilot was engaged at some point of the current run
	width        int
	height       int
	quitting     bool
}

// NewModel creates a play model and its session.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	simOpts := []sim.Option{
		sim.WithSeed(opts.Runtime.ResolvedSeed()),
		sim.WithLogger(logger),
	}
	if opts.Store != nil {
		simOpts = append(simOpts, sim.WithBestScores(
			storage.NewBestScoreKeeper(opts.Store, opts.BestKey, logger)))
	}
	// A typed nil pointer must not reach the session as a non-nil interface.
	if opts.Audio != nil {
		simOpts = append(simOpts, sim.WithCuePlayer(opts.Audio))
	}

	m := Model{
		session: sim.New(opts.Config, simOpts...),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		store:   opts.Store,
		audio:   opts.Audio,
		runtime: opts.Runtime,
		logger:  logger,
		clock:   &frameClock{},
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
	}
	if opts.Autopilot {
		m.pending = append(m.pending, sim.SetAutopilot(true))
	}
	m.status.Muted = m.audio != nil && m.audio.Muted()
	m.screen = core.NewScreen(m.width, m.fieldRows())
	return m
}

// Session exposes the driven session.
func (m Model) Session() *sim.Session {
	return m.session
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.width, m.fieldRows())
		return m, nil

	case TickMsg:
		m.step(m.clock.Delta(time.Time(msg)))
		return m, tickCmd(m.runtime.TickInterval())
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.width, m.fieldRows())
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		if m.audio != nil {
			m.audio.SetMuted(!m.audio.Muted())
			m.status.Muted = m.audio.Muted()
		}
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	autopilot, preset := resolveToggles(m.session.AutopilotEnabled(), m.session.NextPreset(), m.pending)
	if cmd, ok := m.keys.Command(msg, autopilot, preset); ok {
		m.pending = append(m.pending, cmd)
	}
	return m, nil
}

// step advances the session by one measured frame and reacts to its events.
func (m *Model) step(dtMs float64) {
	events := m.session.Advance(dtMs, m.pending)
	m.pending = m.pending[:0]

	for _, e := range events {
		switch e.Kind {
		case sim.EventNewBest:
			m.status.NewBest = true
		case sim.EventStateChanged:
			switch {
			case e.To == sim.StatePlaying && e.From != sim.StatePaused:
				m.status.NewBest = false
				m.runAutopilot = false
			case e.To == sim.StateGameOver:
				m.saveRun()
			}
		}
	}
	if m.session.State() == sim.StatePlaying && m.session.AutopilotEnabled() {
		m.runAutopilot = true
	}
}

// saveRun records the finished run in the score history.
func (m *Model) saveRun() {
	if m.store == nil || m.session.Score() == 0 {
		return
	}
	snap := m.session.Snapshot()
	run := storage.Run{
		Preset:     snap.Preset.String(),
		Score:      snap.Score,
		Autopilot:  m.runAutopilot || snap.Autopilot,
		DurationMs: int64(snap.ElapsedMs),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("cannot save run", "err", err)
	}
}

// fieldRows is the screen height left after the help line(s).
func (m Model) fieldRows() int {
	rows := m.height - m.helpRows()
	if rows < 0 {
		return 0
	}
	return rows
}

func (m Model) helpRows() int {
	if !m.help.ShowAll {
		return 1
	}
	most := 0
	for _, col := range m.keys.FullHelp() {
		most = max(most, len(col))
	}
	return most
}

// saveScreenshot writes the plain-text screen to ~/.skyflap/screenshots.
func (m *Model) saveScreenshot() {
	Draw(m.screen, m.session.Snapshot(), m.status)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skyflap", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	name := fmt.Sprintf("skyflap_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.session.Snapshot(), m.status)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with a new play model.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
