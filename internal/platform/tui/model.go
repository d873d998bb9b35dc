package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/matrix-arcade/internal/core"
	"github.com/vovakirdan/matrix-arcade/internal/host"
	"github.com/vovakirdan/matrix-arcade/internal/logring"
)

// logTail is the number of log lines shown under the display.
const logTail = 8

// Options configures the game screen.
type Options struct {
	Title         string
	Tick          time.Duration
	Hold          time.Duration // How long a key press counts as held
	Color         string
	Logs          *logring.Ring // Optional; toggled with the Logs key
	ShowLogs      bool
	Replay        []host.Step // When set, these steps drive the session instead of keys
	ScreenshotDir string      // Defaults to ~/.matrix-arcade/screenshots
	Logger        *log.Logger // Optional
}

// Model is the Bubble Tea model for running a session.
type Model struct {
	sess *host.Session
	opts Options
	keys KeyMap
	help help.Model
	hold *host.HoldTracker
	clk  *host.Clock
	log  *log.Logger

	shown *core.Frame // Last frame rendered into panel
	panel string

	replay   bool
	pos      int
	finished bool

	status   string
	err      error
	width    int
	showLogs bool
	quitting bool
}

// NewModel creates a Bubble Tea model driving sess.
func NewModel(sess *host.Session, opts Options) Model {
	if opts.Tick <= 0 {
		opts.Tick = core.DefaultConfig().Tick
	}
	if opts.Hold <= 0 {
		opts.Hold = 150 * time.Millisecond
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".matrix-arcade", "screenshots")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	f := sess.Frame()
	shown := f.Clone()
	return Model{
		sess:     sess,
		opts:     opts,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		hold:     host.NewHoldTracker(opts.Hold),
		clk:      &host.Clock{},
		log:      logger,
		shown:    shown,
		panel:    RenderFrame(shown, opts.Color),
		replay:   opts.Replay != nil,
		showLogs: opts.ShowLogs,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.clk.Start(time.Now())
	return tickCmd(m.nextInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot(now)
		if err != nil {
			m.log.Warn("screenshot failed", "err", err)
			m.status = "screenshot failed"
		} else {
			m.log.Info("screenshot saved", "path", path)
			m.status = "saved " + path
		}
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = !m.showLogs
		return m, nil
	}

	if m.replay {
		return m, nil
	}
	if b, ok := m.keys.Button(msg); ok {
		m.hold.Press(b, now)
	}
	return m, nil
}

// handleTick runs one session tick, either from held keys or from the
// next recorded step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	var raw core.Buttons

	if m.replay {
		if m.pos >= len(m.opts.Replay) {
			m.finished = true
			m.status = "replay finished"
			return m, nil
		}
		st := m.opts.Replay[m.pos]
		m.pos++
		elapsed, raw = st.Elapsed, st.Buttons
	} else {
		elapsed = m.clk.Since(now)
		raw = m.hold.Held(now)
	}

	if err := m.sess.Tick(elapsed, raw); err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.refresh()

	return m, tickCmd(m.nextInterval())
}

// refresh rebuilds the cached panel only when the frame changed.
func (m *Model) refresh() {
	f := m.sess.Frame()
	if m.shown.Equal(f) {
		return
	}
	m.shown.CopyFrom(f)
	m.panel = RenderFrame(m.shown, m.opts.Color)
}

// nextInterval is the wall time until the next tick. Replays wait for the
// recorded elapsed time of the next step so they play at the original pace.
func (m Model) nextInterval() time.Duration {
	if m.replay && m.pos < len(m.opts.Replay) {
		return m.opts.Replay[m.pos].Elapsed
	}
	return m.opts.Tick
}

// saveScreenshot writes the current frame as text art.
func (m Model) saveScreenshot(now time.Time) (string, error) {
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	name := m.opts.Title
	if name == "" {
		name = "frame"
	}
	filename := fmt.Sprintf("%s_%s.txt", name, now.Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.sess.Frame().String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := m.opts.Title
	if m.replay {
		title = fmt.Sprintf("%s (replay %d/%d)", title, m.pos, len(m.opts.Replay))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.sess.State().String()))
	b.WriteString("\n")

	b.WriteString(m.panel)
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	if m.showLogs && m.opts.Logs != nil {
		b.WriteString("\n")
		b.WriteString(renderLogs(m.opts.Logs.Tail(logTail), m.width))
	}

	return b.String()
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error { return m.err }

// Finished reports whether a replay has consumed every recorded step.
func (m Model) Finished() bool { return m.finished }

// Run starts the Bubble Tea program for sess and blocks until the user quits.
func Run(sess *host.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(sess, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
