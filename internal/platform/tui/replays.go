package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/matrix-arcade/internal/storage"
)

// Replay browser layout constants
const (
	maxReplays     = 100 // Max sessions to load
	defaultTableH  = 12  // Table height before the first resize
	tableChromeH   = 8   // Rows taken by title, border and help
	minTableHeight = 3
)

// ReplayStore is the part of storage.Store the browser needs.
type ReplayStore interface {
	Sessions(limit int) ([]storage.SessionInfo, error)
	DeleteSession(id int64) error
}

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Play   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Play, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Play, k.Delete, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplaysModel is the Bubble Tea model for the replay browser.
type ReplaysModel struct {
	store    ReplayStore
	sessions []storage.SessionInfo
	table    table.Model
	help     help.Model
	keys     ReplaysKeyMap
	width    int
	height   int
	status   string
	selected int // Index into sessions; -1 when nothing was chosen
	quitting bool
}

// NewReplaysModel creates a browser listing the newest sessions in store.
func NewReplaysModel(store ReplayStore) ReplaysModel {
	m := ReplaysModel{
		store:    store,
		help:     help.New(),
		keys:     DefaultReplaysKeyMap(),
		selected: -1,
	}
	m.table = m.createTable()
	m.loadSessions()
	return m
}

// createTable creates a table sized to the current window.
func (m ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Game", Width: 10},
		{Title: "Size", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Result", Width: 10},
		{Title: "Date", Width: 14},
	}

	h := defaultTableH
	if m.height > 0 {
		h = max(m.height-tableChromeH, minTableHeight)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions reloads the session list from the store.
func (m *ReplaysModel) loadSessions() {
	sessions, err := m.store.Sessions(maxReplays)
	if err != nil {
		m.sessions = nil
		m.status = fmt.Sprintf("load failed: %v", err)
	} else {
		m.sessions = sessions
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current sessions.
func (m *ReplaysModel) updateTableRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		result := s.FinalState
		if result == "" {
			result = "unfinished"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", s.ID),
			s.GameID,
			fmt.Sprintf("%dx%d", s.Rows, s.Cols),
			fmt.Sprintf("%d", s.Ticks),
			result,
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the replay browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Play):
			if i := m.table.Cursor(); i >= 0 && i < len(m.sessions) {
				m.selected = i
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteCurrent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// deleteCurrent removes the session under the cursor.
func (m *ReplaysModel) deleteCurrent() {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.sessions) {
		return
	}
	id := m.sessions[i].ID
	if err := m.store.DeleteSession(id); err != nil {
		m.status = fmt.Sprintf("delete %d failed: %v", id, err)
		return
	}
	m.status = fmt.Sprintf("deleted replay %d", id)
	m.loadSessions()
	if i >= len(m.sessions) {
		i = len(m.sessions) - 1
	}
	m.table.SetCursor(max(i, 0))
}

// View renders the replay browser.
func (m ReplaysModel) View() string {
	if m.quitting || m.selected >= 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.MarginBottom(1).Render("REPLAYS"))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ReplaysModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No replays recorded yet.\nPlay with --record to keep one!")
	}
	return m.table.View()
}

// Selected returns the session chosen with the Play key.
func (m ReplaysModel) Selected() (storage.SessionInfo, bool) {
	if m.selected < 0 || m.selected >= len(m.sessions) {
		return storage.SessionInfo{}, false
	}
	return m.sessions[m.selected], true
}

// RunReplays runs the replay browser and returns the session picked for
// playback, if any.
func RunReplays(store ReplayStore) (storage.SessionInfo, bool, error) {
	p := tea.NewProgram(
		NewReplaysModel(store),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return storage.SessionInfo{}, false, err
	}

	m, ok := final.(ReplaysModel)
	if !ok {
		return storage.SessionInfo{}, false, nil
	}
	info, picked := m.Selected()
	return info, picked, nil
}
