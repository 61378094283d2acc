package monitor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the Bubble Tea model for the dashboard. It never samples on its
// own: snapshots arrive from the Loop through a ProgramRenderer.
type Model struct {
	snap    Snapshot
	hasSnap bool
	host    string

	// err is set once the Loop fails; the last frame stays on screen.
	err error

	width    int
	height   int
	showHelp bool
	quitting bool

	// Task table viewport, scrollable when there are more tasks than rows
	viewport      viewport.Model
	viewportReady bool
}

// NewModel creates a dashboard waiting for its first snapshot.
func NewModel(host string) Model {
	return Model{host: host}
}

// Init has nothing to start; the Loop drives updates.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		if m.viewportReady {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutViewport()

	case snapshotMsg:
		m.snap = Snapshot(msg)
		m.hasSnap = true
		m.layoutViewport()

	case failedMsg:
		m.err = msg.err
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var body string
	if m.hasSnap {
		tasks := renderTasks(m.snap.Rows, m.width)
		if m.viewportReady {
			tasks = m.viewport.View()
		}
		body = renderMetrics(m.snap, m.width) + "\n\n" + tasks
	} else {
		body = renderHeader(Snapshot{Host: m.host}) + "\n\n" + LabelStyle.Render("Waiting for first sample...")
	}

	return body + "\n" + m.renderFooter()
}

// Snapshot returns the last snapshot received.
func (m Model) Snapshot() (Snapshot, bool) {
	return m.snap, m.hasSnap
}

// Err returns the error that stopped sampling, if any.
func (m Model) Err() error {
	return m.err
}

// layoutViewport sizes the task viewport to the space left under the
// charts and refreshes its content.
func (m *Model) layoutViewport() {
	if m.width == 0 || m.height == 0 || !m.hasSnap {
		return
	}

	// metrics, blank line, viewport, footer
	reserved := lipgloss.Height(renderMetrics(m.snap, m.width)) + 2
	viewportHeight := m.height - reserved
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.viewportReady {
		m.viewport = viewport.New(m.width, viewportHeight)
		m.viewportReady = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = viewportHeight
	}
	m.viewport.SetContent(renderTasks(m.snap.Rows, m.width))
}
