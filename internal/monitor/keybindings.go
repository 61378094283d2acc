package monitor

import tea "github.com/charmbracelet/bubbletea"

// Key bindings as constants for consistency.
// Scrolling keys (up/down, j/k, pgup/pgdown) fall through to the viewport.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyTop        = "home"
	KeyBottom     = "end"
	KeyCloseHelp  = "esc"
	KeyToggleHelp = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp && key == KeyCloseHelp {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyTop:
		if m.viewportReady {
			m.viewport.GotoTop()
		}
		return true, nil

	case KeyBottom:
		if m.viewportReady {
			m.viewport.GotoBottom()
		}
		return true, nil
	}

	return false, nil
}
