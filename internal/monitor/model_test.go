package monitor

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/boincmon/internal/errors"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sizedModel(t *testing.T, width, height int) Model {
	t.Helper()
	m, _ := update(t, NewModel("pi"), tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func TestModel_WaitingForFirstSample(t *testing.T) {
	m := NewModel("pi")
	assert.Nil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, "BOINC Monitor | pi")
	assert.Contains(t, view, "Waiting for first sample")

	_, ok := m.Snapshot()
	assert.False(t, ok)
}

func TestModel_SnapshotMessage(t *testing.T) {
	m := sizedModel(t, 100, 30)
	m, cmd := update(t, m, snapshotMsg(testSnapshot()))
	assert.Nil(t, cmd)

	snap, ok := m.Snapshot()
	require.True(t, ok)
	assert.Equal(t, 3, snap.Cycle)

	view := m.View()
	assert.Contains(t, view, "Current: 48.3 / Max: 52.1 / Min: 45")
	assert.Contains(t, view, "wu_alpha")
	assert.Contains(t, view, "q quit")
}

func TestModel_SnapshotBeforeWindowSize(t *testing.T) {
	m, _ := update(t, NewModel(""), snapshotMsg(testSnapshot()))
	assert.Contains(t, m.View(), "wu_alpha")
}

func TestModel_FailureKeepsLastFrame(t *testing.T) {
	m := sizedModel(t, 100, 30)
	m, _ = update(t, m, snapshotMsg(testSnapshot()))

	boom := errors.New(errors.ErrSource, "'boinccmd --get_tasks' reported an error", "")
	m, _ = update(t, m, failedMsg{err: boom})

	assert.Same(t, boom, m.Err())
	view := m.View()
	assert.Contains(t, view, "sampling stopped: 'boinccmd --get_tasks' reported an error")
	assert.Contains(t, view, "wu_alpha", "last frame stays on screen")
	assert.NotContains(t, view, "scroll tasks")
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m, cmd := update(t, sizedModel(t, 100, 30), msg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m := sizedModel(t, 100, 30)

	m, _ = update(t, m, keyMsg("?"))
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, m.View(), "Keyboard Shortcuts")

	m, _ = update(t, m, keyMsg("?"))
	m, _ = update(t, m, keyMsg("?"))
	assert.NotContains(t, m.View(), "Keyboard Shortcuts")
}

func TestModel_HelpReplacesDashboard(t *testing.T) {
	m := sizedModel(t, 100, 30)
	m, _ = update(t, m, snapshotMsg(testSnapshot()))
	require.Contains(t, m.View(), "wu_alpha")

	m, _ = update(t, m, keyMsg("?"))
	view := m.View()
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.NotContains(t, view, "wu_alpha")
	assert.NotContains(t, view, "Current: 48.3")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), "wu_alpha", "closing help brings the dashboard back")
}

func TestModel_ScrollsTaskTable(t *testing.T) {
	snap := testSnapshot()
	snap.Rows = nil
	for i := 0; i < 40; i++ {
		snap.Rows = append(snap.Rows, Row{Working: true, Status: StatusWorking, Name: fmt.Sprintf("wu_%02d", i), Ready: "0"})
	}

	m := sizedModel(t, 100, 30)
	m, _ = update(t, m, snapshotMsg(snap))

	require.True(t, m.viewportReady)
	assert.Equal(t, 30-lipgloss.Height(renderMetrics(snap, 100))-2, m.viewport.Height)
	assert.True(t, m.viewport.AtTop())
	assert.Contains(t, m.View(), "wu_00")
	assert.NotContains(t, m.View(), "wu_39")
	assert.Contains(t, m.View(), "0%")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.True(t, m.viewport.AtBottom())
	assert.Contains(t, m.View(), "wu_39")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyHome})
	assert.True(t, m.viewport.AtTop())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.False(t, m.viewport.AtTop(), "unhandled keys scroll the viewport")
}

func TestModel_Resize(t *testing.T) {
	m := sizedModel(t, 100, 30)
	m, _ = update(t, m, snapshotMsg(testSnapshot()))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 50})

	assert.Equal(t, 140, m.viewport.Width)
	assert.Equal(t, 50-lipgloss.Height(renderMetrics(testSnapshot(), 140))-2, m.viewport.Height)
}
