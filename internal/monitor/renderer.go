package monitor

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/boincmon/internal/errors"
)

// Renderer displays one snapshot. The Loop calls Render once per successful
// cycle, synchronously, so implementations should return quickly.
type Renderer interface {
	Render(snap Snapshot)
}

// FailureRenderer is implemented by renderers that can show the error that
// stopped the Loop.
type FailureRenderer interface {
	RenderFailure(err error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(snap Snapshot)

// Render calls f(snap).
func (f RendererFunc) Render(snap Snapshot) {
	f(snap)
}

// snapshotMsg delivers a new snapshot to the Model.
type snapshotMsg Snapshot

// failedMsg tells the Model sampling has stopped for good.
type failedMsg struct {
	err error
}

// Sender is the part of *tea.Program the ProgramRenderer uses.
type Sender interface {
	Send(msg tea.Msg)
}

// ProgramRenderer forwards snapshots to a running Bubble Tea program via
// program.Send(). This is goroutine-safe.
type ProgramRenderer struct {
	program Sender
}

// NewProgramRenderer creates a renderer that feeds the given program.
func NewProgramRenderer(program Sender) *ProgramRenderer {
	return &ProgramRenderer{program: program}
}

// Render forwards the snapshot to the TUI.
func (r *ProgramRenderer) Render(snap Snapshot) {
	r.program.Send(snapshotMsg(snap))
}

// RenderFailure forwards the fatal error to the TUI.
func (r *ProgramRenderer) RenderFailure(err error) {
	r.program.Send(failedMsg{err: err})
}

// TextRenderer writes each snapshot as a plain frame, for pipes, logs and
// terminals that can't host the dashboard.
type TextRenderer struct {
	w     io.Writer
	width int
}

// NewTextRenderer creates a renderer writing frames of the given width to w.
func NewTextRenderer(w io.Writer, width int) *TextRenderer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &TextRenderer{w: w, width: width}
}

// Render writes the frame followed by a blank line.
func (r *TextRenderer) Render(snap Snapshot) {
	fmt.Fprintf(r.w, "%s\n\n", strings.TrimRight(Frame(snap, r.width), "\n"))
}

// RenderFailure writes a one-line summary of the error.
func (r *TextRenderer) RenderFailure(err error) {
	fmt.Fprintf(r.w, "sampling stopped: %s\n", errors.Summary(err))
}
