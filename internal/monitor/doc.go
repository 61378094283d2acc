// Package monitor implements boincmon's sampling loop and its displays.
//
// # Sampling
//
// A Loop owns two Series (board temperature and CPU load) and reads three
// sources each cycle: the temperature probe and the BOINC task list, both
// text, plus a CPU load sampler. The task list is fetched concurrently
// with the other two. A successful cycle updates both series, parses and
// projects the tasks into Rows, and hands one Snapshot to the Renderer.
//
// Any source error is fatal. The Loop moves to StateFailed, tells the
// renderer if it implements FailureRenderer, and from then on every Run
// or Cycle returns that same error without touching the sources.
//
//	Idle → Sampling → Rendering → Idle
//	          └──────→ Failed (terminal)
//
// # Series
//
// Series keep the latest reading, the extrema and a ring buffer of recent
// samples. Zero readings are charted but never become an extremum, and a
// failed reading only clears the current value.
//
// # Rendering
//
// Frame renders a Snapshot as text: a header, one boxed braille chart per
// series with "Current / Max / Min" in its border, and the task table with
// WORKING rows in green and everything else in red.
//
// Two renderers use it:
//
//	ProgramRenderer - forwards snapshots to the Bubble Tea Model via program.Send
//	TextRenderer    - writes plain frames to an io.Writer (pipes, --plain)
//
// The Model keeps the charts fixed and puts the task table in a scrollable
// viewport. After a failure it keeps the last frame and shows the error in
// the footer until the user quits.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	j/k, ↑/↓    - Scroll the task table
//	PgUp/PgDn   - Page the task table
//	Home/End    - Jump to first / last task
//	?           - Toggle help overlay
package monitor
