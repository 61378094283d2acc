package monitor

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rileyhilliard/boincmon/internal/tasks"
)

// SeriesSnapshot is a read-only copy of a Series. History is a fresh slice.
type SeriesSnapshot struct {
	Current    float64
	HasCurrent bool
	Min        float64
	Max        float64
	HasExtrema bool
	History    []float64
}

// Summary formats the series as "Current: 48.3 / Max: 52.15 / Min: 45",
// with "-" standing in for values the series doesn't have yet. Readings are
// printed as sampled, without padding or rounding.
func (s SeriesSnapshot) Summary() string {
	return fmt.Sprintf("Current: %s / Max: %s / Min: %s",
		formatReading(s.Current, s.HasCurrent),
		formatReading(s.Max, s.HasExtrema),
		formatReading(s.Min, s.HasExtrema))
}

func formatReading(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Task states counted as working. BOINC suspends running tasks when the
// machine is busy, so a suspended task is still the node's work.
const (
	StateExecuting = "EXECUTING"
	StateSuspended = "SUSPENDED"
	StatusWorking  = "WORKING"
	StatusUnknown  = "UNKNOWN"
)

// Row is one line of the task table, projected from a parsed task.
// Absent task fields display as empty strings.
type Row struct {
	Working   bool
	Status    string
	Name      string
	Ready     string
	Remaining string
	Received  string
	Deadline  string
}

// ProjectRows converts parsed tasks into table rows, keeping their order.
func ProjectRows(list []tasks.Task) []Row {
	rows := make([]Row, 0, len(list))
	for _, t := range list {
		rows = append(rows, projectRow(t))
	}
	return rows
}

func projectRow(t tasks.Task) Row {
	state, hasState := t.Get(tasks.FieldState)
	working := state == StateExecuting || state == StateSuspended

	status := state
	switch {
	case working:
		status = StatusWorking
	case !hasState:
		status = StatusUnknown
	}

	ready, ok := t.Get(tasks.FieldCPUCurrent)
	if !ok || ready == "" {
		ready = "0"
	}

	return Row{
		Working:   working,
		Status:    status,
		Name:      t[tasks.FieldName],
		Ready:     ready,
		Remaining: t[tasks.FieldCPURemaining],
		Received:  collapseSpaces(t[tasks.FieldReceived]),
		Deadline:  collapseSpaces(t[tasks.FieldDeadline]),
	}
}

// collapseSpaces turns runs of whitespace into single spaces, so
// "Mon Jan  8" reads "Mon Jan 8".
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Snapshot is everything one cycle hands to a Renderer.
type Snapshot struct {
	Temperature SeriesSnapshot
	CPU         SeriesSnapshot
	Rows        []Row

	// Cycle counts successful cycles, starting at 1.
	Cycle int
	Time  time.Time

	// Host is the SSH target, empty when sampling the local machine.
	Host string
}

// WorkingCount returns how many rows are working.
func (s Snapshot) WorkingCount() int {
	n := 0
	for _, r := range s.Rows {
		if r.Working {
			n++
		}
	}
	return n
}
