package monitor

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Plain output so assertions see text, not escape codes
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testSnapshot() Snapshot {
	return Snapshot{
		Temperature: SeriesSnapshot{
			Current: 48.3, HasCurrent: true,
			Min: 45.0, Max: 52.1, HasExtrema: true,
			History: []float64{45.0, 52.1, 48.3},
		},
		CPU: SeriesSnapshot{
			Current: 97.5, HasCurrent: true,
			Min: 12.0, Max: 99.0, HasExtrema: true,
			History: []float64{12, 99, 97.5},
		},
		Rows: []Row{
			{Working: true, Status: StatusWorking, Name: "wu_alpha", Ready: "120.5", Remaining: "600.0", Received: "Mon Jan 8 10:00:00 2024", Deadline: "Tue Jan 16 10:00:00 2024"},
			{Working: false, Status: "UNINITIALIZED", Name: "wu_beta", Ready: "0"},
		},
		Cycle: 3,
		Time:  time.Date(2024, 1, 8, 10, 30, 15, 0, time.UTC),
		Host:  "pi",
	}
}

func TestFrame_Contents(t *testing.T) {
	out := Frame(testSnapshot(), 100)

	assert.Contains(t, out, "BOINC Monitor | pi | 2 tasks, 1 working | cycle 3 | 10:30:15")
	assert.Contains(t, out, "Temperature °C")
	assert.Contains(t, out, "Current: 48.3 / Max: 52.1 / Min: 45")
	assert.Contains(t, out, "CPU %")
	assert.Contains(t, out, "Current: 97.5 / Max: 99 / Min: 12")
	assert.Contains(t, out, "Status")
	assert.Contains(t, out, "Deadline")
	assert.Contains(t, out, "wu_alpha")
	assert.Contains(t, out, "UNINITIALIZED")
	assert.Contains(t, out, "Tue Jan 16 10:00:00 2024")
}

func TestFrame_FitsWidth(t *testing.T) {
	for _, width := range []int{120, 160} {
		t.Run(fmt.Sprintf("%d", width), func(t *testing.T) {
			for _, line := range strings.Split(Frame(testSnapshot(), width), "\n") {
				assert.LessOrEqual(t, lipgloss.Width(line), width, "line %q", line)
			}
		})
	}
}

func TestFrame_LocalHostAndNoTasks(t *testing.T) {
	snap := testSnapshot()
	snap.Host = ""
	snap.Rows = nil

	out := Frame(snap, 80)
	assert.Contains(t, out, "| local |")
	assert.Contains(t, out, "0 tasks, 0 working")
	assert.Contains(t, out, "No tasks")
}

func TestFrame_EmptySeries(t *testing.T) {
	out := Frame(Snapshot{}, 80)
	assert.Contains(t, out, "Current: - / Max: - / Min: -")
}

func TestFrame_ChartHeight(t *testing.T) {
	out := renderMetrics(testSnapshot(), 80)
	// header, blank line, then two sections of border + chart + border
	assert.Equal(t, 2+2*(ChartHeight+2), lipgloss.Height(out))
}

func TestFrameWidth(t *testing.T) {
	assert.Equal(t, DefaultWidth, frameWidth(0))
	assert.Equal(t, minWidth, frameWidth(10))
	assert.Equal(t, 120, frameWidth(120))
}

func TestRenderTasks_NameColumnAbsorbsWidth(t *testing.T) {
	out := renderTasks(testSnapshot().Rows, 120)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, 120, lipgloss.Width(lines[1]), "rule spans the frame")
}

func TestRenderTasks_LongNamesTruncate(t *testing.T) {
	rows := []Row{{Status: StatusWorking, Working: true, Name: strings.Repeat("x", 200), Ready: "0"}}
	for _, line := range strings.Split(renderTasks(rows, 80), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, ColorWorking, StatusStyle(true).GetForeground())
	assert.Equal(t, ColorStopped, StatusStyle(false).GetForeground())
}

func TestSectionLines(t *testing.T) {
	assert.Equal(t, 40, lipgloss.Width(SectionHeader("CPU %", "Current: 1.0", 40, ColorCPU)))
	assert.Equal(t, 40, lipgloss.Width(SectionFooter(40)))
	assert.Equal(t, 40, lipgloss.Width(SectionContentLine("abc", 40)))
	assert.Equal(t, "╰──╯", SectionFooter(4))
}
