package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/boincmon/internal/errors"
	"github.com/rileyhilliard/boincmon/internal/ui"
	"github.com/rileyhilliard/boincmon/internal/util"
)

// Title heads every frame.
const Title = "BOINC Monitor"

// DefaultWidth is the frame width when the terminal size is unknown.
const DefaultWidth = 80

// minWidth keeps charts and the table legible on tiny terminals.
const minWidth = 40

// minNameWidth is the narrowest the task name column gets; past that the
// table overflows rather than hiding names.
const minNameWidth = 20

// Frame renders a complete snapshot: header, both charts and the task
// table. The TUI and the plain renderer share it.
func Frame(snap Snapshot, width int) string {
	return renderMetrics(snap, width) + "\n\n" + renderTasks(snap.Rows, width)
}

// renderMetrics renders the header and the two series sections.
func renderMetrics(snap Snapshot, width int) string {
	width = frameWidth(width)

	var b strings.Builder
	b.WriteString(renderHeader(snap))
	b.WriteString("\n\n")
	b.WriteString(renderSeries("Temperature °C", snap.Temperature, ScaleAuto, ColorTemperature, width))
	b.WriteString("\n")
	b.WriteString(renderSeries("CPU %", snap.CPU, ScalePercent, ColorCPU, width))
	return b.String()
}

// renderHeader renders the title line with host and task counts.
func renderHeader(snap Snapshot) string {
	host := snap.Host
	if host == "" {
		host = "local"
	}

	stats := fmt.Sprintf(" | %s | %s, %d working | cycle %d",
		host, util.CountNoun(len(snap.Rows), "task", "tasks"), snap.WorkingCount(), snap.Cycle)
	if !snap.Time.IsZero() {
		stats += " | " + snap.Time.Format("15:04:05")
	}

	return HeaderStyle.Render(TitleStyle.Render(Title) + LabelStyle.Render(stats))
}

// renderSeries renders one boxed chart with its summary in the top border.
func renderSeries(title string, s SeriesSnapshot, scale ChartScale, color lipgloss.Color, width int) string {
	lines := []string{SectionHeader(title, s.Summary(), width, color)}

	chart := RenderChart(s.History, width-4, ChartHeight, scale, color)
	for _, line := range strings.Split(chart, "\n") {
		lines = append(lines, SectionContentLine(line, width))
	}

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

var taskColumns = []string{"Status", "Name", "Ready", "Remaining", "Received", "Deadline"}

// renderTasks renders the task table. The name column absorbs whatever
// width the other columns leave.
func renderTasks(rows []Row, width int) string {
	if len(rows) == 0 {
		return LabelStyle.Render("No tasks")
	}
	width = frameWidth(width)

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Status, r.Name, r.Ready, r.Remaining, r.Received, r.Deadline}
	}

	columns := make([]ui.TableColumn, len(taskColumns))
	used := 0
	for i, title := range taskColumns {
		columns[i] = ui.TableColumn{Title: title}
		if i == 1 {
			continue
		}
		w := lipgloss.Width(title)
		for _, c := range cells {
			if lipgloss.Width(c[i]) > w {
				w = lipgloss.Width(c[i])
			}
		}
		used += w
	}
	used += 2 * (len(taskColumns) - 1)
	columns[1].Width = max(width-used, minNameWidth)

	styler := func(row, col int) (lipgloss.Style, bool) {
		if col != 0 {
			return lipgloss.NewStyle(), false
		}
		return StatusStyle(rows[row].Working), true
	}

	return ui.RenderTable(columns, cells, ui.DefaultTableStyle(), styler)
}

func frameWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}
	if width < minWidth {
		return minWidth
	}
	return width
}

// renderFooter renders the key hints, or the fatal error once sampling
// has stopped.
func (m Model) renderFooter() string {
	if m.err != nil {
		return ErrorStyle.Render("✗ sampling stopped: "+errors.Summary(m.err)) +
			FooterStyle.Render("  q quit")
	}

	hints := "q quit | ↑/↓ scroll tasks | ? help"
	if m.viewport.TotalLineCount() > m.viewport.Height && m.viewport.Height > 0 {
		hints += fmt.Sprintf(" | %3.f%%", m.viewport.ScrollPercent()*100)
	}
	return FooterStyle.Render(hints)
}
