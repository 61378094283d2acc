package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableStyle provides consistent styling for tables across the CLI.
type TableStyle struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableColumn defines a table column with name and width.
// A zero Width sizes the column to its widest cell.
type TableColumn struct {
	Title string
	Width int
}

// CellStyler picks the style of one body cell. Returning false keeps the
// table's default cell style.
type CellStyler func(row, col int) (lipgloss.Style, bool)

// RenderTable renders a non-interactive table: a bold header, a rule and one
// line per row. Cells wider than their column are truncated with an ellipsis.
func RenderTable(columns []TableColumn, rows [][]string, style TableStyle, styler CellStyler) string {
	if len(columns) == 0 {
		return ""
	}

	widths := columnWidths(columns, rows)

	var b strings.Builder

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = style.Header.Render(padRight(truncate(c.Title, widths[i]), widths[i]))
	}
	b.WriteString(strings.TrimRight(strings.Join(header, "  "), " "))
	b.WriteString("\n")

	ruleWidth := 0
	for _, w := range widths {
		ruleWidth += w
	}
	ruleWidth += 2 * (len(widths) - 1)
	b.WriteString(style.Border.Render(strings.Repeat("─", ruleWidth)))

	for r, row := range rows {
		b.WriteString("\n")
		cells := make([]string, len(columns))
		for c := range columns {
			value := ""
			if c < len(row) {
				value = row[c]
			}
			cellStyle := style.Cell
			if styler != nil {
				if s, ok := styler(r, c); ok {
					cellStyle = s
				}
			}
			cells[c] = cellStyle.Render(padRight(truncate(value, widths[c]), widths[c]))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
	}

	return b.String()
}

func columnWidths(columns []TableColumn, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		if c.Width > 0 {
			widths[i] = c.Width
			continue
		}
		widths[i] = lipgloss.Width(c.Title)
		for _, row := range rows {
			if i < len(row) && lipgloss.Width(row[i]) > widths[i] {
				widths[i] = lipgloss.Width(row[i])
			}
		}
	}
	return widths
}

// truncate shortens s to width runes, ending in an ellipsis when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
