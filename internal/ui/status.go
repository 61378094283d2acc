package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormatStatus returns a status line: a colored symbol, the message and an
// optional muted detail.
func FormatStatus(symbol string, symbolColor lipgloss.Color, message, detail string) string {
	symbolStyle := lipgloss.NewStyle().Foreground(symbolColor)

	if detail == "" {
		return fmt.Sprintf("%s %s", symbolStyle.Render(symbol), message)
	}
	return fmt.Sprintf("%s %s %s", symbolStyle.Render(symbol), message, MutedStyle().Render(detail))
}

// PrintSuccess writes a green check line to w.
func PrintSuccess(w io.Writer, message, detail string) {
	fmt.Fprintln(w, FormatStatus(SymbolSuccess, ColorSuccess, message, detail))
}

// PrintWarning writes a yellow warning line to w.
func PrintWarning(w io.Writer, message, detail string) {
	fmt.Fprintln(w, FormatStatus(SymbolWarning, ColorWarning, message, detail))
}

// PrintFailure writes a red cross line to w.
func PrintFailure(w io.Writer, message, detail string) {
	fmt.Fprintln(w, FormatStatus(SymbolFail, ColorError, message, detail))
}

// FormatDivider returns a divider line as a string.
func FormatDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return MutedStyle().Render(strings.Repeat("━", width))
}
