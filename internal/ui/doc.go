// Package ui provides terminal output helpers for boincmon's CLI commands:
// a small ANSI color palette, status symbols, one-line status messages and a
// plain table renderer shared with the dashboard's task list.
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text
//	ColorSecondary (blue)   - Accents
//
// Use DisableColors() to switch to monochrome output (for --no-color).
package ui
