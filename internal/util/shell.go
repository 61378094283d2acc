// Package util provides small helpers shared across boincmon.
package util

import (
	"regexp"
	"strings"
)

// safeArg matches words a POSIX shell passes through unchanged.
var safeArg = regexp.MustCompile(`^[A-Za-z0-9_@%+=:,./-]+$`)

// ShellQuote wraps a string in single quotes, escaping any existing single quotes.
// Words that need no quoting are returned as-is so remote command lines stay readable.
func ShellQuote(s string) string {
	if safeArg.MatchString(s) {
		return s
	}
	// Replace ' with '\'' (end quote, escaped quote, start quote)
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// CommandLine joins a program and its arguments into one shell command line.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, ShellQuote(name))
	for _, a := range args {
		parts = append(parts, ShellQuote(a))
	}
	return strings.Join(parts, " ")
}
