package exec

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// commandNotFoundPatterns detect "command not found" output from common shells.
var commandNotFoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bash: (\S+): command not found`),
	regexp.MustCompile(`(?i)zsh: command not found: (\S+)`),
	regexp.MustCompile(`(?i)sh: \d+: (\S+): not found`),
	regexp.MustCompile(`(?i)(\S+): not found`),
	regexp.MustCompile(`(?i)(\S+): command not found`),
}

// boincNotRunningPattern matches boinccmd's output when the client is down
// or refuses the RPC password.
var boincNotRunningPattern = regexp.MustCompile(`(?i)(can't connect to local host|authorization failure|operation failed)`)

// IsCommandNotFound reports whether a failure means the program is missing,
// and the program name when the shell printed it.
func IsCommandNotFound(stderr string, exitCode int) (string, bool) {
	if exitCode != 127 {
		return "", false
	}
	for _, pattern := range commandNotFoundPatterns {
		if matches := pattern.FindStringSubmatch(stderr); len(matches) > 1 {
			return matches[1], true
		}
	}
	return "", true
}

// Suggestion returns a fix hint for a probe that failed with the given
// stderr and exit code.
func Suggestion(name, stderr string, exitCode int) string {
	if missing, ok := IsCommandNotFound(stderr, exitCode); ok {
		if missing == "" {
			missing = name
		}
		return fmt.Sprintf("'%s' isn't installed or isn't on PATH. Set the full path in .boincmon.yaml.", missing)
	}

	switch filepath.Base(name) {
	case "boinccmd":
		if boincNotRunningPattern.MatchString(stderr) {
			return "Is the BOINC client running? Try: sudo systemctl status boinc-client"
		}
		return "Check that boinccmd works on its own: boinccmd --get_tasks"
	case "vcgencmd":
		return "vcgencmd needs access to /dev/vchiq. Add your user to the 'video' group."
	}
	return fmt.Sprintf("Run '%s' by hand to see what it reports.", name)
}
