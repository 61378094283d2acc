package sample

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/boincmon/internal/errors"
	"github.com/rileyhilliard/boincmon/internal/exec"
)

// SourceError reports a probe that wrote to its error stream.
// Output is the raw stderr text.
type SourceError struct {
	Command string
	Output  string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, strings.TrimSpace(e.Output))
}

// Command is one external probe, e.g. `vcgencmd measure_temp`.
type Command struct {
	Runner exec.Runner
	Name   string
	Args   []string

	// Timeout bounds a single Sample call. Zero means no limit.
	Timeout time.Duration
}

// String returns the command line, for logs and error messages.
func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Sample runs the command once and returns everything it wrote to stdout.
//
// Errors, all *errors.Error:
//   - TIMEOUT when Timeout elapses first
//   - SOURCE wrapping a *SourceError when stderr is non-empty
//   - EXEC when the program couldn't start or exited non-zero silently
//
// If ctx itself is done, ctx.Err() is returned unwrapped.
func (c *Command) Sample(ctx context.Context) (string, error) {
	runCtx := ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	stdout, stderr, exitCode, err := c.Runner.Run(runCtx, c.Name, c.Args...)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if stderrors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return "", errors.New(errors.ErrTimeout,
			fmt.Sprintf("'%s' didn't finish within %v", c, c.Timeout),
			"The probe may be hung. Raise 'timeout' in .boincmon.yaml if it is just slow.")
	}

	if len(stderr) > 0 {
		return "", errors.WrapWithCode(&SourceError{Command: c.String(), Output: string(stderr)},
			errors.ErrSource,
			fmt.Sprintf("'%s' reported an error", c),
			exec.Suggestion(c.Name, string(stderr), exitCode))
	}

	if err != nil {
		return "", err
	}
	if exitCode != 0 {
		return "", errors.New(errors.ErrExec,
			fmt.Sprintf("'%s' exited with status %d", c, exitCode),
			exec.Suggestion(c.Name, "", exitCode))
	}

	return string(stdout), nil
}
