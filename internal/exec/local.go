package exec

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"time"

	"github.com/rileyhilliard/boincmon/internal/errors"
)

// DefaultWaitDelay bounds how long Run waits for output pipes after the
// process is killed on cancellation.
const DefaultWaitDelay = 500 * time.Millisecond

// LocalRunner runs commands as child processes on this machine.
// Programs are executed directly, not through a shell.
type LocalRunner struct {
	WaitDelay time.Duration
}

// NewLocalRunner returns a LocalRunner with default settings.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{WaitDelay: DefaultWaitDelay}
}

// Run executes name with args and waits for it to exit.
func (r *LocalRunner) Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, exitCode int, err error) {
	command := exec.CommandContext(ctx, name, args...)
	command.WaitDelay = r.WaitDelay

	var stdoutBuf, stderrBuf bytes.Buffer
	command.Stdout = &stdoutBuf
	command.Stderr = &stderrBuf

	runErr := command.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return stdoutBuf.Bytes(), stderrBuf.Bytes(), -1, ctxErr
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if stderrors.As(runErr, &exitErr) {
			return stdoutBuf.Bytes(), stderrBuf.Bytes(), exitErr.ExitCode(), nil
		}
		return nil, nil, -1, errors.WrapWithCode(runErr, errors.ErrExec,
			"Couldn't run "+name,
			"Make sure the command exists and is executable.")
	}

	return stdoutBuf.Bytes(), stderrBuf.Bytes(), 0, nil
}
