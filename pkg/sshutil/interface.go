package sshutil

import "context"

// Executor runs shell command lines on a remote host.
// The real Client satisfies it; tests substitute fakes.
type Executor interface {
	// Exec runs a command and returns stdout, stderr, and exit code.
	// Exit code is -1 if the command couldn't be executed at all.
	// A non-zero exit code with nil error means the command ran but failed.
	Exec(ctx context.Context, cmd string) (stdout, stderr []byte, exitCode int, err error)

	// Close closes the SSH connection.
	Close() error
}

var _ Executor = (*Client)(nil)
