// Package exec runs probe commands on the monitored node, either as local
// child processes or over SSH.
package exec

import "context"

// Runner runs one program to completion and captures its output.
//
// A command that ran but exited non-zero returns its exit code with a nil
// error. err is reserved for commands that couldn't be run at all, and for
// ctx being done, in which case it is ctx.Err().
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, exitCode int, err error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	return f(ctx, name, args...)
}
