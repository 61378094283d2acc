package exec

import (
	"context"
	"sync"

	"github.com/rileyhilliard/boincmon/internal/errors"
	"github.com/rileyhilliard/boincmon/internal/util"
	"github.com/rileyhilliard/boincmon/pkg/sshutil"
)

// DialFunc opens an SSH connection. sshutil.Dial in production.
type DialFunc func(ctx context.Context, host string, opts sshutil.Options) (sshutil.Executor, error)

// SSHRunner runs commands on a remote host over a single cached SSH
// connection, dialed on first use.
type SSHRunner struct {
	host string
	opts sshutil.Options
	dial DialFunc

	mu     sync.Mutex
	client sshutil.Executor
}

// NewSSHRunner returns a runner for host. Nothing is dialed until the first Run.
func NewSSHRunner(host string, opts sshutil.Options) *SSHRunner {
	return &SSHRunner{
		host: host,
		opts: opts,
		dial: func(ctx context.Context, host string, opts sshutil.Options) (sshutil.Executor, error) {
			client, err := sshutil.Dial(ctx, host, opts)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}
}

// Host returns the SSH target this runner connects to.
func (r *SSHRunner) Host() string {
	return r.host
}

// Run executes the command line built from name and args on the remote host.
func (r *SSHRunner) Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, exitCode int, err error) {
	client, err := r.connect(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, -1, ctxErr
		}
		return nil, nil, -1, err
	}

	stdout, stderr, exitCode, err = client.Exec(ctx, util.CommandLine(name, args...))
	if err != nil && ctx.Err() == nil && errors.IsCode(err, errors.ErrSSH) {
		// The connection is likely gone; redial on the next call.
		r.reset(client)
	}
	return stdout, stderr, exitCode, err
}

// Close closes the cached connection, if any.
func (r *SSHRunner) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client == nil {
		return nil
	}
	err := r.client.Close()
	r.client = nil
	return err
}

func (r *SSHRunner) connect(ctx context.Context) (sshutil.Executor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}

	client, err := r.dial(ctx, r.host, r.opts)
	if err != nil {
		return nil, err
	}
	r.client = client
	return client, nil
}

func (r *SSHRunner) reset(stale sshutil.Executor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client == stale {
		_ = r.client.Close()
		r.client = nil
	}
}
