package doctor

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/crypto/ssh/agent"

	"github.com/rileyhilliard/boincmon/internal/exec"
)

// SSHAgentCheck verifies the SSH agent is reachable and holds keys.
// Without an agent boincmon falls back to key files, so problems here are
// warnings.
type SSHAgentCheck struct {
	// Socket overrides SSH_AUTH_SOCK.
	Socket string
}

func (c *SSHAgentCheck) Name() string     { return "ssh_agent" }
func (c *SSHAgentCheck) Category() string { return CategorySSH }

func (c *SSHAgentCheck) Run(_ context.Context) CheckResult {
	socket := c.Socket
	if socket == "" {
		socket = os.Getenv("SSH_AUTH_SOCK")
	}
	if socket == "" {
		return CheckResult{
			Status:     StatusWarn,
			Message:    "SSH agent not running",
			Suggestion: "Fix: eval $(ssh-agent) && ssh-add",
		}
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return CheckResult{
			Status:     StatusWarn,
			Message:    "SSH agent socket not accessible",
			Suggestion: "Fix: eval $(ssh-agent) && ssh-add",
		}
	}
	defer conn.Close() //nolint:errcheck // Best-effort close

	keys, err := agent.NewClient(conn).List()
	if err != nil {
		return CheckResult{
			Status:     StatusWarn,
			Message:    "Cannot query SSH agent",
			Suggestion: "Check SSH agent: ssh-add -l",
		}
	}
	if len(keys) == 0 {
		return CheckResult{
			Status:     StatusWarn,
			Message:    "SSH agent running but no keys loaded",
			Suggestion: "Add a key with: ssh-add",
		}
	}

	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("SSH agent running with %d key%s loaded", len(keys), pluralize(len(keys))),
	}
}

// ConnectionCheck runs a no-op command on the monitored host to prove the
// runner can reach it.
type ConnectionCheck struct {
	Host   string
	Runner exec.Runner
}

func (c *ConnectionCheck) Name() string     { return "connection" }
func (c *ConnectionCheck) Category() string { return CategorySSH }

func (c *ConnectionCheck) Run(ctx context.Context) CheckResult {
	start := time.Now()
	_, stderr, exitCode, err := c.Runner.Run(ctx, "true")
	if err != nil {
		return failure(err, fmt.Sprintf("Try: ssh %s", c.Host))
	}
	if exitCode != 0 {
		msg := fmt.Sprintf("%s: 'true' exited %d", c.Host, exitCode)
		if detail := firstLine(string(stderr)); detail != "" {
			msg += ": " + detail
		}
		return CheckResult{
			Status:     StatusFail,
			Message:    msg,
			Suggestion: fmt.Sprintf("Try: ssh %s true", c.Host),
		}
	}

	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("Connected to %s (%s)", c.Host, formatLatency(time.Since(start))),
	}
}

func formatLatency(d time.Duration) string {
	if d < time.Millisecond {
		return "<1ms"
	}
	return d.Round(time.Millisecond).String()
}
