package doctor

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh/agent"

	"github.com/rileyhilliard/boincmon/internal/errors"
	"github.com/rileyhilliard/boincmon/internal/exec"
)

// serveAgent starts an in-memory SSH agent on a unix socket and returns
// the socket path.
func serveAgent(t *testing.T, keyring agent.Agent) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "agent")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	socket := filepath.Join(dir, "sock")
	listener, err := net.Listen("unix", socket)
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func() {
				defer conn.Close()
				_ = agent.ServeAgent(keyring, conn)
			}()
		}
	}()
	return socket
}

func TestSSHAgentCheck_NoAgent(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", "")

	result := (&SSHAgentCheck{}).Run(context.Background())

	assert.Equal(t, StatusWarn, result.Status)
	assert.Contains(t, result.Message, "not running")
}

func TestSSHAgentCheck_BadSocket(t *testing.T) {
	result := (&SSHAgentCheck{Socket: filepath.Join(t.TempDir(), "missing.sock")}).Run(context.Background())

	assert.Equal(t, StatusWarn, result.Status)
	assert.Contains(t, result.Message, "not accessible")
}

func TestSSHAgentCheck_NoKeys(t *testing.T) {
	socket := serveAgent(t, agent.NewKeyring())

	result := (&SSHAgentCheck{Socket: socket}).Run(context.Background())

	assert.Equal(t, StatusWarn, result.Status)
	assert.Contains(t, result.Message, "no keys loaded")
}

func TestSSHAgentCheck_WithKey(t *testing.T) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	keyring := agent.NewKeyring()
	require.NoError(t, keyring.Add(agent.AddedKey{PrivateKey: key}))
	socket := serveAgent(t, keyring)

	result := (&SSHAgentCheck{Socket: socket}).Run(context.Background())

	assert.Equal(t, StatusPass, result.Status)
	assert.Equal(t, "SSH agent running with 1 key loaded", result.Message)
}

func TestConnectionCheck(t *testing.T) {
	tests := []struct {
		name       string
		runner     exec.RunnerFunc
		status     CheckStatus
		message    string
		suggestion string
	}{
		{
			name: "connected",
			runner: func(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
				return nil, nil, 0, nil
			},
			status:  StatusPass,
			message: "Connected to boinc-pi",
		},
		{
			name: "non-zero exit",
			runner: func(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
				return nil, []byte("permission denied\n"), 1, nil
			},
			status:     StatusFail,
			message:    "exited 1: permission denied",
			suggestion: "ssh boinc-pi true",
		},
		{
			name: "unreachable",
			runner: func(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
				return nil, nil, -1, errors.New(errors.ErrSSH, "Couldn't reach boinc-pi", "Is the Pi powered on?")
			},
			status:     StatusFail,
			message:    "Couldn't reach boinc-pi",
			suggestion: "Is the Pi powered on?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := &ConnectionCheck{Host: "boinc-pi", Runner: tt.runner}
			result := check.Run(context.Background())

			assert.Equal(t, tt.status, result.Status)
			assert.Contains(t, result.Message, tt.message)
			if tt.suggestion != "" {
				assert.Contains(t, result.Suggestion, tt.suggestion)
			}
		})
	}
}

func TestFormatLatency(t *testing.T) {
	assert.Equal(t, "<1ms", formatLatency(0))
	assert.Equal(t, "12ms", formatLatency(12_400_000))
}
