package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/boincmon/internal/config"
)

func TestConfigCheck_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, config.WriteDefault(path))

	result := (&ConfigCheck{ConfigPath: path}).Run(context.Background())

	assert.Equal(t, StatusPass, result.Status)
	assert.Contains(t, result.Message, path)
}

func TestConfigCheck_MissingExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	result := (&ConfigCheck{ConfigPath: path}).Run(context.Background())

	assert.Equal(t, StatusFail, result.Status)
	assert.Contains(t, result.Message, "not found")
	assert.NotEmpty(t, result.Suggestion)
}

func TestConfigCheck_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("interval: 1ms\n"), 0o644))

	result := (&ConfigCheck{ConfigPath: path}).Run(context.Background())

	assert.Equal(t, StatusFail, result.Status)
	assert.Contains(t, result.Message, "interval")
	assert.Contains(t, result.Suggestion, "500ms", "suggestion comes from the validation error")
}

func TestConfigCheck_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	result := (&ConfigCheck{}).Run(context.Background())

	assert.Equal(t, StatusWarn, result.Status)
	assert.Contains(t, result.Suggestion, "boincmon init")
}
