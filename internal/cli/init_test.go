package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/boincmon/internal/config"
	"github.com/rileyhilliard/boincmon/internal/errors"
)

func TestInit_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	var out bytes.Buffer

	err := Init(InitOptions{Path: path, NonInteractive: true}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Created "+path)
	assert.Contains(t, out.String(), "the local machine")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Host)
	assert.Equal(t, config.DefaultTemperatureCommand, cfg.Temperature.Command)
	assert.Equal(t, config.DefaultTasksCommand, cfg.Tasks.Command)
}

func TestInit_WithHost(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	var out bytes.Buffer

	require.NoError(t, Init(InitOptions{Path: path, Host: "boinc-pi", NonInteractive: true}, &out))
	assert.Contains(t, out.String(), "boinc-pi")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "boinc-pi", cfg.Host)
}

func TestInit_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nhost: keep-me\n"), 0644))

	err := Init(InitOptions{Path: path, Host: "boinc-pi", NonInteractive: true}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "keep-me", "existing config should be left alone")
}

func TestInit_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("host: old-pi\n"), 0644))

	err := Init(InitOptions{Path: path, Host: "new-pi", Overwrite: true, NonInteractive: true}, &bytes.Buffer{})
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "new-pi", cfg.Host)
}

func TestInit_Invalid(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		err := Init(InitOptions{NonInteractive: true}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
	})

	t.Run("host with spaces", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.ConfigFileName)
		err := Init(InitOptions{Path: path, Host: "my pi", NonInteractive: true}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrConfig))
		assert.NoFileExists(t, path)
	})

}

func TestInit_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boincmon", "config.yaml")

	require.NoError(t, Init(InitOptions{Path: path, NonInteractive: true}, &bytes.Buffer{}))
	assert.FileExists(t, path)
}

func TestInitCommandFlags(t *testing.T) {
	for _, name := range []string{"host", "force", "global", "non-interactive"} {
		assert.NotNil(t, initCmd.Flags().Lookup(name), "--%s should be registered", name)
	}
	assert.Equal(t, "f", initCmd.Flags().Lookup("force").Shorthand)
}
