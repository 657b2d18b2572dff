package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigPrintsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 3, decoded["countdown_seconds"])
	assert.Equal(t, true, decoded["sound_enabled"])
}

func TestConfigAppliesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("countdown_seconds: 5\n"), 0o644))

	out, err := execute(t, "config", "--config", path, "--countdown", "10", "--mute")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 10, decoded["countdown_seconds"])
	assert.Equal(t, false, decoded["sound_enabled"])
}

func TestConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("countdown_seconds: 5\n"), 0o644))

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 5, decoded["countdown_seconds"])
}

func TestCountdownFlagIsValidated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	_, err := execute(t, "config", "--config", path, "--countdown", "90")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "countdown must be between 0 and 59")
}

func TestConsoleRunsUntilDeadline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	out, err := execute(t, "console", "--config", path, "--countdown", "0", "--mute", "--for", "300ms")
	require.NoError(t, err)
	assert.Contains(t, out, "00:00\n")
}

func TestOpacityToAlpha(t *testing.T) {
	assert.Equal(t, uint8(0), opacityToAlpha(-0.5))
	assert.Equal(t, uint8(255), opacityToAlpha(2))
	assert.Equal(t, uint8(229), opacityToAlpha(0.9))
}
