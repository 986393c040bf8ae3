package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := (&rootFlags{}).loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Buttons", cfg.Editor.StartComponent)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "canvasgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  debounce: 50ms\nlog:\n  level: warn\n"), 0o644))

	cfg, err := (&rootFlags{configPath: path, logFile: "/tmp/x.log"}).loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.Editor.Debounce)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/x.log", cfg.Log.File)

	cfg, err = (&rootFlags{configPath: path, logLevel: "error", verbose: true}).loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	_, err := (&rootFlags{configPath: filepath.Join(t.TempDir(), "missing.yaml")}).loadConfig()
	require.Error(t, err)
	var cmdErr *commandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "load configuration", cmdErr.operation)

	_, err = (&rootFlags{logLevel: "verbose"}).loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "applying flags")
}

func TestCommandErrorFormatting(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := newCommandError("render", "Buttons", cause, "Try again.")

	assert.Equal(t, "Failed to render: Buttons\n\nError: boom\n\nSuggestion: Try again.", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to copy", newCommandError("copy", "", nil, "").Error())
}

func TestEditorRequiresTerminal(t *testing.T) {
	t.Parallel()

	// go test never attaches a terminal to stdin.
	_, err := execute(t, "editor", "--component", "Badges")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotTerminal)

	_, err = execute(t)
	assert.ErrorIs(t, err, errNotTerminal)
}
