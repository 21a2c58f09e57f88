package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

func TestRunPlayUnknownMaze(t *testing.T) {
	err := runPlay(nil, []string{"labyrinth"})
	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrUnknownGame)
}

func TestRunPlayBadConfigReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: 1\n"), 0o644))
	maze.SetConfigPath(path)
	maze.SetEnvFile("")
	t.Cleanup(func() {
		maze.SetConfigPath("")
		maze.SetEnvFile(".env")
	})

	err := runPlay(nil, []string{"maze"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot load config")
}

func TestSessionLoggerWritesAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "maze.log")
	flagLogFile, flagLogLevel = path, "info"
	t.Cleanup(func() { flagLogFile, flagLogLevel = "", "info" })

	logger, closeLog, err := sessionLogger()
	require.NoError(t, err)
	logger.Info("run started", "game", "maze")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run started")
}
