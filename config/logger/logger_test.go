package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelsWriteToSeparateFiles(t *testing.T) {
	dir := t.TempDir()
	log := NewLogger(dir, "debug")

	log.Http.Info.Info().Str("path", "/api/v1/chats").Msg("request served")
	log.WS.Warning.Warn().Str("userId", "u1").Msg("connection rejected")

	httpInfo, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.Contains(t, string(httpInfo), "request served")
	assert.Contains(t, string(httpInfo), "path=/api/v1/chats")

	wsWarning, err := os.ReadFile(filepath.Join(dir, "ws.warning.log"))
	require.NoError(t, err)
	assert.Contains(t, string(wsWarning), "[WARN]")
	assert.Contains(t, string(wsWarning), "connection rejected")
}

func TestLevelFiltersLowerSeverities(t *testing.T) {
	dir := t.TempDir()
	log := NewLogger(dir, "warn")

	log.WS.Trace.Trace().Msg("heartbeat")

	_, err := os.Stat(filepath.Join(dir, "ws.trace.log"))
	assert.True(t, os.IsNotExist(err))
}
