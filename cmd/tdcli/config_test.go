package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `
tdlib:
    api_id: 42
    api_hash: 0123456789abcdef
relay: ws://localhost:29321/relay
`))
	require.NoError(t, err)
	assert.Equal(t, int32(42), cfg.TDLib.APIID)
	assert.Equal(t, "ws://localhost:29321/relay", cfg.Relay)
	// Defaults come from the example config.
	assert.Equal(t, "gotdlib", cfg.TDLib.DeviceInfo.DeviceModel)
	assert.Equal(t, int32(1), cfg.TDLibVerbosity)
	assert.Equal(t, "info", cfg.LogLevel)

	req := cfg.TDLib.Request()
	assert.Equal(t, "./tdlib-db", req.DatabaseDirectory)
	assert.True(t, req.UseMessageDatabase)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(writeConfig(t, ExampleConfig))
	assert.ErrorContains(t, err, "api_hash is required")

	_, err = loadConfig(writeConfig(t, "tdlib:\n    api_id: 1\n    api_hash: x\nlog_level: loud\n"))
	assert.ErrorContains(t, err, "log_level")

	_, err = loadConfig(writeConfig(t, "tdlib: ["))
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
