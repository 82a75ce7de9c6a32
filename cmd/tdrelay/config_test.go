package main

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:29321", cfg.Listen)
	assert.Equal(t, time.Second, cfg.ReceiveTimeout)
	assert.Equal(t, 256, cfg.SendQueue)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: :8080\nreceive_timeout: 250ms\n"), 0o600))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, 250*time.Millisecond, cfg.ReceiveTimeout)
	assert.Equal(t, "info", cfg.LogLevel)

	require.NoError(t, os.WriteFile(path, []byte("send_queue: 0\n"), 0o600))
	_, err = loadConfig(path)
	assert.ErrorContains(t, err, "send_queue")
}

func TestCheckOrigin(t *testing.T) {
	cfg := &Config{}
	req := httptest.NewRequest("GET", "/relay", nil)
	assert.True(t, cfg.CheckOrigin(req))
	req.Header.Set("Origin", "https://evil.example")
	assert.True(t, cfg.CheckOrigin(req))

	cfg.AllowedOrigins = []string{"https://app.example"}
	assert.False(t, cfg.CheckOrigin(req))
	req.Header.Set("Origin", "https://app.example")
	assert.True(t, cfg.CheckOrigin(req))
	req.Header.Del("Origin")
	assert.True(t, cfg.CheckOrigin(req))
}
