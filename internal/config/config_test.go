package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 1500*time.Millisecond, cfg.Game.BotThinkDelay())
	assert.Equal(t, 3*time.Second, cfg.Game.RestartDelay())
	assert.Equal(t, 10*time.Second, cfg.Game.ClickWindow())
	assert.Equal(t, time.Second/60, cfg.Game.TickInterval())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 8080
redis:
  addr: redis:6379
  db: 2
game:
  bot_think_delay_ms: 10
  restart_delay_sec: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 10*time.Millisecond, cfg.Game.BotThinkDelay())
	// Unset fields fall back to defaults.
	assert.Equal(t, 10, cfg.Game.ClickWindowSec)
	assert.Equal(t, 60, cfg.Game.TickRate)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
