package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.AppEnv)
	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, "https://itzpire.com/download/instagram", cfg.InstagramAPIURL)
	assert.Equal(t, "https://api.ryzendesu.vip/api/downloader/ttdl", cfg.TikTokAPIURL)
	assert.Equal(t, 10, cfg.MaxMediaPerGroup)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.MediaFetchTimeout)
	assert.Equal(t, 10, cfg.DailyLimit)
	assert.Equal(t, 8080, cfg.HealthPort)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("MAX_FILE_SIZE_MB", "50")
	t.Setenv("DAILY_LIMIT", "3")
	t.Setenv("REQUEST_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(50*1024*1024), cfg.MaxFileSizeBytes())
	assert.Equal(t, 3, cfg.DailyLimit)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "placeholder")
	require.NoError(t, os.Unsetenv("BOT_TOKEN"))

	_, err := Load()
	require.Error(t, err)
}
