package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WHATSAPP_GROUP_NAME", "IT Jobs")

	cfg := Load()

	assert.Equal(t, "IT Jobs", cfg.GroupName)
	assert.Equal(t, "jobs_data.json", cfg.JobsFile)
	assert.Equal(t, "screenshots", cfg.ScreenshotsDir)
	assert.Equal(t, "extracted_images", cfg.ExtractedImagesDir)
	assert.Equal(t, "whatsapp_session", cfg.SessionDir)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 10, cfg.HistoryScrolls)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, float64(10), cfg.RateLimitRPS)
	assert.True(t, cfg.OCREnabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WHATSAPP_GROUP_NAME", "Dev Jobs VN")
	t.Setenv("PORT", "8080")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001234567890")

	cfg := Load()

	assert.Equal(t, "Dev Jobs VN", cfg.GroupName)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, int64(-1001234567890), cfg.TelegramChatID)
}
