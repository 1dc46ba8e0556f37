package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var telegramEnv = []string{
	"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "TELEGRAM_CHAT_BOT_TOKEN", "TELEGRAM_CHAT_BOT_CHAT_ID",
	"TELEGRAM_WEBHOOK_SECRET", "TELEGRAM_API_ENDPOINT", "TELEGRAM_REQUEST_TIMEOUT", "NEXT_PUBLIC_BASE_URL",
	"HTTP_PORT", "LOG_LEVEL", "LOG_FILE", "METRICS_ENABLED", "METRICS_PATH", "METRICS_SERVICE_NAME",
}

// clearEnv сбрасывает переменные на время теста. t.Setenv восстановит исходные значения
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range telegramEnv {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "config.toml", `
[server]
http_port = 9000

[metrics]
enabled = true

[telegram]
request_timeout = 5
base_url = "https://get2b.example"

[telegram.manager_bot]
token = "1:manager"
chat_id = "-1001"

[telegram.chat_bot]
token = "2:chat"
chat_id = "-2002"
`)

	cfg, err := LoadWithEnvFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 5*time.Second, cfg.Telegram.Timeout())
	assert.Equal(t, "https://get2b.example", cfg.Telegram.BaseURL)
	assert.Equal(t, BotConfig{Token: "1:manager", ChatID: "-1001"}, cfg.Telegram.ManagerBot)
	assert.Equal(t, BotConfig{Token: "2:chat", ChatID: "-2002"}, cfg.Telegram.ChatBot)
}

func TestLoad_EnvOverridesTOML(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "config.toml", `
[telegram.manager_bot]
token = "from-file"
chat_id = "-1001"
`)
	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")
	t.Setenv("TELEGRAM_CHAT_BOT_TOKEN", "chat-env")
	t.Setenv("NEXT_PUBLIC_BASE_URL", "https://app.get2b.example")
	t.Setenv("TELEGRAM_REQUEST_TIMEOUT", "3")

	cfg, err := LoadWithEnvFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Telegram.ManagerBot.Token)
	assert.Equal(t, "chat-env", cfg.Telegram.ChatBot.Token)
	assert.Equal(t, "https://app.get2b.example", cfg.Telegram.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Telegram.Timeout())
}

func TestLoad_ChatBotFallsBackToManagerChat(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_CHAT_ID", "-1001")

	cfg, err := LoadWithEnvFile(filepath.Join(t.TempDir(), "missing.toml"), "")
	require.NoError(t, err)

	assert.Equal(t, "-1001", cfg.Telegram.ChatBot.ChatID)
}

func TestLoad_MissingCredentialsAreNotAnError(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadWithEnvFile(filepath.Join(t.TempDir(), "missing.toml"), "")
	require.NoError(t, err)

	assert.Empty(t, cfg.Telegram.ManagerBot.Token)
	assert.Empty(t, cfg.Telegram.ChatBot.Token)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "http://localhost:3000", cfg.Telegram.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Telegram.Timeout())
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_CHAT_ID", "-42")

	envFile := writeFile(t, ".env", "TELEGRAM_BOT_TOKEN=dotenv-token\nTELEGRAM_CHAT_ID=-1\n")

	cfg, err := LoadWithEnvFile(filepath.Join(t.TempDir(), "missing.toml"), envFile)
	require.NoError(t, err)

	assert.Equal(t, "dotenv-token", cfg.Telegram.ManagerBot.Token)
	// Уже заданная переменная имеет приоритет над .env
	assert.Equal(t, "-42", cfg.Telegram.ManagerBot.ChatID)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := LoadWithEnvFile(writeFile(t, "config.toml", "[server\nhttp_port = 1"), "")
	assert.Error(t, err)

	_, err = LoadWithEnvFile(writeFile(t, "config.toml", "[server]\nhttp_port = 70000"), "")
	assert.Error(t, err)

	_, err = LoadWithEnvFile(writeFile(t, "config.toml", "[telegram]\nrequest_timeout = -1"), "")
	assert.Error(t, err)
}
