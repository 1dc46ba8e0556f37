package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultEnvFile локальный файл переменных окружения для разработки
const DefaultEnvFile = ".env"

// Config представляет полную конфигурацию приложения
type Config struct {
	Logs     LogsConfig     `toml:"logs"`
	Server   ServerConfig   `toml:"server"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Telegram TelegramConfig `toml:"telegram"`
}

// LogsConfig содержит настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// MetricsConfig содержит настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TelegramConfig содержит настройки обоих ботов
type TelegramConfig struct {
	RequestTimeout int       `toml:"request_timeout"` // в секундах
	APIEndpoint    string    `toml:"api_endpoint"`    // Шаблон вида https://host/bot%s/%s
	BaseURL        string    `toml:"base_url"`        // Адрес веб-интерфейса для кнопок-ссылок
	WebhookSecret  string    `toml:"webhook_secret"`
	ManagerBot     BotConfig `toml:"manager_bot"`
	ChatBot        BotConfig `toml:"chat_bot"`
}

// BotConfig учётные данные одного бота.
// Не проверяются при загрузке: отсутствие обнаруживается при первом обращении к боту
type BotConfig struct {
	Token  string `toml:"token"`
	ChatID string `toml:"chat_id"`
}

// Timeout таймаут одного вызова Telegram Bot API
func (t TelegramConfig) Timeout() time.Duration {
	return time.Duration(t.RequestTimeout) * time.Second
}

// Load загружает конфигурацию из TOML файла, .env и переменных окружения
func Load(path string) (*Config, error) {
	return LoadWithEnvFile(path, DefaultEnvFile)
}

// LoadWithEnvFile как Load, но с явным путём к .env
func LoadWithEnvFile(path, envFile string) (*Config, error) {
	var cfg Config

	// Читаем TOML файл. Без файла сервис настраивается только окружением
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to decode TOML config: %w", err)
	}

	// Уже заданные переменные окружения .env не перезаписывает
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	overrideFromEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// overrideFromEnv переопределяет значения из переменных окружения
func overrideFromEnv(cfg *Config) {
	// Server
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.HTTPPort = port
		}
	}

	// Logs
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Logs.File = v
	}

	// Metrics
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Metrics.Enabled = enabled
		}
	}
	if v := os.Getenv("METRICS_PATH"); v != "" {
		cfg.Metrics.Path = v
	}
	if v := os.Getenv("METRICS_SERVICE_NAME"); v != "" {
		cfg.Metrics.ServiceName = v
	}

	// Telegram
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.ManagerBot.Token = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ManagerBot.ChatID = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_BOT_TOKEN"); v != "" {
		cfg.Telegram.ChatBot.Token = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_BOT_CHAT_ID"); v != "" {
		cfg.Telegram.ChatBot.ChatID = v
	}
	if v := os.Getenv("TELEGRAM_WEBHOOK_SECRET"); v != "" {
		cfg.Telegram.WebhookSecret = v
	}
	if v := os.Getenv("TELEGRAM_API_ENDPOINT"); v != "" {
		cfg.Telegram.APIEndpoint = v
	}
	if v := os.Getenv("TELEGRAM_REQUEST_TIMEOUT"); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			cfg.Telegram.RequestTimeout = timeout
		}
	}
	if v := os.Getenv("NEXT_PUBLIC_BASE_URL"); v != "" {
		cfg.Telegram.BaseURL = v
	}
}

// validate проверяет корректность конфигурации и заполняет значения по умолчанию
func validate(cfg *Config) error {
	// Server validation
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.HTTPPort < 0 || cfg.Server.HTTPPort > 65535 {
		return fmt.Errorf("HTTP port must be between 1 and 65535")
	}

	// Logs validation
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Logs.File == "" {
		cfg.Logs.File = "./logs/app.log"
	}

	// Set defaults for timeouts if not specified
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}

	// Metrics validation and defaults
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "notificationservice"
	}

	// Telegram defaults. Токены и chat_id не проверяются
	if cfg.Telegram.RequestTimeout < 0 {
		return fmt.Errorf("telegram request timeout must not be negative")
	}
	if cfg.Telegram.RequestTimeout == 0 {
		cfg.Telegram.RequestTimeout = 10
	}
	if cfg.Telegram.BaseURL == "" {
		cfg.Telegram.BaseURL = "http://localhost:3000"
	}
	// Чат-бот пишет в чат менеджеров, если свой чат не задан
	if cfg.Telegram.ChatBot.ChatID == "" {
		cfg.Telegram.ChatBot.ChatID = cfg.Telegram.ManagerBot.ChatID
	}

	return nil
}
