package telegram

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI интерфейс для Telegram Bot API
// Абстракция над tgbotapi.BotAPI для упрощения тестирования
type BotAPI interface {
	// Send отправляет сообщение через Telegram Bot API
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)

	// Request выполняет кастомный запрос к Telegram API
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)

	// GetFile получает метаданные файла по file_id
	GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error)
}

// Metrics интерфейс для учёта вызовов API
type Metrics interface {
	ObserveTelegramRequest(bot, method string, err error, d time.Duration)
}
