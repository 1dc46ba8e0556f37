package telegram_webhook

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdateUseCase обрабатывает update одного бота
type UpdateUseCase interface {
	Execute(ctx context.Context, update tgbotapi.Update) (tgbotapi.Chattable, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
