package bot

import (
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

// Transport интерфейс транспорта Telegram Bot API, привязанного к одному токену
type Transport interface {
	SendMessage(msg domain.OutboundMessage) (domain.SentMessage, error)
	SendDocument(doc domain.OutboundDocument) (domain.SentMessage, error)
	SendPhoto(photo domain.OutboundPhoto) (domain.SentMessage, error)
	AnswerCallbackQuery(answer domain.CallbackAnswer) error
	ResolveFileURL(fileID string) (string, error)
}

// TransportFactory создаёт транспорт для идентичности бота
type TransportFactory func(identity domain.BotIdentity) (Transport, error)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учёта уведомлений
type Metrics interface {
	IncNotification(bot, kind, result string)
}
