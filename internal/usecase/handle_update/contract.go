package handle_update

import (
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

// Bot интерфейс бота, принимающего webhook
type Bot interface {
	CommandResponse(cmd domain.Command, userName string) string
	AnswerCallbackQuery(policy domain.DeliveryPolicy, answer domain.CallbackAnswer) error
	ResolveFile(fileID, fileName string) (domain.ResolvedFile, error)
}

// QuickReplier бот, умеющий быстрые ответы (чат-бот)
type QuickReplier interface {
	QuickReplyResponse(kind domain.QuickReplyKind) (string, error)
}

// BotProvider лениво возвращает бота
type BotProvider func() (Bot, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
