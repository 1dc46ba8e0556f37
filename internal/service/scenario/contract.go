package scenario

import (
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

// TextSender менеджерский бот, через который уходят уведомления о сценариях
type TextSender interface {
	SendText(policy domain.DeliveryPolicy, text string) (domain.SentMessage, error)
}

// SenderProvider лениво возвращает менеджерского бота
type SenderProvider func() (TextSender, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
