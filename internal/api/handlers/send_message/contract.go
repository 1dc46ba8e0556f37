package send_message

import (
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

// ManagerBot бот менеджеров: текст и документы
type ManagerBot interface {
	SendText(policy domain.DeliveryPolicy, text string) (domain.SentMessage, error)
	SendDocument(policy domain.DeliveryPolicy, documentURL, caption string) (domain.SentMessage, error)
}

// ChatBot бот чатов проектов: уведомления и изображения
type ChatBot interface {
	SendNotice(policy domain.DeliveryPolicy, text string) (domain.SentMessage, error)
	SendPhoto(policy domain.DeliveryPolicy, photoURL, caption string) (domain.SentMessage, error)
}

// ManagerProvider возвращает бота менеджеров, создавая его при первом обращении
type ManagerProvider func() (ManagerBot, error)

// ChatProvider возвращает чат-бота, создавая его при первом обращении
type ChatProvider func() (ChatBot, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
