package notify_chat_message

import (
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

// ChatBot бот чатов проектов
type ChatBot interface {
	NotifyChatMessage(policy domain.DeliveryPolicy, p domain.ChatMessage) (domain.SentMessage, error)
	SendProjectDetails(policy domain.DeliveryPolicy, p domain.ProjectDetails) (domain.SentMessage, error)
}

// ChatProvider возвращает чат-бота, создавая его при первом обращении
type ChatProvider func() (ChatBot, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
