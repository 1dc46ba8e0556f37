package notify_accreditation

import (
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

// ManagerBot бот менеджеров, получающий заявки на аккредитацию
type ManagerBot interface {
	SendAccreditationRequest(policy domain.DeliveryPolicy, p domain.AccreditationRequest) (domain.SentMessage, error)
	SendAccreditationDecision(policy domain.DeliveryPolicy, p domain.AccreditationDecision) (domain.SentMessage, error)
}

// ManagerProvider возвращает бота менеджеров, создавая его при первом обращении
type ManagerProvider func() (ManagerBot, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
