package notify_project_approval

import (
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

// ManagerBot бот менеджеров, принимающий запросы на одобрение
type ManagerBot interface {
	SendProjectApprovalRequest(policy domain.DeliveryPolicy, p domain.ProjectApproval) (domain.SentMessage, error)
	SendAtomicConstructorApprovalRequest(policy domain.DeliveryPolicy, p domain.AtomicConstructorApproval) (domain.SentMessage, error)
}

// ManagerProvider возвращает бота менеджеров, создавая его при первом обращении
type ManagerProvider func() (ManagerBot, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
