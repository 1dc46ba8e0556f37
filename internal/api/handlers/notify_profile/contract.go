package notify_profile

import (
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

// ManagerBot бот менеджеров, проверяющих новые профили
type ManagerBot interface {
	SendClientProfileNotification(policy domain.DeliveryPolicy, p domain.ClientProfile) (domain.SentMessage, error)
	SendSupplierProfileNotification(policy domain.DeliveryPolicy, p domain.SupplierProfile) (domain.SentMessage, error)
}

// ManagerProvider возвращает бота менеджеров, создавая его при первом обращении
type ManagerProvider func() (ManagerBot, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
