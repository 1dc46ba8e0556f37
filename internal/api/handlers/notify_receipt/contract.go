package notify_receipt

import (
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

// ManagerBot бот менеджеров, отправляющий уведомления по чекам
type ManagerBot interface {
	SendClientReceiptApprovalRequest(policy domain.DeliveryPolicy, p domain.ClientReceiptApproval) (domain.SentMessage, error)
	SendReceiptApprovalRequest(policy domain.DeliveryPolicy, p domain.ReceiptApproval) (domain.SentMessage, error)
	SendSupplierReceiptRequest(policy domain.DeliveryPolicy, p domain.SupplierReceiptRequest) (domain.SentMessage, error)
	SendClientConfirmationRequest(policy domain.DeliveryPolicy, p domain.ClientConfirmationRequest) (domain.SentMessage, error)
}

// ManagerProvider возвращает бота менеджеров, создавая его при первом обращении
type ManagerProvider func() (ManagerBot, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
