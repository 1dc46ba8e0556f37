package notify_scenario

import (
	"context"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

// ScenarioNotifier сообщает менеджерам о событиях веток сценария
type ScenarioNotifier interface {
	Notify(ctx context.Context, event domain.ScenarioEvent, payload domain.ScenarioPayload) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
