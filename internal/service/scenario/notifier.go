package scenario

import (
	"context"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/internal/service/telegram/templates"
)

// Notifier уведомляет менеджеров о ветках сценариев.
// Уведомление информационное: ошибки логируются, наружу возвращается только признак успеха
type Notifier struct {
	provider SenderProvider
	logger   Logger
}

// New создаёт notifier поверх ленивого менеджерского бота
func New(provider SenderProvider, logger Logger) *Notifier {
	return &Notifier{
		provider: provider,
		logger:   logger,
	}
}

// Notify форматирует событие и отправляет его менеджерам
func (n *Notifier) Notify(ctx context.Context, event domain.ScenarioEvent, payload domain.ScenarioPayload) bool {
	text, ok := templates.Scenario(event, payload)
	if !ok {
		n.logger.Warn("Scenario notification skipped: unsupported event %q for scenario %s", event, payload.ScenarioID)
		return false
	}

	if err := ctx.Err(); err != nil {
		n.logger.Warn("Scenario notification %s for scenario %s cancelled: %v", event, payload.ScenarioID, err)
		return false
	}

	sender, err := n.provider()
	if err != nil {
		n.logger.Error("Scenario notification %s for scenario %s: manager bot unavailable: %v", event, payload.ScenarioID, err)
		return false
	}

	if _, err := sender.SendText(domain.DeliveryStrict, text); err != nil {
		n.logger.Error("Failed to send scenario notification %s for scenario %s: %v", event, payload.ScenarioID, err)
		return false
	}

	n.logger.Info("Scenario notification %s sent for scenario %s (project %s)", event, payload.ScenarioID, payload.ProjectID)
	return true
}
