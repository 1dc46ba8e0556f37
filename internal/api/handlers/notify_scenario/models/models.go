package models

import (
	"errors"
	"strings"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

var (
	errUnknownEvent       = errors.New("event должен быть scenario_created, scenario_selected или scenario_frozen")
	errMissingScenarioID  = errors.New("необходимо указать scenario_id")
	errInvalidBranchPoint = errors.New("branched_at_step должен быть положительным")
)

// ScenarioRequest HTTP запрос о событии ветки сценария
type ScenarioRequest struct {
	Event          domain.ScenarioEvent `json:"event"`
	ScenarioName   string               `json:"scenario_name,omitempty"`
	ScenarioID     string               `json:"scenario_id"`
	ProjectID      string               `json:"project_id,omitempty"`
	CreatorRole    domain.CreatorRole   `json:"creator_role,omitempty"`
	BranchedAtStep *int                 `json:"branched_at_step,omitempty"`
}

// Validate проверяет событие и обязательные поля
func (r *ScenarioRequest) Validate() error {
	if !r.Event.IsValid() {
		return errUnknownEvent
	}
	if strings.TrimSpace(r.ScenarioID) == "" {
		return errMissingScenarioID
	}
	if r.BranchedAtStep != nil && *r.BranchedAtStep <= 0 {
		return errInvalidBranchPoint
	}
	return nil
}

// ToDomain преобразует HTTP модель в доменную
func (r *ScenarioRequest) ToDomain() domain.ScenarioPayload {
	return domain.ScenarioPayload{
		ScenarioName:   r.ScenarioName,
		ScenarioID:     r.ScenarioID,
		ProjectID:      r.ProjectID,
		CreatorRole:    r.CreatorRole,
		BranchedAtStep: r.BranchedAtStep,
	}
}

// ScenarioResponse результат уведомления. Ошибка доставки не считается ошибкой запроса
type ScenarioResponse struct {
	Delivered bool `json:"delivered"`
}
