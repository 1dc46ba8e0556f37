package domain

// ScenarioEvent событие жизненного цикла ветки сценария
type ScenarioEvent string

const (
	ScenarioCreated  ScenarioEvent = "scenario_created"
	ScenarioSelected ScenarioEvent = "scenario_selected"
	ScenarioFrozen   ScenarioEvent = "scenario_frozen"
)

// IsValid проверяет, что событие поддерживается
func (e ScenarioEvent) IsValid() bool {
	switch e {
	case ScenarioCreated, ScenarioSelected, ScenarioFrozen:
		return true
	default:
		return false
	}
}

// CreatorRole роль автора ветки сценария
type CreatorRole string

const (
	RoleClient   CreatorRole = "client"
	RoleManager  CreatorRole = "manager"
	RoleSupplier CreatorRole = "supplier"
)

// ScenarioPayload данные ветки сценария для уведомления
type ScenarioPayload struct {
	ScenarioName   string
	ScenarioID     string
	ProjectID      string
	CreatorRole    CreatorRole
	BranchedAtStep *int // Шаг, от которого создана ветка
}
