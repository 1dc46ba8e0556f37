package templates

import (
	"fmt"
	"strings"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

var roleLabels = map[domain.CreatorRole]string{
	domain.RoleClient:   "Клиент",
	domain.RoleManager:  "Менеджер",
	domain.RoleSupplier: "Поставщик",
}

var stepLabels = map[int]string{
	1: "Данные клиента",
	2: "Спецификация",
	3: "Банковские данные",
	4: "Способы оплаты",
	5: "Реквизиты для оплаты",
	6: "Файлы",
	7: "Реквизиты клиента",
}

var scenarioHeaders = map[domain.ScenarioEvent]string{
	domain.ScenarioCreated:  "🌿 СОЗДАНА НОВАЯ ВЕТКА СЦЕНАРИЯ",
	domain.ScenarioSelected: "✅ ВЫБРАН СЦЕНАРИЙ",
	domain.ScenarioFrozen:   "🧊 СЦЕНАРИЙ ЗАМОРОЖЕН",
}

// RoleLabel подпись роли, для неизвестной роли возвращается сама роль
func RoleLabel(role domain.CreatorRole) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return orDefault(string(role), notSpecified)
}

// StepLabel подпись шага конструктора, «Шаг N» для шага без названия
func StepLabel(step int) string {
	if label, ok := stepLabels[step]; ok {
		return label
	}
	return fmt.Sprintf("Шаг %d", step)
}

// Scenario текст уведомления о ветке сценария.
// false, если событие не поддерживается
func Scenario(event domain.ScenarioEvent, p domain.ScenarioPayload) (string, bool) {
	header, ok := scenarioHeaders[event]
	if !ok {
		return "", false
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "📋 Сценарий: %s\n", orDefault(p.ScenarioName, notSpecified))
	fmt.Fprintf(&b, "🆔 ID сценария: %s\n", p.ScenarioID)
	fmt.Fprintf(&b, "📁 Проект: %s\n", p.ProjectID)
	fmt.Fprintf(&b, "👤 Автор: %s", RoleLabel(p.CreatorRole))

	if p.BranchedAtStep != nil {
		fmt.Fprintf(&b, "\n🔀 Ответвление от шага: %s", StepLabel(*p.BranchedAtStep))
	}

	return b.String(), true
}
