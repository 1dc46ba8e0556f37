package templates

import (
	"fmt"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

const (
	// Подписи кнопок чат-бота
	ButtonOpenChat       = "💬 Открыть чат проекта"
	ButtonProjectDetails = "📋 Детали проекта"
	ButtonQuickReplyOK   = "✅ Все в порядке"
	ButtonQuickClarify   = "❓ Нужны уточнения"

	// ProjectIDLinePrefix начало строки с ID проекта, по ней ответ менеджера связывается с комнатой
	ProjectIDLinePrefix = "🆔 Проект: "

	dateLayout = "02.01.2006"
)

var quickReplies = map[domain.QuickReplyKind]string{
	domain.QuickReplyOK:      "✅ Спасибо за ваше сообщение! Все в порядке, продолжаем работу над проектом.",
	domain.QuickReplyClarify: "❓ Спасибо за вопрос! Нам нужны дополнительные уточнения. Менеджер свяжется с вами в ближайшее время.",
}

// ChatMessage текст уведомления о сообщении в чате проекта, HTML
func ChatMessage(p domain.ChatMessage) string {
	return fmt.Sprintf(`💬 НОВОЕ СООБЩЕНИЕ В ЧАТЕ

%s%s
📋 Название: %s
🏢 Компания: %s
👤 От кого: %s

💭 Сообщение:
"%s"

❗️ Ответьте на это сообщение, чтобы отправить ответ клиенту в чат.`,
		ProjectIDLinePrefix,
		HTML(p.ProjectID),
		HTML(orDefault(p.ProjectName, notSpecified)),
		HTML(orDefault(p.CompanyName, notSpecified)),
		HTML(orDefault(p.UserName, "Клиент")),
		HTML(p.UserMessage),
	)
}

// ProjectDetails карточка проекта, HTML
func ProjectDetails(p domain.ProjectDetails) string {
	amount := notSpecified
	if p.Amount != nil {
		amount = formatAmount(*p.Amount)
	}

	created := notSpecified
	if !p.CreatedAt.IsZero() {
		created = p.CreatedAt.Format(dateLayout)
	}

	return fmt.Sprintf(`📋 ДЕТАЛИ ПРОЕКТА

🆔 ID: %s
📋 Название: %s
📊 Статус: %s
💰 Сумма: %s %s
🏢 Компания: %s
📧 Email: %s
📅 Создан: %s`,
		HTML(p.ProjectID),
		HTML(p.ProjectName),
		HTML(p.ProjectStatus),
		amount,
		HTML(p.Currency),
		HTML(p.CompanyName),
		HTML(p.CompanyEmail),
		created,
	)
}

// QuickReply текст быстрого ответа, пустая строка для неизвестного вида
func QuickReply(kind domain.QuickReplyKind) string {
	return quickReplies[kind]
}
