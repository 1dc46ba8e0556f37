package templates

import (
	"fmt"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

// Ответы на команды отправляются с parse_mode=Markdown,
// поэтому подчёркивания в именах команд экранированы

const chatStartText = `🤖 Добро пожаловать в Get2B ChatHub Assistant!

👋 Привет, %s!

Я бот для уведомлений о сообщениях в чатах проектов Get2B и быстрых ответов менеджеров.

🔧 *Мои функции:*
💬 Уведомления о новых сообщениях клиентов
⚡ Быстрые ответы менеджеров
🔔 Алерты по проектным чатам
📊 Статистика активности чатов

📋 *Доступные команды:*
/help - Справка по командам
/status - Статус чатов и уведомлений
/projects - Список активных проектных чатов
/mute - Отключить уведомления
/unmute - Включить уведомления

✨ Готов к работе! Жду уведомлений о новых сообщениях.`

const chatHelpText = `❓ *Справка по Get2B ChatHub Assistant*

📋 *Основные команды:*
/start - 🚀 Запустить бота и получить инструкции
/help - ❓ Справка по командам
/status - 📊 Статус чатов и уведомлений
/projects - 📋 Список активных проектных чатов
/mute - 🔕 Отключить уведомления
/unmute - 🔔 Включить уведомления

💬 *Как отвечать клиентам:*
1. Получите уведомление о новом сообщении
2. Просто напишите ответ в этот чат
3. Ваш ответ автоматически попадет к клиенту

🔔 *Уведомления:*
Бот присылает алерты когда клиенты пишут в проектные чаты. Вы можете мгновенно отвечать прямо через Telegram!`

const chatStatusText = `📊 *Статус системы Get2B*

🔔 Уведомления: ✅ Включены
⚡ Бот статус: ✅ Активен
🤖 Версия: ChatHub Assistant v1.1

💡 Используйте команды для получения подробной статистики.`

const chatProjectsText = `📋 *Активные проектные чаты*

💡 При новых сообщениях в этих чатах вы получите уведомления!
🔧 Функция просмотра списка проектов в разработке.`

const chatMuteText = `🔕 *Уведомления отключены*

Вы больше не будете получать уведомления о новых сообщениях в чатах.

Чтобы включить обратно, используйте команду /unmute`

const chatUnmuteText = `🔔 *Уведомления включены*

Теперь вы будете получать уведомления о всех новых сообщениях в проектных чатах.

🎯 Готов к работе!`

const managerStartText = `🤖 Добро пожаловать в Get2B Manager Bot!

👋 Привет, %s!

Я присылаю менеджерам уведомления о чеках, проектах, профилях и заявках на аккредитацию.

📋 *Доступные команды:*
/help - Справка по командам
/accredit - Аккредитация поставщиков
/accredit\_pending - Ожидающие заявки`

const managerHelpText = `❓ *Справка по Get2B Manager Bot*

🏪 *Аккредитация поставщиков:*
/accredit - Общая информация
/accredit\_pending - Ожидающие заявки
/accredit\_view ID - Детали заявки
/accredit\_approve ID - Одобрить
/accredit\_reject ID причина - Отклонить

💡 Кнопки под уведомлениями выполняют те же действия.`

const managerAccreditText = `🏪 *Аккредитация поставщиков*

Поставщик подаёт заявку в веб-интерфейсе, после чего менеджеры получают уведомление с кнопками просмотра, одобрения и отклонения.
Одобренный поставщик попадает в публичный каталог Get2B.

📋 Заявки: %s`

const managerPendingText = `⏳ *Ожидающие заявки на аккредитацию*

Список заявок доступен в веб-интерфейсе: %s`

const managerViewText = `📋 *Заявка на аккредитацию* %s

Детали заявки доступны в веб-интерфейсе: %s`

const managerApproveText = `✅ *Одобрение заявки* %s

Подтвердите одобрение кнопкой «✅ Одобрить аккредитацию» в уведомлении или в веб-интерфейсе: %s`

const managerRejectText = `❌ *Отклонение заявки* %s
📝 Причина: %s

Подтвердите отклонение кнопкой «❌ Отклонить заявку» в уведомлении или в веб-интерфейсе: %s`

const managerMissingIDText = "⚠️ Укажите ID заявки: %s ID"

const managerMissingReasonText = "⚠️ Укажите причину отклонения: /accredit\\_reject ID причина"

const unknownCommandText = `❓ Неизвестная команда: %s

Используйте /help для просмотра доступных команд.`

// ChatCommandResponse ответ чат-бота на slash-команду
func ChatCommandResponse(cmd domain.Command, userName string) string {
	switch cmd.Kind {
	case domain.CommandStart:
		return fmt.Sprintf(chatStartText, Markdown(userName))
	case domain.CommandHelp:
		return chatHelpText
	case domain.CommandStatus:
		return chatStatusText
	case domain.CommandProjects:
		return chatProjectsText
	case domain.CommandMute:
		return chatMuteText
	case domain.CommandUnmute:
		return chatUnmuteText
	default:
		return UnknownCommand(cmd)
	}
}

// ManagerCommandResponse ответ менеджерского бота на slash-команду
func ManagerCommandResponse(cmd domain.Command, userName, baseURL string) string {
	adminURL := Markdown(WebURL(baseURL, PathCatalogAdmin))

	if cmd.RequiresID() && cmd.ID == "" {
		return fmt.Sprintf(managerMissingIDText, Markdown(cmd.Verb))
	}

	switch cmd.Kind {
	case domain.CommandStart:
		return fmt.Sprintf(managerStartText, Markdown(userName))
	case domain.CommandHelp:
		return managerHelpText
	case domain.CommandAccredit:
		return fmt.Sprintf(managerAccreditText, adminURL)
	case domain.CommandAccreditPending:
		return fmt.Sprintf(managerPendingText, adminURL)
	case domain.CommandAccreditView:
		return fmt.Sprintf(managerViewText, Markdown(cmd.ID), adminURL)
	case domain.CommandAccreditApprove:
		return fmt.Sprintf(managerApproveText, Markdown(cmd.ID), adminURL)
	case domain.CommandAccreditReject:
		if cmd.Reason == "" {
			return managerMissingReasonText
		}
		return fmt.Sprintf(managerRejectText, Markdown(cmd.ID), Markdown(cmd.Reason), adminURL)
	default:
		return UnknownCommand(cmd)
	}
}

// UnknownCommand общий ответ на неизвестную команду
func UnknownCommand(cmd domain.Command) string {
	return fmt.Sprintf(unknownCommandText, Markdown(cmd.Raw))
}
