package templates

import (
	"fmt"
	"strings"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

const (
	// Подписи кнопок менеджерского бота
	ButtonApproveClientReceipt = "✅ Одобрить чек клиента"
	ButtonRejectClientReceipt  = "❌ Отклонить чек клиента"
	ButtonApproveReceipt       = "✅ Одобрить чек"
	ButtonRejectReceipt        = "❌ Отклонить чек"
	ButtonApproveInvoice       = "✅ Одобрить инвойс"
	ButtonRejectInvoice        = "❌ Отклонить инвойс"
	ButtonApproveProject       = "✅ Одобрить проект"
	ButtonRejectProject        = "❌ Отклонить проект"
	ButtonUploadSupplierRcpt   = "📤 Загрузить чек для клиента"
	ButtonAccreditView         = "📋 Детали заявки"
	ButtonAccreditApprove      = "✅ Одобрить аккредитацию"
	ButtonAccreditReject       = "❌ Отклонить заявку"
	ButtonViewProfile          = "👤 Просмотреть профиль"
	ButtonViewSupplierProfile  = "🏭 Просмотреть профиль"
	ButtonWebInterface         = "📋 Веб-интерфейс"
	ButtonProfileCorrect       = "✅ Профиль корректный"
	ButtonProfileReview        = "❌ Требует проверки"
	ButtonApprove              = "✅ Одобрить"
	ButtonReject               = "❌ Отклонить"
	ButtonRequestChanges       = "📋 Запросить изменения"
	ButtonOpenInSystem         = "🔗 Открыть в системе"
	ButtonConfirmPayment       = "✅ Подтвердить оплату"
	ButtonRequestNewReceipt    = "📋 Запросить новый чек"

	// Пути веб-интерфейса для кнопок-ссылок
	PathProfile            = "/dashboard/profile"
	PathProjectConstructor = "/dashboard/project-constructor"
	PathCatalogAdmin       = "/dashboard/catalog-admin"
)

// SupplierReceiptRequest текст запроса на загрузку чека поставщика
func SupplierReceiptRequest(p domain.SupplierReceiptRequest) string {
	return fmt.Sprintf(`Клиент дошёл до этапа получения чека.

Проект: %s
Компания: %s
Email клиента: %s
Сумма: %s %s
Способ оплаты: %s%s

❗️Пожалуйста, отправьте чек для клиента (фото/файл) в reply на это сообщение, чтобы загрузить его в систему. Чек будет автоматически прикреплён к проекту и станет доступен клиенту на сайте.`,
		p.ProjectID, p.CompanyName, p.Email, formatAmount(p.Amount), p.Currency, p.PaymentMethod, p.Requisites)
}

// ClientConfirmationRequest текст запроса чека о переводе средств
func ClientConfirmationRequest(p domain.ClientConfirmationRequest) string {
	return fmt.Sprintf(`Поставщик загрузил счет-фактуру по проекту: %s
Компания: %s
Email: %s

Пожалуйста, ответьте на это сообщение чеком, подтверждающим отправку средств.`,
		p.ProjectID, p.CompanyName, p.Email)
}

// AccreditationRequest текст заявки на аккредитацию.
// Нулевые счётчики печатаются как есть
func AccreditationRequest(p domain.AccreditationRequest) string {
	var b strings.Builder

	b.WriteString("🏪 НОВАЯ ЗАЯВКА НА АККРЕДИТАЦИЮ\n\n")
	fmt.Fprintf(&b, "📋 Поставщик: %s\n", orDefault(p.SupplierName, notSpecified))
	fmt.Fprintf(&b, "🏢 Компания: %s\n", orDefault(p.CompanyName, notSpecified))
	fmt.Fprintf(&b, "🌍 Страна: %s\n", orDefault(p.Country, notSpecifiedM))
	fmt.Fprintf(&b, "📦 Категория: %s\n", orDefault(p.Category, notSpecifiedM))
	if p.UserEmail != "" {
		fmt.Fprintf(&b, "👤 Заявитель: %s\n", p.UserEmail)
	}
	fmt.Fprintf(&b, "🛍️ Товаров в заявке: %d\n", p.ProductsCount)
	fmt.Fprintf(&b, "📜 Сертификатов: %d\n", p.CertificatesCount)
	fmt.Fprintf(&b, "📄 Юридических документов: %d\n", p.LegalDocumentsCount)
	fmt.Fprintf(&b, "🆔 ID заявки: %s\n", p.ApplicationID)

	if p.Notes != "" {
		fmt.Fprintf(&b, "\n📝 Примечания: %s\n", p.Notes)
	}

	b.WriteString("\n❗️ Требуется рассмотрение заявки на аккредитацию поставщика для добавления в публичный каталог Get2B.")

	return b.String()
}

// AccreditationDecision текст итога рассмотрения заявки, без кнопок
func AccreditationDecision(p domain.AccreditationDecision) string {
	var b strings.Builder

	if p.Approved {
		b.WriteString("✅ ЗАЯВКА НА АККРЕДИТАЦИЮ ОДОБРЕНА\n\n")
	} else {
		b.WriteString("❌ ЗАЯВКА НА АККРЕДИТАЦИЮ ОТКЛОНЕНА\n\n")
	}

	fmt.Fprintf(&b, "📋 Поставщик: %s\n", orDefault(p.SupplierName, notSpecified))
	fmt.Fprintf(&b, "🏢 Компания: %s\n", orDefault(p.CompanyName, notSpecified))
	fmt.Fprintf(&b, "👨‍💼 Менеджер: %s\n", orDefault(p.ManagerName, "Менеджер"))
	fmt.Fprintf(&b, "🆔 ID заявки: %s", p.ApplicationID)

	switch {
	case p.Approved:
		b.WriteString("\n\n🟠 Поставщик добавлен в публичный каталог Get2B.")
	case p.Reason != "":
		fmt.Fprintf(&b, "\n\n📝 Причина: %s", p.Reason)
	}

	return b.String()
}

// ClientProfile текст уведомления о профиле клиента, Markdown
func ClientProfile(p domain.ClientProfile) string {
	return fmt.Sprintf("👤 НОВЫЙ ПРОФИЛЬ КЛИЕНТА\n\n"+
		"🆔 ID пользователя: %s\n"+
		"👤 Имя: %s\n"+
		"📧 Email: %s\n\n"+
		"🏢 *ДАННЫЕ КОМПАНИИ:*\n"+
		"• Название: %s\n"+
		"• Юридическое название: %s\n"+
		"• ИНН: %s\n"+
		"• КПП: %s\n"+
		"• ОГРН: %s\n"+
		"• Адрес: %s\n\n"+
		"📞 *КОНТАКТЫ:*\n"+
		"• Email: %s\n"+
		"• Телефон: %s\n\n"+
		"🏦 *БАНКОВСКИЕ РЕКВИЗИТЫ:*\n"+
		"• Банк: %s\n"+
		"• Расчетный счет: %s\n"+
		"• Корр. счет: %s\n"+
		"• БИК: %s\n\n"+
		"🆔 ID профиля: %s\n\n"+
		"✅ Профиль клиента создан и готов к использованию в проектах",
		Markdown(p.UserID),
		Markdown(orDefault(p.UserName, notSpecified)),
		Markdown(orDefault(p.UserEmail, notSpecifiedM)),
		Markdown(p.CompanyName),
		Markdown(p.LegalName),
		Markdown(p.INN),
		Markdown(p.KPP),
		Markdown(p.OGRN),
		Markdown(p.Address),
		Markdown(p.Email),
		Markdown(p.Phone),
		Markdown(p.BankName),
		Markdown(p.BankAccount),
		Markdown(p.CorrAccount),
		Markdown(p.BIK),
		Markdown(p.ProfileID),
	)
}

// SupplierProfile текст уведомления о профиле поставщика, Markdown
func SupplierProfile(p domain.SupplierProfile) string {
	return fmt.Sprintf("🏭 НОВЫЙ ПРОФИЛЬ ПОСТАВЩИКА\n\n"+
		"🆔 ID пользователя: %s\n"+
		"👤 Имя: %s\n"+
		"📧 Email: %s\n\n"+
		"🏢 *ДАННЫЕ КОМПАНИИ:*\n"+
		"• Название: %s\n"+
		"• Категория: %s\n"+
		"• Страна: %s\n"+
		"• Город: %s\n\n"+
		"📝 *ОПИСАНИЕ:*\n"+
		"%s\n\n"+
		"📞 *КОНТАКТЫ:*\n"+
		"• Email: %s\n"+
		"• Телефон: %s\n"+
		"• Сайт: %s\n\n"+
		"🆔 ID профиля: %s\n\n"+
		"✅ Профиль поставщика создан и готов к использованию",
		Markdown(p.UserID),
		Markdown(orDefault(p.UserName, notSpecified)),
		Markdown(orDefault(p.UserEmail, notSpecifiedM)),
		Markdown(p.CompanyName),
		Markdown(p.Category),
		Markdown(p.Country),
		Markdown(orDefault(p.City, notSpecifiedM)),
		Markdown(orDefault(p.Description, notSpecified)),
		Markdown(orDefault(p.ContactEmail, notSpecifiedM)),
		Markdown(orDefault(p.ContactPhone, notSpecifiedM)),
		Markdown(orDefault(p.Website, notSpecifiedM)),
		Markdown(p.ProfileID),
	)
}

// ReceiptApproval текст уведомления о загруженном чеке
func ReceiptApproval(p domain.ReceiptApproval) string {
	return fmt.Sprintf(`📄 Чек об оплате загружен

🔗 ID запроса: %s
📁 Файл: %s
🔗 Ссылка: %s

Пожалуйста, проверьте чек и подтвердите оплату.`,
		p.ProjectRequestID, orDefault(p.FileName, "receipt"), p.ReceiptURL)
}

// WebURL склеивает базовый адрес веб-интерфейса и путь
func WebURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}
