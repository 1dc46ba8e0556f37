package managerbot

import (
	"fmt"
	"strings"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/internal/service/bot"
	"github.com/get2b/Get2B-NotificationService/internal/service/telegram/templates"
)

// Name имя менеджерского бота в логах и метриках
const Name = "manager"

// Config настройки менеджерского бота
type Config struct {
	Token   string
	ChatID  string
	BaseURL string // Адрес веб-интерфейса для кнопок-ссылок
}

// Service менеджерский бот: одобрение чеков и проектов, аккредитация, профили
type Service struct {
	core    *bot.Core
	baseURL string
}

// New создаёт сервис менеджерского бота.
// Без токена или chat_id возвращает domain.ErrConfigurationMissing до создания транспорта
func New(cfg Config, factory bot.TransportFactory, logger bot.Logger, m bot.Metrics) (*Service, error) {
	identity, err := domain.NewBotIdentity(Name, cfg.Token, cfg.ChatID)
	if err != nil {
		return nil, err
	}

	core, err := bot.New(identity, factory, logger, m)
	if err != nil {
		return nil, err
	}

	return &Service{
		core:    core,
		baseURL: cfg.BaseURL,
	}, nil
}

// Identity возвращает идентичность бота
func (s *Service) Identity() domain.BotIdentity {
	return s.core.Identity()
}

// SendText отправляет простое сообщение
func (s *Service) SendText(policy domain.DeliveryPolicy, text string) (domain.SentMessage, error) {
	if strings.TrimSpace(text) == "" {
		return domain.SentMessage{}, ErrEmptyText
	}
	return s.core.Deliver(domain.KindText, policy, domain.OutboundMessage{Text: text})
}

// SendDocument отправляет документ по ссылке
func (s *Service) SendDocument(policy domain.DeliveryPolicy, documentURL, caption string) (domain.SentMessage, error) {
	return s.core.DeliverDocument(domain.KindDocument, policy, domain.OutboundDocument{
		Document: documentURL,
		Caption:  caption,
	})
}

// SendClientReceiptApprovalRequest отправляет чек клиента с кнопками одобрения и отклонения
func (s *Service) SendClientReceiptApprovalRequest(policy domain.DeliveryPolicy, p domain.ClientReceiptApproval) (domain.SentMessage, error) {
	keyboard, err := domain.NewKeyboard().
		Row(
			domain.CallbackButton(templates.ButtonApproveClientReceipt, domain.CallbackApproveClientReceipt, p.ProjectRequestID),
			domain.CallbackButton(templates.ButtonRejectClientReceipt, domain.CallbackRejectClientReceipt, p.ProjectRequestID),
		).
		Build()
	if err != nil {
		return domain.SentMessage{}, keyboardError(domain.KindClientReceiptApproval, err)
	}

	return s.core.DeliverDocument(domain.KindClientReceiptApproval, policy, domain.OutboundDocument{
		Document: p.DocumentURL,
		Caption:  p.Caption,
		Keyboard: keyboard,
	})
}

// SendProjectApprovalRequest отправляет запрос на одобрение спецификации, чека или инвойса.
// Пустой тип означает спецификацию
func (s *Service) SendProjectApprovalRequest(policy domain.DeliveryPolicy, p domain.ProjectApproval) (domain.SentMessage, error) {
	if p.Type == "" {
		p.Type = domain.ApprovalSpec
	}

	var approve, reject domain.InlineButton
	switch p.Type {
	case domain.ApprovalReceipt:
		approve = domain.CallbackButton(templates.ButtonApproveReceipt, domain.CallbackApproveReceipt, p.ProjectID)
		reject = domain.CallbackButton(templates.ButtonRejectReceipt, domain.CallbackRejectReceipt, p.ProjectID)
	case domain.ApprovalInvoice:
		approve = domain.CallbackButton(templates.ButtonApproveInvoice, domain.CallbackApproveInvoice, p.ProjectID)
		reject = domain.CallbackButton(templates.ButtonRejectInvoice, domain.CallbackRejectInvoice, p.ProjectID)
	case domain.ApprovalSpec:
		approve = domain.CallbackButton(templates.ButtonApproveProject, domain.CallbackApproveProject, p.ProjectID)
		reject = domain.CallbackButton(templates.ButtonRejectProject, domain.CallbackRejectProject, p.ProjectID)
	default:
		return domain.SentMessage{}, fmt.Errorf("%w: %q", ErrUnknownApprovalType, p.Type)
	}

	keyboard, err := domain.NewKeyboard().Row(approve, reject).Build()
	if err != nil {
		return domain.SentMessage{}, keyboardError(domain.KindProjectApproval, err)
	}

	return s.core.Deliver(domain.KindProjectApproval, policy, domain.OutboundMessage{
		Text:     p.Text,
		Keyboard: keyboard,
	})
}

// SendSupplierReceiptRequest просит менеджера загрузить чек поставщика для клиента
func (s *Service) SendSupplierReceiptRequest(policy domain.DeliveryPolicy, p domain.SupplierReceiptRequest) (domain.SentMessage, error) {
	keyboard, err := domain.NewKeyboard().
		Row(domain.CallbackButton(templates.ButtonUploadSupplierRcpt, domain.CallbackUploadSupplierRcpt, p.ProjectID)).
		Build()
	if err != nil {
		return domain.SentMessage{}, keyboardError(domain.KindSupplierReceiptRequest, err)
	}

	return s.core.Deliver(domain.KindSupplierReceiptRequest, policy, domain.OutboundMessage{
		Text:     templates.SupplierReceiptRequest(p),
		Keyboard: keyboard,
	})
}

// SendClientConfirmationRequest просит ответить чеком на сообщение (force reply)
func (s *Service) SendClientConfirmationRequest(policy domain.DeliveryPolicy, p domain.ClientConfirmationRequest) (domain.SentMessage, error) {
	return s.core.Deliver(domain.KindClientConfirmation, policy, domain.OutboundMessage{
		Text:       templates.ClientConfirmationRequest(p),
		ForceReply: true,
	})
}

// SendAccreditationRequest отправляет заявку на аккредитацию с кнопками просмотра, одобрения и отклонения
func (s *Service) SendAccreditationRequest(policy domain.DeliveryPolicy, p domain.AccreditationRequest) (domain.SentMessage, error) {
	keyboard, err := domain.NewKeyboard().
		Row(domain.CallbackButton(templates.ButtonAccreditView, domain.CallbackAccreditView, p.ApplicationID)).
		Row(
			domain.CallbackButton(templates.ButtonAccreditApprove, domain.CallbackAccreditApprove, p.ApplicationID),
			domain.CallbackButton(templates.ButtonAccreditReject, domain.CallbackAccreditReject, p.ApplicationID),
		).
		Build()
	if err != nil {
		return domain.SentMessage{}, keyboardError(domain.KindAccreditationRequest, err)
	}

	return s.core.Deliver(domain.KindAccreditationRequest, policy, domain.OutboundMessage{
		Text:     templates.AccreditationRequest(p),
		Keyboard: keyboard,
	})
}

// SendAccreditationDecision сообщает итог рассмотрения заявки
func (s *Service) SendAccreditationDecision(policy domain.DeliveryPolicy, p domain.AccreditationDecision) (domain.SentMessage, error) {
	return s.core.Deliver(domain.KindAccreditationDecision, policy, domain.OutboundMessage{
		Text: templates.AccreditationDecision(p),
	})
}

// SendClientProfileNotification уведомляет о созданном профиле клиента
func (s *Service) SendClientProfileNotification(policy domain.DeliveryPolicy, p domain.ClientProfile) (domain.SentMessage, error) {
	keyboard, err := domain.NewKeyboard().
		Row(
			domain.CallbackButton(templates.ButtonViewProfile, domain.CallbackViewClientProfile, p.ProfileID),
			domain.URLButton(templates.ButtonWebInterface, templates.WebURL(s.baseURL, templates.PathProfile)),
		).
		Row(
			domain.CallbackButton(templates.ButtonProfileCorrect, domain.CallbackApproveClientProfile, p.ProfileID),
			domain.CallbackButton(templates.ButtonProfileReview, domain.CallbackReviewClientProfile, p.ProfileID),
		).
		Build()
	if err != nil {
		return domain.SentMessage{}, keyboardError(domain.KindClientProfile, err)
	}

	return s.core.Deliver(domain.KindClientProfile, policy, domain.OutboundMessage{
		Text:      templates.ClientProfile(p),
		ParseMode: domain.ParseModeMarkdown,
		Keyboard:  keyboard,
	})
}

// SendSupplierProfileNotification уведомляет о созданном профиле поставщика
func (s *Service) SendSupplierProfileNotification(policy domain.DeliveryPolicy, p domain.SupplierProfile) (domain.SentMessage, error) {
	keyboard, err := domain.NewKeyboard().
		Row(
			domain.CallbackButton(templates.ButtonViewSupplierProfile, domain.CallbackViewSupplierProfile, p.ProfileID),
			domain.URLButton(templates.ButtonWebInterface, templates.WebURL(s.baseURL, templates.PathProfile)),
		).
		Row(
			domain.CallbackButton(templates.ButtonProfileCorrect, domain.CallbackApproveSupplierProfile, p.ProfileID),
			domain.CallbackButton(templates.ButtonProfileReview, domain.CallbackReviewSupplierProfile, p.ProfileID),
		).
		Build()
	if err != nil {
		return domain.SentMessage{}, keyboardError(domain.KindSupplierProfile, err)
	}

	return s.core.Deliver(domain.KindSupplierProfile, policy, domain.OutboundMessage{
		Text:      templates.SupplierProfile(p),
		ParseMode: domain.ParseModeMarkdown,
		Keyboard:  keyboard,
	})
}

// SendAtomicConstructorApprovalRequest отправляет заявку атомарного конструктора на одобрение.
// Текст приходит уже размеченным в Markdown
func (s *Service) SendAtomicConstructorApprovalRequest(policy domain.DeliveryPolicy, p domain.AtomicConstructorApproval) (domain.SentMessage, error) {
	if strings.TrimSpace(p.Text) == "" {
		return domain.SentMessage{}, ErrEmptyText
	}

	keyboard, err := domain.NewKeyboard().
		Row(
			domain.CallbackButton(templates.ButtonApprove, domain.CallbackApproveAtomic, p.RequestID),
			domain.CallbackButton(templates.ButtonReject, domain.CallbackRejectAtomic, p.RequestID),
		).
		Row(
			domain.CallbackButton(templates.ButtonRequestChanges, domain.CallbackRequestChangesAtomic, p.RequestID),
			domain.URLButton(templates.ButtonOpenInSystem, templates.WebURL(s.baseURL, templates.PathProjectConstructor)),
		).
		Build()
	if err != nil {
		return domain.SentMessage{}, keyboardError(domain.KindAtomicConstructorApproval, err)
	}

	return s.core.Deliver(domain.KindAtomicConstructorApproval, policy, domain.OutboundMessage{
		Text:      p.Text,
		ParseMode: domain.ParseModeMarkdown,
		Keyboard:  keyboard,
	})
}

// SendReceiptApprovalRequest уведомляет о загруженном чеке с кнопками подтверждения оплаты
func (s *Service) SendReceiptApprovalRequest(policy domain.DeliveryPolicy, p domain.ReceiptApproval) (domain.SentMessage, error) {
	keyboard, err := domain.NewKeyboard().
		Row(
			domain.CallbackButton(templates.ButtonConfirmPayment, domain.CallbackApproveReceipt, p.ProjectRequestID),
			domain.CallbackButton(templates.ButtonRejectReceipt, domain.CallbackRejectReceipt, p.ProjectRequestID),
		).
		Row(
			domain.CallbackButton(templates.ButtonRequestNewReceipt, domain.CallbackRequestNewReceipt, p.ProjectRequestID),
			domain.URLButton(templates.ButtonOpenInSystem, templates.WebURL(s.baseURL, templates.PathProjectConstructor)),
		).
		Build()
	if err != nil {
		return domain.SentMessage{}, keyboardError(domain.KindReceiptApproval, err)
	}

	return s.core.Deliver(domain.KindReceiptApproval, policy, domain.OutboundMessage{
		Text:     templates.ReceiptApproval(p),
		Keyboard: keyboard,
	})
}

// AnswerCallbackQuery подтверждает нажатие кнопки
func (s *Service) AnswerCallbackQuery(policy domain.DeliveryPolicy, answer domain.CallbackAnswer) error {
	return s.core.AnswerCallback(policy, answer)
}

// ResolveFile получает ссылку на скачивание файла, присланного менеджером
func (s *Service) ResolveFile(fileID, fileName string) (domain.ResolvedFile, error) {
	return s.core.ResolveFile(fileID, fileName)
}

// CommandResponse возвращает ответ на slash-команду
func (s *Service) CommandResponse(cmd domain.Command, userName string) string {
	return templates.ManagerCommandResponse(cmd, userName, s.baseURL)
}

func keyboardError(kind domain.NotificationKind, err error) error {
	return fmt.Errorf("service.managerbot: %s keyboard: %w", kind, err)
}
