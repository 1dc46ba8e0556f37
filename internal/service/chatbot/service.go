package chatbot

import (
	"fmt"
	"strings"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/internal/service/bot"
	"github.com/get2b/Get2B-NotificationService/internal/service/telegram/templates"
)

// Name имя чат-бота в логах и метриках
const Name = "chat"

// Config настройки чат-бота
type Config struct {
	Token  string
	ChatID string
}

// Service чат-бот: уведомления о сообщениях в комнатах проектов и быстрые ответы
type Service struct {
	core *bot.Core
}

// New создаёт сервис чат-бота.
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

	return &Service{core: core}, nil
}

// Identity возвращает идентичность бота
func (s *Service) Identity() domain.BotIdentity {
	return s.core.Identity()
}

// NotifyChatMessage уведомляет менеджеров о новом сообщении в комнате проекта
func (s *Service) NotifyChatMessage(policy domain.DeliveryPolicy, p domain.ChatMessage) (domain.SentMessage, error) {
	keyboard, err := domain.NewKeyboard().
		Row(
			domain.CallbackButton(templates.ButtonOpenChat, domain.CallbackOpenChat, p.RoomID),
			domain.CallbackButton(templates.ButtonProjectDetails, domain.CallbackProjectDetails, p.ProjectID),
		).
		Row(
			domain.QuickReplyButton(templates.ButtonQuickReplyOK, p.RoomID, domain.QuickReplyOK),
			domain.QuickReplyButton(templates.ButtonQuickClarify, p.RoomID, domain.QuickReplyClarify),
		).
		Build()
	if err != nil {
		return domain.SentMessage{}, fmt.Errorf("service.chatbot: %s keyboard: %w", domain.KindChatMessage, err)
	}

	return s.core.Deliver(domain.KindChatMessage, policy, domain.OutboundMessage{
		Text:                  templates.ChatMessage(p),
		ParseMode:             domain.ParseModeHTML,
		Keyboard:              keyboard,
		DisableWebPagePreview: true,
	})
}

// SendProjectDetails отправляет карточку проекта
func (s *Service) SendProjectDetails(policy domain.DeliveryPolicy, p domain.ProjectDetails) (domain.SentMessage, error) {
	return s.core.Deliver(domain.KindProjectDetails, policy, domain.OutboundMessage{
		Text:                  templates.ProjectDetails(p),
		ParseMode:             domain.ParseModeHTML,
		DisableWebPagePreview: true,
	})
}

// SendNotice отправляет произвольное текстовое уведомление без разметки
func (s *Service) SendNotice(policy domain.DeliveryPolicy, text string) (domain.SentMessage, error) {
	if strings.TrimSpace(text) == "" {
		return domain.SentMessage{}, ErrEmptyText
	}

	return s.core.Deliver(domain.KindText, policy, domain.OutboundMessage{
		Text:                  text,
		DisableWebPagePreview: true,
	})
}

// SendPhoto отправляет изображение с подписью в Markdown
func (s *Service) SendPhoto(policy domain.DeliveryPolicy, photoURL, caption string) (domain.SentMessage, error) {
	return s.core.DeliverPhoto(domain.KindPhoto, policy, domain.OutboundPhoto{
		Photo:     photoURL,
		Caption:   caption,
		ParseMode: domain.ParseModeMarkdown,
	})
}

// AnswerCallbackQuery подтверждает нажатие кнопки
func (s *Service) AnswerCallbackQuery(policy domain.DeliveryPolicy, answer domain.CallbackAnswer) error {
	return s.core.AnswerCallback(policy, answer)
}

// ResolveFile получает ссылку на скачивание файла, присланного в чат
func (s *Service) ResolveFile(fileID, fileName string) (domain.ResolvedFile, error) {
	return s.core.ResolveFile(fileID, fileName)
}

// CommandResponse возвращает ответ на slash-команду
func (s *Service) CommandResponse(cmd domain.Command, userName string) string {
	return templates.ChatCommandResponse(cmd, userName)
}

// QuickReplyResponse возвращает текст быстрого ответа клиенту
func (s *Service) QuickReplyResponse(kind domain.QuickReplyKind) (string, error) {
	text := templates.QuickReply(kind)
	if text == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownQuickReply, kind)
	}
	return text, nil
}
