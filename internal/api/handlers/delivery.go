package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/get2b/Get2B-NotificationService/internal/domain"
	"github.com/get2b/Get2B-NotificationService/internal/service/bot"
)

const (
	policyStrict     = "strict"
	policyBestEffort = "best_effort"

	msgBotNotConfigured = "бот не настроен"
	msgBotUnavailable   = "бот недоступен"
	msgDeliveryFailed   = "не удалось доставить уведомление в Telegram"
	msgInvalidButton    = "идентификатор не подходит для inline-кнопки"
)

// ErrUnknownPolicy возвращается при неизвестной политике доставки в запросе
var ErrUnknownPolicy = errors.New("api.handlers: unknown delivery policy")

// DeliveryResponse ответ на запрос отправки уведомления.
// Delivered false означает, что ошибка была проглочена политикой best effort
type DeliveryResponse struct {
	Delivered bool  `json:"delivered"`
	MessageID int   `json:"message_id,omitempty"`
	ChatID    int64 `json:"chat_id,omitempty"`
}

// DeliveryLogger логгер итогов отправки
type DeliveryLogger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// LogDelivery пишет итог отправки. Нулевой MessageID значит, что best effort проглотил ошибку
func LogDelivery(log DeliveryLogger, sent domain.SentMessage, subject string) {
	if sent.MessageID == 0 {
		log.Warn("%s skipped: Telegram delivery failed", subject)
		return
	}
	log.Info("%s sent (message %d)", subject, sent.MessageID)
}

// NewDeliveryResponse собирает ответ из результата отправки
func NewDeliveryResponse(sent domain.SentMessage) DeliveryResponse {
	return DeliveryResponse{
		Delivered: sent.MessageID != 0,
		MessageID: sent.MessageID,
		ChatID:    sent.ChatID,
	}
}

// ParsePolicy читает политику доставки из запроса. Пустое значение означает политику по умолчанию для типа
func ParsePolicy(value string, kind domain.NotificationKind) (domain.DeliveryPolicy, error) {
	switch value {
	case "":
		return domain.PolicyFor(kind), nil
	case policyStrict:
		return domain.DeliveryStrict, nil
	case policyBestEffort:
		return domain.DeliveryBestEffort, nil
	default:
		return domain.DeliveryBestEffort, fmt.Errorf("%w: %q", ErrUnknownPolicy, value)
	}
}

// RespondDeliveryError переводит ошибку бота в HTTP статус
func RespondDeliveryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrConfigurationMissing), errors.Is(err, domain.ErrInvalidChatID):
		RespondError(w, http.StatusServiceUnavailable, msgBotNotConfigured)
	case errors.Is(err, bot.ErrTransportFactory):
		RespondError(w, http.StatusServiceUnavailable, msgBotUnavailable)
	case errors.Is(err, domain.ErrCallbackDataTooLong),
		errors.Is(err, domain.ErrCallbackDataCharset),
		errors.Is(err, domain.ErrCallbackSubjectMissing),
		errors.Is(err, domain.ErrInvalidButton):
		RespondBadRequest(w, msgInvalidButton)
	case errors.Is(err, bot.ErrDeliveryFailed):
		RespondError(w, http.StatusBadGateway, msgDeliveryFailed)
	default:
		RespondInternalError(w)
	}
}
