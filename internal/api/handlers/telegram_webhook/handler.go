package telegram_webhook

import (
	"crypto/subtle"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/get2b/Get2B-NotificationService/internal/api/handlers"
)

const (
	// HeaderSecretToken заголовок с секретом, заданным при setWebhook
	HeaderSecretToken = "X-Telegram-Bot-Api-Secret-Token"

	msgInvalidRequestBody = "неверный формат тела запроса"
	msgInvalidSecret      = "неверный секрет webhook"
)

// Handler webhook одного бота. Ответ на команду пишется прямо в тело ответа Telegram
type Handler struct {
	bot     string
	useCase UpdateUseCase
	secret  string
	logger  Logger
}

// NewHandler создаёт webhook. Пустой secret отключает проверку заголовка
func NewHandler(bot string, useCase UpdateUseCase, secret string, logger Logger) *Handler {
	return &Handler{
		bot:     bot,
		useCase: useCase,
		secret:  secret,
		logger:  logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.secret != "" {
		got := r.Header.Get(HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.logger.Warn("Rejected %s webhook call with invalid secret", h.bot)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidSecret)
			return
		}
	}

	// Парсим webhook update от Telegram
	var update tgbotapi.Update
	if err := handlers.DecodeJSON(r, &update); err != nil {
		h.logger.Warn("Failed to decode %s webhook: %v", h.bot, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reply, err := h.useCase.Execute(r.Context(), update)
	if err != nil {
		h.logger.Error("Failed to handle update %d for %s bot: %v", update.UpdateID, h.bot, err)
		handlers.RespondInternalError(w)
		return
	}

	if reply == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := tgbotapi.WriteToHTTPResponse(w, reply); err != nil {
		h.logger.Error("Failed to write reply to update %d for %s bot: %v", update.UpdateID, h.bot, err)
		return
	}

	h.logger.Info("Replied to update %d for %s bot", update.UpdateID, h.bot)
}
