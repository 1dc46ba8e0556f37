package notify_chat_message

import (
	"fmt"
	"net/http"

	"github.com/get2b/Get2B-NotificationService/internal/api/handlers"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_chat_message/models"
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

const msgInvalidRequestBody = "неверный формат тела запроса"

type Handler struct {
	chat   ChatProvider
	logger Logger
}

func NewHandler(chat ChatProvider, logger Logger) *Handler {
	return &Handler{
		chat:   chat,
		logger: logger,
	}
}

// HandleMessage уведомляет менеджеров о сообщении клиента
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var req models.ChatMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("Invalid chat message notification: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	policy, err := handlers.ParsePolicy(req.Policy, domain.KindChatMessage)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	bot, err := h.chat()
	if err != nil {
		h.logger.Error("Chat bot unavailable: %v", err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	sent, err := bot.NotifyChatMessage(policy, req.ToDomain())
	if err != nil {
		h.logger.Error("Failed to notify about message in room %s: %v", req.RoomID, err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	handlers.LogDelivery(h.logger, sent, fmt.Sprintf("Message in room %s (project %s)", req.RoomID, req.ProjectID))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewDeliveryResponse(sent))
}

// HandleProjectDetails отправляет карточку проекта в чат менеджеров
func (h *Handler) HandleProjectDetails(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectDetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("Invalid project details request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	policy, err := handlers.ParsePolicy(req.Policy, domain.KindProjectDetails)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	bot, err := h.chat()
	if err != nil {
		h.logger.Error("Chat bot unavailable: %v", err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	sent, err := bot.SendProjectDetails(policy, req.ToDomain())
	if err != nil {
		h.logger.Error("Failed to send details of project %s: %v", req.ProjectID, err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	handlers.LogDelivery(h.logger, sent, fmt.Sprintf("Details of project %s", req.ProjectID))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewDeliveryResponse(sent))
}
