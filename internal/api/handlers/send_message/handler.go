package send_message

import (
	"fmt"
	"net/http"

	"github.com/get2b/Get2B-NotificationService/internal/api/handlers"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/send_message/models"
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

const msgInvalidRequestBody = "неверный формат тела запроса"

type Handler struct {
	manager ManagerProvider
	chat    ChatProvider
	logger  Logger
}

func NewHandler(manager ManagerProvider, chat ChatProvider, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		chat:    chat,
		logger:  logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("Invalid message request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	kind := req.Kind()
	policy, err := handlers.ParsePolicy(req.Policy, kind)
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	var sent domain.SentMessage
	if req.Bot == models.BotManager {
		sent, err = h.sendToManager(policy, &req)
	} else {
		sent, err = h.sendToChat(policy, &req)
	}
	if err != nil {
		h.logger.Error("Failed to send %s via %s bot: %v", kind, req.Bot, err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	handlers.LogDelivery(h.logger, sent, fmt.Sprintf("%s via %s bot", kind, req.Bot))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewDeliveryResponse(sent))
}

func (h *Handler) sendToManager(policy domain.DeliveryPolicy, req *models.SendMessageRequest) (domain.SentMessage, error) {
	bot, err := h.manager()
	if err != nil {
		return domain.SentMessage{}, err
	}

	if req.DocumentURL != "" {
		caption := req.Caption
		if caption == "" {
			caption = req.Text
		}
		return bot.SendDocument(policy, req.DocumentURL, caption)
	}
	return bot.SendText(policy, req.Text)
}

func (h *Handler) sendToChat(policy domain.DeliveryPolicy, req *models.SendMessageRequest) (domain.SentMessage, error) {
	bot, err := h.chat()
	if err != nil {
		return domain.SentMessage{}, err
	}

	if req.PhotoURL != "" {
		caption := req.Caption
		if caption == "" {
			caption = req.Text
		}
		return bot.SendPhoto(policy, req.PhotoURL, caption)
	}
	return bot.SendNotice(policy, req.Text)
}
