package notify_profile

import (
	"fmt"
	"net/http"

	"github.com/get2b/Get2B-NotificationService/internal/api/handlers"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_profile/models"
	"github.com/get2b/Get2B-NotificationService/internal/domain"
)

const msgInvalidRequestBody = "неверный формат тела запроса"

type Handler struct {
	manager ManagerProvider
	logger  Logger
}

func NewHandler(manager ManagerProvider, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("Invalid profile notification: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	policy, err := handlers.ParsePolicy(req.Policy, req.Kind())
	if err != nil {
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	bot, err := h.manager()
	if err != nil {
		h.logger.Error("Manager bot unavailable: %v", err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	var sent domain.SentMessage
	if req.Role == models.RoleSupplier {
		sent, err = bot.SendSupplierProfileNotification(policy, req.ToSupplierProfile())
	} else {
		sent, err = bot.SendClientProfileNotification(policy, req.ToClientProfile())
	}
	if err != nil {
		h.logger.Error("Failed to send %s profile %s: %v", req.Role, req.ProfileID, err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	handlers.LogDelivery(h.logger, sent, fmt.Sprintf("New %s profile %s", req.Role, req.ProfileID))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewDeliveryResponse(sent))
}
