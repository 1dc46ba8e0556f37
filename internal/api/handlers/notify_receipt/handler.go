package notify_receipt

import (
	"fmt"
	"net/http"

	"github.com/get2b/Get2B-NotificationService/internal/api/handlers"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_receipt/models"
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
	var req models.NotifyReceiptRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("Invalid receipt notification: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	policy, err := handlers.ParsePolicy(req.Policy, req.Kind)
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
	switch req.Kind {
	case domain.KindClientReceiptApproval:
		sent, err = bot.SendClientReceiptApprovalRequest(policy, req.ToClientReceiptApproval())
	case domain.KindReceiptApproval:
		sent, err = bot.SendReceiptApprovalRequest(policy, req.ToReceiptApproval())
	case domain.KindSupplierReceiptRequest:
		sent, err = bot.SendSupplierReceiptRequest(policy, req.ToSupplierReceiptRequest())
	case domain.KindClientConfirmation:
		sent, err = bot.SendClientConfirmationRequest(policy, req.ToClientConfirmationRequest())
	}
	if err != nil {
		h.logger.Error("Failed to send %s for project %s: %v", req.Kind, req.ProjectID, err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	handlers.LogDelivery(h.logger, sent, fmt.Sprintf("%s for project %s (policy %s)", req.Kind, req.ProjectID, policy))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewDeliveryResponse(sent))
}
