package notify_accreditation

import (
	"fmt"
	"net/http"

	"github.com/get2b/Get2B-NotificationService/internal/api/handlers"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_accreditation/models"
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

// HandleRequest уведомляет менеджеров о новой заявке на аккредитацию
func (h *Handler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req models.AccreditationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("Invalid accreditation request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	policy, err := handlers.ParsePolicy(req.Policy, domain.KindAccreditationRequest)
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

	sent, err := bot.SendAccreditationRequest(policy, req.ToDomain())
	if err != nil {
		h.logger.Error("Failed to send accreditation application %s: %v", req.ApplicationID, err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	handlers.LogDelivery(h.logger, sent, fmt.Sprintf("Accreditation application %s from %s", req.ApplicationID, req.SupplierName))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewDeliveryResponse(sent))
}

// HandleDecision уведомляет об итоге рассмотрения заявки
func (h *Handler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	var req models.DecisionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("Invalid accreditation decision: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	policy, err := handlers.ParsePolicy(req.Policy, domain.KindAccreditationDecision)
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

	decision := req.ToDomain()
	sent, err := bot.SendAccreditationDecision(policy, decision)
	if err != nil {
		h.logger.Error("Failed to send decision for application %s: %v", req.ApplicationID, err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	handlers.LogDelivery(h.logger, sent, fmt.Sprintf("Decision for application %s (approved=%t)", req.ApplicationID, decision.Approved))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewDeliveryResponse(sent))
}
