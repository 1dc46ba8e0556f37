package notify_project_approval

import (
	"fmt"
	"net/http"

	"github.com/get2b/Get2B-NotificationService/internal/api/handlers"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_project_approval/models"
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

// HandleProject отправляет запрос на одобрение по проекту
func (h *Handler) HandleProject(w http.ResponseWriter, r *http.Request) {
	var req models.ProjectApprovalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("Invalid project approval request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	policy, err := handlers.ParsePolicy(req.Policy, domain.KindProjectApproval)
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

	sent, err := bot.SendProjectApprovalRequest(policy, req.ToDomain())
	if err != nil {
		h.logger.Error("Failed to request approval for project %s: %v", req.ProjectID, err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	handlers.LogDelivery(h.logger, sent, fmt.Sprintf("Approval request of %s for project %s", req.Type, req.ProjectID))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewDeliveryResponse(sent))
}

// HandleAtomic отправляет заявку атомарного конструктора
func (h *Handler) HandleAtomic(w http.ResponseWriter, r *http.Request) {
	var req models.AtomicApprovalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("Invalid atomic constructor request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	policy, err := handlers.ParsePolicy(req.Policy, domain.KindAtomicConstructorApproval)
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

	sent, err := bot.SendAtomicConstructorApprovalRequest(policy, req.ToDomain())
	if err != nil {
		h.logger.Error("Failed to request approval for atomic request %s: %v", req.RequestID, err)
		handlers.RespondDeliveryError(w, err)
		return
	}

	handlers.LogDelivery(h.logger, sent, fmt.Sprintf("Approval request for atomic request %s at stage %d", req.RequestID, req.CurrentStage))
	handlers.RespondJSON(w, http.StatusOK, handlers.NewDeliveryResponse(sent))
}
