package notify_scenario

import (
	"net/http"

	"github.com/get2b/Get2B-NotificationService/internal/api/handlers"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_scenario/models"
)

const msgInvalidRequestBody = "неверный формат тела запроса"

type Handler struct {
	notifier ScenarioNotifier
	logger   Logger
}

func NewHandler(notifier ScenarioNotifier, logger Logger) *Handler {
	return &Handler{
		notifier: notifier,
		logger:   logger,
	}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ScenarioRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("Failed to decode request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("Invalid scenario event: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	delivered := h.notifier.Notify(r.Context(), req.Event, req.ToDomain())
	if delivered {
		h.logger.Info("Scenario %s event %s delivered", req.ScenarioID, req.Event)
	}

	handlers.RespondJSON(w, http.StatusOK, models.ScenarioResponse{Delivered: delivered})
}
