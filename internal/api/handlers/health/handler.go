package health

import (
	"net/http"

	"github.com/get2b/Get2B-NotificationService/internal/api/handlers"
)

// BotStatus сообщает, настроен ли бот. Бот при этом не создаётся
type BotStatus interface {
	Configured() map[string]bool
}

type Handler struct {
	bots BotStatus
}

func NewHandler(bots BotStatus) *Handler {
	return &Handler{bots: bots}
}

// Response ответ проверки здоровья
type Response struct {
	Status string          `json:"status"`
	Bots   map[string]bool `json:"bots,omitempty"`
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := Response{Status: "healthy"}
	if h.bots != nil {
		response.Bots = h.bots.Configured()
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
