package get_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/subscriptions"
)

const (
	msgInvalidClientID      = "некорректный ID клиента"
	msgSubscriptionNotFound = "у клиента нет абонемента"
)

type Handler struct {
	service SubscriptionService
	logger  Logger
}

func NewHandler(service SubscriptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/subscription
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{clientId}/subscription - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.GetByClient(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrSubscriptionNotFound):
			h.logger.Warn("GET /clients/{clientId}/subscription - Not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgSubscriptionNotFound)

		default:
			h.logger.Error("GET /clients/{clientId}/subscription - Failed to get subscription: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{clientId}/subscription - Subscription retrieved: client_id=%d, subscription_id=%d",
		clientID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
