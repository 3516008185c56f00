package revoke_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
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

// Handle DELETE /api/v1/clients/{clientId}/subscription
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /clients/{clientId}/subscription - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.Revoke(r.Context(), clientID)
	if err != nil {
		if rejection, ok := domain.AsRejection(err); ok {
			h.logger.Warn("DELETE /clients/{clientId}/subscription - Rejected: client_id=%d, kind=%s", clientID, rejection.Kind)
			handlers.RespondRejection(w, rejection)
			return
		}

		switch {
		case errors.Is(err, subscriptions.ErrSubscriptionNotFound):
			h.logger.Warn("DELETE /clients/{clientId}/subscription - Not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgSubscriptionNotFound)

		default:
			h.logger.Error("DELETE /clients/{clientId}/subscription - Failed to revoke: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /clients/{clientId}/subscription - Subscription revoked: client_id=%d, subscription_id=%d",
		clientID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
