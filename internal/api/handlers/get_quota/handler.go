package get_quota

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/subscriptions"
)

const (
	msgInvalidClientID      = "некорректный ID клиента"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSubscriptionNotFound = "у клиента нет абонемента"
)

type Handler struct {
	service QuotaService
	logger  Logger
}

func NewHandler(service QuotaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/quota?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{clientId}/quota - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	date := domain.DateOnly(time.Now())
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /clients/{clientId}/quota - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.service.Quota(r.Context(), clientID, date)
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrSubscriptionNotFound):
			h.logger.Warn("GET /clients/{clientId}/quota - No subscription: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgSubscriptionNotFound)

		default:
			h.logger.Error("GET /clients/{clientId}/quota - Failed to get quota: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
