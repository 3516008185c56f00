package purchase_subscription

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/subscriptions/models"
	purchaseSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/purchase_subscription"
)

const (
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты начала, ожидается YYYY-MM-DD"
	msgClientNotFound     = "клиент не найден"
)

type Handler struct {
	useCase PurchaseSubscriptionUseCase
	logger  Logger
}

func NewHandler(useCase PurchaseSubscriptionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients/{clientId}/subscription
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /clients/{clientId}/subscription - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req PurchaseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/{clientId}/subscription - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID, time.Now())
	if err != nil {
		h.logger.Warn("POST /clients/{clientId}/subscription - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if rejection, ok := domain.AsRejection(err); ok {
			h.logger.Warn("POST /clients/{clientId}/subscription - Rejected: client_id=%d, kind=%s", clientID, rejection.Kind)
			handlers.RespondRejection(w, rejection)
			return
		}

		switch {
		case errors.Is(err, purchaseSubscription.ErrInvalidInput):
			h.logger.Warn("POST /clients/{clientId}/subscription - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, purchaseSubscription.ErrClientNotFound):
			h.logger.Warn("POST /clients/{clientId}/subscription - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("POST /clients/{clientId}/subscription - Failed to purchase: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/{clientId}/subscription - Subscription purchased: client_id=%d, subscription_id=%d",
		clientID, result.Subscription.ID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainSubscription(result.Subscription))
}
