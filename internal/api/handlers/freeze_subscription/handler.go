package freeze_subscription

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	freezeSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/freeze_subscription"
)

const (
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase FreezeSubscriptionUseCase
	logger  Logger
}

func NewHandler(useCase FreezeSubscriptionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients/{clientId}/subscription/freeze
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseInt(mux.Vars(r)["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /clients/{clientId}/subscription/freeze - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req FreezeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/{clientId}/subscription/freeze - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /clients/{clientId}/subscription/freeze - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if rejection, ok := domain.AsRejection(err); ok {
			h.logger.Warn("POST /clients/{clientId}/subscription/freeze - Rejected: client_id=%d, kind=%s", clientID, rejection.Kind)
			handlers.RespondRejection(w, rejection)
			return
		}

		switch {
		case errors.Is(err, freezeSubscription.ErrInvalidInput):
			h.logger.Warn("POST /clients/{clientId}/subscription/freeze - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /clients/{clientId}/subscription/freeze - Failed to freeze: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/{clientId}/subscription/freeze - Subscription frozen: subscription_id=%d, valid_until=%s",
		result.SubscriptionID, result.ValidUntil.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
