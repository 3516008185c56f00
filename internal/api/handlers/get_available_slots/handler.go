package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	getAvailableSlots "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/get_available_slots"
)

const (
	msgInvalidTrainerID = "некорректный ID тренера"
	msgInvalidQuery     = "некорректные параметры запроса: date YYYY-MM-DD, durationMinutes целое число"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainers/{trainerId}/available-slots
// Query params: date (optional, YYYY-MM-DD), durationMinutes (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем trainerId из URL
	trainerID, err := strconv.ParseInt(mux.Vars(r)["trainerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/available-slots - Invalid trainer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTrainerID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(trainerID, query.Get("date"), query.Get("durationMinutes"), time.Now())
	if err != nil {
		h.logger.Warn("GET /trainers/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if rejection, ok := domain.AsRejection(err); ok {
			h.logger.Warn("GET /trainers/{id}/available-slots - Rejected: trainer_id=%d, reason=%v", trainerID, rejection)
			handlers.RespondRejection(w, rejection)
			return
		}

		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /trainers/{id}/available-slots - Invalid input: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /trainers/{id}/available-slots - Failed to get slots: trainer_id=%d, error=%v", trainerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trainers/{id}/available-slots - Slots retrieved successfully: trainer_id=%d, slots_count=%d, available=%d",
		trainerID, len(result.Slots), result.AvailableCount())
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
