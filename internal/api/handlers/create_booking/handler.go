package create_booking

import (
	"errors"
	"net/http"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	createBooking "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidKind        = "некорректный тип бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	kind    domain.BookingKind
	logger  Logger
}

// NewHandler создает обработчик для одного типа бронирования
func NewHandler(useCase CreateBookingUseCase, kind domain.BookingKind, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		kind:    kind,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/visits и POST /api/v1/bookings/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%s - Invalid request body: %v", h.kind, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, rejection := req.ToUseCaseRequest(h.kind)
	if rejection != nil {
		h.logger.Warn("POST /bookings/%s - Failed to parse request: %v", h.kind, rejection)
		handlers.RespondRejection(w, rejection)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/%s - Invalid input: %v", h.kind, err)
			handlers.RespondBadRequest(w, msgInvalidKind)

		default:
			h.logger.Error("POST /bookings/%s - Failed to create booking: subject_id=%d, error=%v",
				h.kind, useCaseReq.SubjectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.IsCommitted() {
		h.logger.Warn("POST /bookings/%s - Booking rejected: subject_id=%d, kind=%s",
			h.kind, useCaseReq.SubjectID, result.Rejection.Kind)
		handlers.RespondRejection(w, result.Rejection)
		return
	}

	h.logger.Info("POST /bookings/%s - Booking created successfully: booking_id=%d, subject_id=%d",
		h.kind, result.BookingID, useCaseReq.SubjectID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
