package get_schedule

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/bookings"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/bookings/models"
)

const (
	msgInvalidID   = "некорректный ID"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type fetchFunc func(ctx context.Context, id int64, date time.Time) (*models.ScheduleResponse, error)

type Handler struct {
	route string
	fetch fetchFunc
	// idVar имя переменной пути с ID субъекта
	idVar  string
	logger Logger
}

// NewClientHandler GET /api/v1/clients/{clientId}/schedule?date=YYYY-MM-DD
func NewClientHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		route:  "/clients/{clientId}/schedule",
		fetch:  service.GetClientSchedule,
		idVar:  "clientId",
		logger: logger,
	}
}

// NewTrainerHandler GET /api/v1/trainers/{trainerId}/schedule?date=YYYY-MM-DD
func NewTrainerHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		route:  "/trainers/{trainerId}/schedule",
		fetch:  service.GetTrainerSchedule,
		idVar:  "trainerId",
		logger: logger,
	}
}

// Handle отдает бронирования субъекта на дату (по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)[h.idVar], 10, 64)
	if err != nil {
		h.logger.Warn("GET %s - Invalid ID: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	date := domain.DateOnly(time.Now())
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET %s - Invalid date: %v", h.route, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.fetch(r.Context(), id, date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET %s - Invalid input: id=%d, error=%v", h.route, id, err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("GET %s - Failed to get schedule: id=%d, error=%v", h.route, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET %s - Schedule retrieved successfully: id=%d, count=%d", h.route, id, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
