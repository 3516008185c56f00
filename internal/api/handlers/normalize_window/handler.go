package normalize_window

import (
	"net/http"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	normalizer WindowNormalizer
	logger     Logger
}

func NewHandler(normalizer WindowNormalizer, logger Logger) *Handler {
	return &Handler{
		normalizer: normalizer,
		logger:     logger,
	}
}

// Handle POST /api/v1/windows/normalize
// Мягкая подгонка окна к часам работы, пока пользователь выбирает время
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req NormalizeWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /windows/normalize - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	parsed, rejection := req.parse()
	if rejection != nil {
		h.logger.Warn("POST /windows/normalize - Failed to parse request: %v", rejection)
		handlers.RespondRejection(w, rejection)
		return
	}

	var window domain.TimeWindow
	if parsed.end == nil {
		window = h.normalizer.DefaultWindow(parsed.start, parsed.duration)
	} else {
		clamped, err := h.normalizer.Clamp(domain.TimeWindow{Start: parsed.start, End: *parsed.end})
		if err != nil {
			if r, ok := domain.AsRejection(err); ok {
				h.logger.Warn("POST /windows/normalize - Window rejected: %v", r)
				handlers.RespondRejection(w, r)
				return
			}
			h.logger.Error("POST /windows/normalize - Failed to clamp window: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		window = clamped
	}

	handlers.RespondJSON(w, http.StatusOK, fromWindow(window))
}
