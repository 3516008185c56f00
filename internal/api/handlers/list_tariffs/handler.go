package list_tariffs

import (
	"net/http"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/get_tariff_price"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

type Handler struct {
	lister PriceLister
	logger Logger
}

func NewHandler(lister PriceLister, logger Logger) *Handler {
	return &Handler{
		lister: lister,
		logger: logger,
	}
}

// Handle GET /api/v1/tariffs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.lister.PriceList(r.Context())
	if err != nil {
		if rejection, ok := domain.AsRejection(err); ok {
			h.logger.Warn("GET /tariffs - Rejected: %v", rejection)
			handlers.RespondRejection(w, rejection)
			return
		}
		h.logger.Error("GET /tariffs - Failed to list tariffs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]*get_tariff_price.PriceResponse, 0, len(quotes))
	for i := range quotes {
		result = append(result, get_tariff_price.FromQuote(&quotes[i]))
	}

	h.logger.Info("GET /tariffs - Tariffs retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
