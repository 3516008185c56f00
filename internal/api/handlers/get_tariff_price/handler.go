package get_tariff_price

import (
	"net/http"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	purchaseSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/purchase_subscription"
)

type Handler struct {
	quoter PriceQuoter
	logger Logger
}

func NewHandler(quoter PriceQuoter, logger Logger) *Handler {
	return &Handler{
		quoter: quoter,
		logger: logger,
	}
}

// Handle GET /api/v1/tariffs/price?period=Month&classLimit=8&timeBand=<16
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &purchaseSubscription.QuoteRequest{
		Period:     query.Get("period"),
		ClassLimit: query.Get("classLimit"),
		TimeBand:   query.Get("timeBand"),
	}

	quote, err := h.quoter.Quote(r.Context(), req)
	if err != nil {
		if rejection, ok := domain.AsRejection(err); ok {
			h.logger.Warn("GET /tariffs/price - Rejected: period=%q, classes=%q, time=%q, kind=%s",
				req.Period, req.ClassLimit, req.TimeBand, rejection.Kind)
			handlers.RespondRejection(w, rejection)
			return
		}
		h.logger.Error("GET /tariffs/price - Failed to quote: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromQuote(quote))
}
