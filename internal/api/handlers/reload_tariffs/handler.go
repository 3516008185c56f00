package reload_tariffs

import (
	"net/http"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

type Handler struct {
	catalog TariffCatalog
	logger  Logger
}

func NewHandler(catalog TariffCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle POST /api/v1/tariffs/reload
// При ошибке продолжает действовать ранее загруженная таблица
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Reload(r.Context()); err != nil {
		if rejection, ok := domain.AsRejection(err); ok {
			h.logger.Warn("POST /tariffs/reload - Rejected: %v", rejection)
			handlers.RespondRejection(w, rejection)
			return
		}
		h.logger.Error("POST /tariffs/reload - Failed to reload tariff table: %v", err)
		handlers.RespondRejection(w, domain.Reject(domain.RejectCatalogUnavailable, "tariff table reload failed"))
		return
	}

	h.logger.Info("POST /tariffs/reload - Tariff table reloaded")
	w.WriteHeader(http.StatusNoContent)
}
