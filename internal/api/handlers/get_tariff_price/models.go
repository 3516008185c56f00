package get_tariff_price

import (
	"github.com/shopspring/decimal"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/tariffcodec"
	purchaseSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/purchase_subscription"
)

// PriceResponse HTTP response model
type PriceResponse struct {
	Tariff     string          `json:"tariff"`
	Period     string          `json:"period"`
	ClassLimit string          `json:"classLimit"`
	TimeBand   string          `json:"timeBand"`
	Price      decimal.Decimal `json:"price"`
}

// FromQuote конвертирует расчет стоимости в HTTP response
func FromQuote(q *purchaseSubscription.Quote) *PriceResponse {
	period, classLimit, timeBand := tariffcodec.Labels(q.Tariff)
	return &PriceResponse{
		Tariff:     q.Tariff.String(),
		Period:     period,
		ClassLimit: classLimit,
		TimeBand:   timeBand,
		Price:      q.Price,
	}
}
