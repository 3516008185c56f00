package purchase_subscription

import (
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	purchaseSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/purchase_subscription"
)

// PurchaseRequest HTTP request model, метки как в форме выбора тарифа
type PurchaseRequest struct {
	Period     string `json:"period"`     // Month, HalfYear, Year, OneTime
	ClassLimit string `json:"classLimit"` // 8, 12, Unlimited
	TimeBand   string `json:"timeBand"`   // <16, ≥16, Unlimited
	StartDate  string `json:"startDate"`  // "2025-01-01", пусто: сегодня
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PurchaseRequest) ToUseCaseRequest(clientID int64, today time.Time) (*purchaseSubscription.Request, error) {
	start := domain.DateOnly(today)
	if r.StartDate != "" {
		parsed, err := time.Parse(domain.DateFormat, r.StartDate)
		if err != nil {
			return nil, err
		}
		start = parsed
	}

	return &purchaseSubscription.Request{
		ClientID:   clientID,
		Period:     r.Period,
		ClassLimit: r.ClassLimit,
		TimeBand:   r.TimeBand,
		StartDate:  start,
	}, nil
}
