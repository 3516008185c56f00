package purchase_subscription

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// Request покупка абонемента: метки формы выбора тарифа и дата начала
type Request struct {
	ClientID   int64
	Period     string // Month, HalfYear, Year, OneTime
	ClassLimit string // 8, 12, Unlimited
	TimeBand   string // <16, ≥16, Unlimited
	StartDate  time.Time
}

// QuoteRequest расчет стоимости без покупки
type QuoteRequest struct {
	Period     string
	ClassLimit string
	TimeBand   string
}

// Quote стоимость выбранного тарифа
type Quote struct {
	Tariff domain.TariffCode
	Price  decimal.Decimal
}

// Response купленный абонемент
type Response struct {
	Subscription *domain.Subscription
}
