package get_tariff_price

import (
	"context"

	purchaseSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/purchase_subscription"
)

type PriceQuoter interface {
	Quote(ctx context.Context, req *purchaseSubscription.QuoteRequest) (*purchaseSubscription.Quote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
