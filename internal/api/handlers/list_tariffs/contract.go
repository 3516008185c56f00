package list_tariffs

import (
	"context"

	purchaseSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/purchase_subscription"
)

type PriceLister interface {
	PriceList(ctx context.Context) ([]purchaseSubscription.Quote, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
