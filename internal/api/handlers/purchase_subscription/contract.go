package purchase_subscription

import (
	"context"

	purchaseSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/purchase_subscription"
)

type PurchaseSubscriptionUseCase interface {
	Execute(ctx context.Context, req *purchaseSubscription.Request) (*purchaseSubscription.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
