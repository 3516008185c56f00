package freeze_subscription

import (
	"context"

	freezeSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/freeze_subscription"
)

type FreezeSubscriptionUseCase interface {
	Execute(ctx context.Context, req *freezeSubscription.Request) (*freezeSubscription.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
