package get_subscription

import (
	"context"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/subscriptions/models"
)

type SubscriptionService interface {
	GetByClient(ctx context.Context, clientID int64) (*models.SubscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
