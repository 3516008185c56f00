package get_quota

import (
	"context"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/subscriptions/models"
)

type QuotaService interface {
	Quota(ctx context.Context, clientID int64, date time.Time) (*models.QuotaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
