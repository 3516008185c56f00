package freeze_subscription

import (
	"context"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// SubscriptionRepository интерфейс репозитория абонементов
type SubscriptionRepository interface {
	GetByClient(ctx context.Context, clientID int64) (*domain.Subscription, error)
	PersistFreeze(ctx context.Context, subscriptionID int64, frozenFrom, frozenUntil, newValidUntil time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
