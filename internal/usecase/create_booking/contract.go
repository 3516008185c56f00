package create_booking

import (
	"context"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FetchExistingBookings активные бронирования субъекта на дату
	FetchExistingBookings(ctx context.Context, subject domain.Subject, date time.Time) ([]domain.ExistingBooking, error)
	// CountConsumed количество занятий, списанных с абонемента
	CountConsumed(ctx context.Context, clientID, subscriptionID int64) (int, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SubscriptionRepository интерфейс репозитория абонементов
type SubscriptionRepository interface {
	GetByClient(ctx context.Context, clientID int64) (*domain.Subscription, error)
	IncrementVisitCount(ctx context.Context, subscriptionID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Observer учет исходов бронирования (метрики)
type Observer interface {
	ObserveBooking(kind, reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
