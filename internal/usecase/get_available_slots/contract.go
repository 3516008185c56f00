package get_available_slots

import (
	"context"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FetchExistingBookings получает бронирования субъекта на дату
	FetchExistingBookings(ctx context.Context, subject domain.Subject, date time.Time) ([]domain.ExistingBooking, error)
}

// WindowValidator часы работы зала и допустимая длительность окна
type WindowValidator interface {
	OperatingWindow(day time.Time) domain.TimeWindow
	DefaultDuration() time.Duration
	ValidateDuration(w domain.TimeWindow) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
