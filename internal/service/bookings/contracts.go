package bookings

import (
	"context"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FetchExistingBookings(ctx context.Context, subject domain.Subject, date time.Time) ([]domain.ExistingBooking, error)
	GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
