package models

import (
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// BookingResponse бронирование в расписании
type BookingResponse struct {
	ID              int64  `json:"id"`
	Kind            string `json:"kind"`
	StartTime       string `json:"startTime"` // "10:00"
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ScheduleResponse расписание субъекта на дату
type ScheduleResponse struct {
	Role     string            `json:"role"`
	ID       int64             `json:"id"`
	Date     string            `json:"date"` // "2025-10-15"
	Bookings []BookingResponse `json:"bookings"`
}

// FromExistingBookings конвертирует бронирования в ответ
func FromExistingBookings(subject domain.Subject, date time.Time, existing []domain.ExistingBooking) *ScheduleResponse {
	resp := &ScheduleResponse{
		Role:     string(subject.Role),
		ID:       subject.ID,
		Date:     date.Format(domain.DateFormat),
		Bookings: make([]BookingResponse, 0, len(existing)),
	}

	for _, b := range existing {
		resp.Bookings = append(resp.Bookings, BookingResponse{
			ID:              b.ID,
			Kind:            string(b.Kind),
			StartTime:       b.Window.Start.Format(domain.TimeFormat),
			EndTime:         b.Window.End.Format(domain.TimeFormat),
			DurationMinutes: int(b.Window.Duration() / time.Minute),
		})
	}

	return resp
}

// BookingDetailsResponse бронирование целиком
type BookingDetailsResponse struct {
	ID              int64     `json:"id"`
	Kind            string    `json:"kind"`
	TrainerID       *int64    `json:"trainerId,omitempty"`
	ClientID        *int64    `json:"clientId,omitempty"`
	SubscriptionID  *int64    `json:"subscriptionId,omitempty"`
	BookingDate     string    `json:"bookingDate"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromDomainBooking конвертирует domain.Booking в ответ
func FromDomainBooking(b *domain.Booking) *BookingDetailsResponse {
	return &BookingDetailsResponse{
		ID:              b.ID,
		Kind:            string(b.Kind),
		TrainerID:       b.TrainerID,
		ClientID:        b.ClientID,
		SubscriptionID:  b.SubscriptionID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.Window.Start.Format(domain.TimeFormat),
		EndTime:         b.Window.End.Format(domain.TimeFormat),
		DurationMinutes: int(b.Window.Duration() / time.Minute),
		CreatedAt:       b.CreatedAt,
	}
}
