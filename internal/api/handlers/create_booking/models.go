package create_booking

import (
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	createBooking "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/create_booking"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/types"
)

// CreateBookingRequest HTTP request model
// Посещение зала: clientId обязателен. Слот тренера: trainerId обязателен, clientId по желанию
type CreateBookingRequest struct {
	ClientID    *int64 `json:"clientId,omitempty"`
	TrainerID   *int64 `json:"trainerId,omitempty"`
	Tariff      string `json:"tariff,omitempty"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "10:00"
	EndTime     string `json:"endTime"`     // "10:45"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64  `json:"id"`
	Kind           string `json:"kind"`
	BookingDate    string `json:"bookingDate"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Tariff         string `json:"tariff,omitempty"`
	QuotaRemaining *int   `json:"quotaRemaining,omitempty"`
	Exhausted      bool   `json:"exhausted"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Ошибка формата даты возвращается как отказ MalformedTime
func (r *CreateBookingRequest) ToUseCaseRequest(kind domain.BookingKind) (*createBooking.Request, *domain.Rejection) {
	req := &createBooking.Request{
		Kind:      kind,
		Tariff:    r.Tariff,
		StartTime: types.TimeString(r.StartTime),
		EndTime:   types.TimeString(r.EndTime),
	}

	if r.BookingDate != "" {
		date, err := time.Parse(domain.DateFormat, r.BookingDate)
		if err != nil {
			return nil, domain.Reject(domain.RejectMalformedTime, "booking date %q, expected YYYY-MM-DD", r.BookingDate)
		}
		req.Date = date
	}

	switch kind {
	case domain.KindGymVisit:
		if r.ClientID != nil {
			req.SubjectID = *r.ClientID
		}
	case domain.KindTrainerSlot:
		if r.TrainerID != nil {
			req.SubjectID = *r.TrainerID
		}
		req.ClientID = r.ClientID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.BookingID,
		Kind:           string(resp.Kind),
		BookingDate:    resp.Date.Format(domain.DateFormat),
		StartTime:      resp.Window.Start.Format(domain.TimeFormat),
		EndTime:        resp.Window.End.Format(domain.TimeFormat),
		Tariff:         resp.Tariff,
		QuotaRemaining: resp.QuotaRemaining,
		Exhausted:      resp.Exhausted,
	}
}
