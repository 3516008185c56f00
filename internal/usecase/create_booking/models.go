package create_booking

import (
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/types"
)

// Status исход попытки бронирования
type Status string

const (
	StatusCommitted Status = "committed"
	StatusRejected  Status = "rejected"
)

// Request модель запроса на бронирование
//
// Для KindGymVisit SubjectID это клиент.
// Для KindTrainerSlot SubjectID это тренер, ClientID необязательный клиент, записанный на слот
type Request struct {
	Kind      domain.BookingKind
	SubjectID int64
	ClientID  *int64
	Tariff    string           // код тарифа, если у клиента нет абонемента (необязательно)
	Date      time.Time        // дата без времени
	StartTime types.TimeString // как ввел пользователь, "HH:MM"
	EndTime   types.TimeString
}

// Response результат: либо Committed, либо Rejected с причиной
type Response struct {
	Status    Status
	Kind      domain.BookingKind
	BookingID int64
	Date      time.Time
	Window    domain.TimeWindow
	Tariff    string

	// Производные данные для отображения
	QuotaRemaining *int // nil для безлимитных тарифов
	Exhausted      bool // лимит занятий выбран этим бронированием

	Rejection *domain.Rejection
}

// IsCommitted true для успешного бронирования
func (r *Response) IsCommitted() bool {
	return r.Status == StatusCommitted
}

// snapshot согласованный срез данных субъекта на дату
type snapshot struct {
	subscription *domain.Subscription
	consumed     int
	overlapping  []domain.ExistingBooking // бронирования всех участников на дату
	quotaDay     []domain.ExistingBooking // бронирования клиента на дату
}
