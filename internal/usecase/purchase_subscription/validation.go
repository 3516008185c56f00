package purchase_subscription

import (
	"fmt"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}
	return nil
}

// validUntil последний день действия абонемента
// Разовое посещение действует только в день покупки
func validUntil(code domain.TariffCode, start time.Time) time.Time {
	start = domain.DateOnly(start)
	if code.OneTime {
		return start
	}
	return addMonthsClamped(start, code.Period.Months())
}

// addMonthsClamped сдвигает дату на months месяцев
// Если в целевом месяце нет такого дня, берется его последний день: 31 января + месяц = 28 февраля
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
