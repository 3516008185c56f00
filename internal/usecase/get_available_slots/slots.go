package get_available_slots

import (
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// generateTimeSlots нарезает часы работы на слоты с шагом duration
// Последний слот, не помещающийся до закрытия, отбрасывается
func generateTimeSlots(operating domain.TimeWindow, duration time.Duration) []domain.TimeWindow {
	slots := make([]domain.TimeWindow, 0)
	if duration <= 0 {
		return slots
	}

	for start := operating.Start; !start.Add(duration).After(operating.End); start = start.Add(duration) {
		slots = append(slots, domain.TimeWindow{Start: start, End: start.Add(duration)})
	}

	return slots
}

// markAvailability помечает слоты, свободные от бронирований тренера
// Для сегодняшней даты слоты, начавшиеся до now, недоступны
//
// Пример: слот 11:30-12:15, бронирование 11:00-11:30 → слот свободен (граничат)
func markAvailability(windows []domain.TimeWindow, bookings []domain.ExistingBooking, now time.Time) []Slot {
	result := make([]Slot, len(windows))
	busy := domain.Windows(bookings)

	for i, w := range windows {
		available := !w.Start.Before(now)
		for _, b := range busy {
			if !available {
				break
			}
			if w.Overlaps(b) {
				available = false
			}
		}
		result[i] = Slot{Window: w, Available: available}
	}

	return result
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
