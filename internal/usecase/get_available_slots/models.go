package get_available_slots

import (
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// Request модель запроса свободных слотов тренера
type Request struct {
	TrainerID       int64     // ID тренера
	Date            time.Time // Дата (без времени)
	DurationMinutes int       // Длительность слота, 0 означает длительность по умолчанию
}

// Response модель ответа со списком слотов
type Response struct {
	TrainerID       int64
	Date            time.Time
	DurationMinutes int
	Slots           []Slot
}

// Slot модель временного слота
type Slot struct {
	Window    domain.TimeWindow
	Available bool // false: слот пересекается с бронированием тренера или уже начался
}

// AvailableCount количество свободных слотов
func (r *Response) AvailableCount() int {
	count := 0
	for _, s := range r.Slots {
		if s.Available {
			count++
		}
	}
	return count
}
