package get_available_slots

import (
	"strconv"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	getAvailableSlots "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	TrainerID       int64           `json:"trainerId"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.Window.Start.Format(domain.TimeFormat),
			EndTime:   slot.Window.End.Format(domain.TimeFormat),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		TrainerID:       resp.TrainerID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустая дата означает today, пустая длительность означает длительность по умолчанию
func ToUseCaseRequest(trainerID int64, dateStr, durationStr string, today time.Time) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{
		TrainerID: trainerID,
		Date:      domain.DateOnly(today),
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = duration
	}

	return req, nil
}
