package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

// UseCase use case для получения свободных слотов тренера на дату
type UseCase struct {
	bookingRepo  BookingRepository
	validator    WindowValidator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	validator WindowValidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		validator:    validator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: trainer=%d, date=%s, duration=%d",
		req.TrainerID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	now := uc.timeProvider.Now().In(date.Location())

	// 2. Длительность слота: по умолчанию из настроек зала, иначе проверяем границы
	duration := uc.validator.DefaultDuration()
	if req.DurationMinutes > 0 {
		duration = time.Duration(req.DurationMinutes) * time.Minute
	}
	operating := uc.validator.OperatingWindow(date)
	probe := domain.TimeWindow{Start: operating.Start, End: operating.Start.Add(duration)}
	if err := uc.validator.ValidateDuration(probe); err != nil {
		uc.logger.Warn("GetAvailableSlots: rejected duration=%s: %v", duration, err)
		return nil, err
	}

	resp := &Response{
		TrainerID:       req.TrainerID,
		Date:            date,
		DurationMinutes: int(duration / time.Minute),
		Slots:           []Slot{},
	}

	// 3. Прошедшие даты: слотов нет
	if isDateInPast(date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return resp, nil
	}

	// 4. Получаем бронирования тренера на эту дату
	bookings, err := uc.bookingRepo.FetchExistingBookings(ctx, domain.Trainer(req.TrainerID), date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for trainer=%d: %v", req.TrainerID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Нарезаем часы работы и отмечаем свободные слоты
	resp.Slots = markAvailability(generateTimeSlots(operating, duration), bookings, now)

	uc.logger.Info("GetAvailableSlots: trainer=%d, date=%s, slots=%d, available=%d",
		req.TrainerID, date.Format(domain.DateFormat), len(resp.Slots), resp.AvailableCount())

	return resp, nil
}
