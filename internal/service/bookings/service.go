package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	bookingRepo "github.com/maris-volk/CRM-fitness-room-sub000/internal/infra/storage/booking"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/bookings/models"
)

// Service сервис чтения расписания клиентов и тренеров
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetClientSchedule получает бронирования клиента на дату
func (s *Service) GetClientSchedule(ctx context.Context, clientID int64, date time.Time) (*models.ScheduleResponse, error) {
	return s.schedule(ctx, "GetClientSchedule", domain.Client(clientID), date)
}

// GetTrainerSchedule получает слоты тренера на дату
func (s *Service) GetTrainerSchedule(ctx context.Context, trainerID int64, date time.Time) (*models.ScheduleResponse, error) {
	return s.schedule(ctx, "GetTrainerSchedule", domain.Trainer(trainerID), date)
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, bookingID int64) (*models.BookingDetailsResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", bookingID)

	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

func (s *Service) schedule(ctx context.Context, op string, subject domain.Subject, date time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("%s: fetching schedule for %s=%d, date=%s", op, subject.Role, subject.ID, date.Format(domain.DateFormat))

	if subject.ID <= 0 {
		s.logger.Warn("%s: invalid %s id=%d", op, subject.Role, subject.ID)
		return nil, fmt.Errorf("%w: %s id must be positive", ErrInvalidInput, subject.Role)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	existing, err := s.bookingRepo.FetchExistingBookings(ctx, subject, domain.DateOnly(date))
	if err != nil {
		s.logger.Error("%s: repository error for %s=%d: %v", op, subject.Role, subject.ID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: successfully fetched %d bookings for %s=%d", op, len(existing), subject.Role, subject.ID)
	return models.FromExistingBookings(subject, date, existing), nil
}
