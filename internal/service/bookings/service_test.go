package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	bookingRepo "github.com/maris-volk/CRM-fitness-room-sub000/internal/infra/storage/booking"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/logger"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/ptr"
)

type fakeRepo struct {
	bookings map[domain.Subject][]domain.ExistingBooking
	byID     map[int64]*domain.Booking
	err      error
	dates    []time.Time
}

func (f *fakeRepo) GetByID(_ context.Context, bookingID int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.byID[bookingID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) FetchExistingBookings(_ context.Context, subject domain.Subject, date time.Time) ([]domain.ExistingBooking, error) {
	f.dates = append(f.dates, date)
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings[subject], nil
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestGetClientSchedule(t *testing.T) {
	repo := &fakeRepo{bookings: map[domain.Subject][]domain.ExistingBooking{
		domain.Client(7): {
			{ID: 1, Kind: domain.KindGymVisit, Window: domain.TimeWindow{Start: at(9, 0), End: at(9, 45)}},
			{ID: 2, Kind: domain.KindTrainerSlot, Window: domain.TimeWindow{Start: at(18, 30), End: at(19, 30)}},
		},
	}}
	service := NewService(repo, logger.Nop())

	resp, err := service.GetClientSchedule(context.Background(), 7, at(15, 20))
	require.NoError(t, err)

	assert.Equal(t, "client", resp.Role)
	assert.Equal(t, "2025-03-10", resp.Date)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "09:00", resp.Bookings[0].StartTime)
	assert.Equal(t, 45, resp.Bookings[0].DurationMinutes)
	assert.Equal(t, "trainer_slot", resp.Bookings[1].Kind)

	// дата передается в репозиторий без времени
	assert.Equal(t, []time.Time{time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}, repo.dates)
}

func TestGetTrainerSchedule_Empty(t *testing.T) {
	service := NewService(&fakeRepo{}, logger.Nop())

	resp, err := service.GetTrainerSchedule(context.Background(), 3, at(0, 0))
	require.NoError(t, err)
	assert.Equal(t, "trainer", resp.Role)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

func TestSchedule_Errors(t *testing.T) {
	service := NewService(&fakeRepo{}, logger.Nop())

	_, err := service.GetClientSchedule(context.Background(), 0, at(0, 0))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.GetTrainerSchedule(context.Background(), 3, time.Time{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	failing := NewService(&fakeRepo{err: errors.New("connection reset")}, logger.Nop())
	_, err = failing.GetClientSchedule(context.Background(), 7, at(0, 0))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Booking{
		11: {
			ID:          11,
			Kind:        domain.KindTrainerSlot,
			TrainerID:   ptr.Ptr(int64(3)),
			ClientID:    ptr.Ptr(int64(7)),
			BookingDate: at(0, 0),
			Window:      domain.TimeWindow{Start: at(18, 0), End: at(19, 0)},
		},
	}}
	service := NewService(repo, logger.Nop())

	resp, err := service.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "trainer_slot", resp.Kind)
	assert.Equal(t, "2025-03-10", resp.BookingDate)
	assert.Equal(t, "18:00", resp.StartTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, int64(3), ptr.Value(resp.TrainerID))
	assert.Nil(t, resp.SubscriptionID)

	_, err = service.GetByID(context.Background(), 12)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = service.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewService(&fakeRepo{err: errors.New("connection reset")}, logger.Nop()).GetByID(context.Background(), 11)
	assert.ErrorIs(t, err, ErrInternal)
}
