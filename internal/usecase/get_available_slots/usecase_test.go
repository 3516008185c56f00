package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/timewindow"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/logger"
)

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

type fakeBookings struct {
	bookings []domain.ExistingBooking
	err      error
	subjects []domain.Subject
}

func (f *fakeBookings) FetchExistingBookings(_ context.Context, subject domain.Subject, _ time.Time) ([]domain.ExistingBooking, error) {
	f.subjects = append(f.subjects, subject)
	return f.bookings, f.err
}

func at(h, m int) time.Time {
	return time.Date(2025, 1, 10, h, m, 0, 0, time.UTC)
}

func newUseCase(repo *fakeBookings, now time.Time) *UseCase {
	uc := NewUseCase(repo, timewindow.MustNew(timewindow.Config{}), logger.Nop())
	uc.timeProvider = fixedTime(now)
	return uc
}

func trainerBusy() *fakeBookings {
	return &fakeBookings{bookings: []domain.ExistingBooking{
		{ID: 1, Kind: domain.KindTrainerSlot, Window: domain.TimeWindow{Start: at(9, 0), End: at(10, 0)}},
	}}
}

func TestExecute_FutureDate(t *testing.T) {
	repo := trainerBusy()
	yesterday := time.Date(2025, 1, 9, 18, 0, 0, 0, time.UTC)

	resp, err := newUseCase(repo, yesterday).Execute(context.Background(), &Request{TrainerID: 3, Date: at(0, 0)})
	require.NoError(t, err)

	assert.Equal(t, 45, resp.DurationMinutes)
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, domain.TimeWindow{Start: at(8, 0), End: at(8, 45)}, resp.Slots[0].Window)
	assert.Equal(t, domain.TimeWindow{Start: at(20, 45), End: at(21, 30)}, resp.Slots[17].Window)

	assert.True(t, resp.Slots[0].Available)
	assert.False(t, resp.Slots[1].Available, "08:45-09:30 overlaps 09:00-10:00")
	assert.False(t, resp.Slots[2].Available, "09:30-10:15 overlaps 09:00-10:00")
	assert.True(t, resp.Slots[3].Available)
	assert.Equal(t, 16, resp.AvailableCount())

	assert.Equal(t, []domain.Subject{domain.Trainer(3)}, repo.subjects)
}

func TestExecute_TodaySkipsStartedSlots(t *testing.T) {
	resp, err := newUseCase(trainerBusy(), at(12, 0)).Execute(context.Background(), &Request{TrainerID: 3, Date: at(0, 0)})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 18)
	for _, s := range resp.Slots[:6] {
		assert.False(t, s.Available, s.Window.String())
	}
	assert.True(t, resp.Slots[6].Available, "12:30 is still ahead")
	assert.Equal(t, 12, resp.AvailableCount())
}

func TestExecute_CustomDuration(t *testing.T) {
	resp, err := newUseCase(&fakeBookings{}, at(7, 0)).Execute(context.Background(), &Request{TrainerID: 3, Date: at(0, 0), DurationMinutes: 60})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Len(t, resp.Slots, 14)
	assert.Equal(t, 14, resp.AvailableCount())
}

func TestExecute_DurationOutOfRange(t *testing.T) {
	for _, minutes := range []int{10, 300} {
		repo := &fakeBookings{}

		_, err := newUseCase(repo, at(7, 0)).Execute(context.Background(), &Request{TrainerID: 3, Date: at(0, 0), DurationMinutes: minutes})
		require.Error(t, err)

		r, ok := domain.AsRejection(err)
		require.True(t, ok)
		assert.Equal(t, domain.RejectDurationOutOfRange, r.Kind)
		assert.Empty(t, repo.subjects)
	}
}

func TestExecute_PastDate(t *testing.T) {
	repo := trainerBusy()

	resp, err := newUseCase(repo, at(7, 0).AddDate(0, 0, 1)).Execute(context.Background(), &Request{TrainerID: 3, Date: at(0, 0)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, repo.subjects)
}

func TestExecute_Errors(t *testing.T) {
	_, err := newUseCase(&fakeBookings{}, at(7, 0)).Execute(context.Background(), &Request{Date: at(0, 0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = newUseCase(&fakeBookings{}, at(7, 0)).Execute(context.Background(), &Request{TrainerID: 3})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = newUseCase(&fakeBookings{err: errors.New("db down")}, at(7, 0)).Execute(context.Background(), &Request{TrainerID: 3, Date: at(0, 0)})
	assert.ErrorIs(t, err, ErrInternal)
}
