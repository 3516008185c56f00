package get_schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/bookings"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/bookings/models"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/logger"
)

type fakeService struct {
	role string
	id   int64
	date time.Time
	err  error
}

func (f *fakeService) GetClientSchedule(_ context.Context, id int64, date time.Time) (*models.ScheduleResponse, error) {
	return f.record("client", id, date)
}

func (f *fakeService) GetTrainerSchedule(_ context.Context, id int64, date time.Time) (*models.ScheduleResponse, error) {
	return f.record("trainer", id, date)
}

func (f *fakeService) record(role string, id int64, date time.Time) (*models.ScheduleResponse, error) {
	f.role, f.id, f.date = role, id, date
	if f.err != nil {
		return nil, f.err
	}
	return &models.ScheduleResponse{
		Role:     role,
		ID:       id,
		Date:     date.Format("2006-01-02"),
		Bookings: []models.BookingResponse{{ID: 1, Kind: "gym_visit", StartTime: "09:00", EndTime: "09:45", DurationMinutes: 45}},
	}, nil
}

func serve(service *fakeService, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/clients/{clientId}/schedule", NewClientHandler(service, logger.Nop()).Handle)
	r.HandleFunc("/trainers/{trainerId}/schedule", NewTrainerHandler(service, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Client(t *testing.T) {
	service := &fakeService{}

	rec := serve(service, "/clients/7/schedule?date=2025-01-10")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, "client", service.role)
	assert.Equal(t, int64(7), service.id)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), service.date)
}

func TestHandle_TrainerDefaultsToToday(t *testing.T) {
	service := &fakeService{}

	rec := serve(service, "/trainers/3/schedule")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trainer", service.role)
	assert.False(t, service.date.IsZero())
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/clients/abc/schedule").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/clients/7/schedule?date=10.01.2025").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: bookings.ErrInvalidInput}, "/clients/0/schedule").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: errors.New("db")}, "/clients/7/schedule").Code)
}
