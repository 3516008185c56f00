package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/bookings"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/bookings/models"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetByID(_ context.Context, id int64) (*models.BookingDetailsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingDetailsResponse{ID: id, Kind: "gym_visit", BookingDate: "2025-01-10", StartTime: "09:00", EndTime: "09:45", DurationMinutes: 45}, nil
}

func serve(service *fakeService, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}", NewHandler(service, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	rec := serve(&fakeService{}, "/bookings/11")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "09:45", resp.EndTime)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		url  string
		err  error
		want int
	}{
		{name: "bad id", url: "/bookings/abc", want: http.StatusBadRequest},
		{name: "not found", url: "/bookings/12", err: bookings.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "invalid input", url: "/bookings/0", err: bookings.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "internal", url: "/bookings/11", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.url)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
