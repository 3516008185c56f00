package get_quota

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

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/subscriptions"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/subscriptions/models"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/logger"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/ptr"
)

type fakeService struct {
	date time.Time
	err  error
}

func (f *fakeService) Quota(_ context.Context, clientID int64, date time.Time) (*models.QuotaResponse, error) {
	f.date = date
	if f.err != nil {
		return nil, f.err
	}
	return &models.QuotaResponse{
		ClientID:  clientID,
		Date:      date.Format("2006-01-02"),
		Active:    true,
		Limited:   true,
		Limit:     8,
		Consumed:  5,
		Remaining: ptr.Ptr(3),
	}, nil
}

func quota(service *fakeService, url string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/clients/{clientId}/quota", NewHandler(service, logger.Nop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle(t *testing.T) {
	service := &fakeService{}

	rec := quota(service, "/clients/7/quota?date=2025-01-10")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.QuotaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, ptr.Value(resp.Remaining))
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), service.date)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, quota(&fakeService{}, "/clients/x/quota").Code)
	assert.Equal(t, http.StatusBadRequest, quota(&fakeService{}, "/clients/7/quota?date=2025/01/10").Code)
	assert.Equal(t, http.StatusNotFound, quota(&fakeService{err: subscriptions.ErrSubscriptionNotFound}, "/clients/7/quota").Code)
	assert.Equal(t, http.StatusInternalServerError, quota(&fakeService{err: errors.New("db")}, "/clients/7/quota").Code)
}
