package purchase_subscription

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/subscriptions/models"
	purchaseSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/purchase_subscription"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/logger"
)

type fakeUseCase struct {
	err error
	got *purchaseSubscription.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *purchaseSubscription.Request) (*purchaseSubscription.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &purchaseSubscription.Response{Subscription: &domain.Subscription{
		ID:         5,
		ClientID:   req.ClientID,
		Tariff:     domain.TariffCode{ClassLimit: domain.ClassLimitEight, TimeBand: domain.TimeBandEvening, Period: domain.PeriodMonth},
		ValidSince: req.StartDate,
		ValidUntil: req.StartDate.AddDate(0, 1, 0),
		IsValid:    true,
		Price:      decimal.NewFromInt(1800),
	}}, nil
}

func purchase(uc *fakeUseCase, url, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/clients/{clientId}/subscription", NewHandler(uc, logger.Nop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, url, strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}

	rec := purchase(uc, "/clients/7/subscription", `{"period":"Month","classLimit":"8","timeBand":"≥16","startDate":"2025-01-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.SubscriptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "8_evn_mnth", resp.Tariff)
	assert.Equal(t, "2025-02-01", resp.ValidUntil)

	assert.Equal(t, "≥16", uc.got.TimeBand)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), uc.got.StartDate)
}

func TestToUseCaseRequest_DefaultsToToday(t *testing.T) {
	today := time.Date(2025, 3, 4, 15, 30, 0, 0, time.UTC)

	req, err := (&PurchaseRequest{Period: "Month"}).ToUseCaseRequest(7, today)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), req.StartDate)
}

func TestHandle_Errors(t *testing.T) {
	body := `{"period":"Month","classLimit":"8","timeBand":"≥16"}`

	tests := []struct {
		name   string
		url    string
		body   string
		err    error
		status int
	}{
		{name: "bad client id", url: "/clients/x/subscription", body: body, status: http.StatusBadRequest},
		{name: "bad date", url: "/clients/7/subscription", body: `{"period":"Month","startDate":"01/01/2025"}`, status: http.StatusBadRequest},
		{name: "invalid selection", url: "/clients/7/subscription", body: body, err: domain.Reject(domain.RejectInvalidTariffSelection, "no such"), status: http.StatusBadRequest},
		{name: "unknown tariff", url: "/clients/7/subscription", body: body, err: domain.Reject(domain.RejectUnknownTariff, "not priced"), status: http.StatusUnprocessableEntity},
		{name: "client not found", url: "/clients/7/subscription", body: body, err: purchaseSubscription.ErrClientNotFound, status: http.StatusNotFound},
		{name: "invalid input", url: "/clients/7/subscription", body: body, err: purchaseSubscription.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", url: "/clients/7/subscription", body: body, err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, purchase(&fakeUseCase{err: tt.err}, tt.url, tt.body).Code)
		})
	}
}
