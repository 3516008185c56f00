package freeze_subscription

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	freezeSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/freeze_subscription"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/logger"
)

type fakeUseCase struct {
	err error
	got *freezeSubscription.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *freezeSubscription.Request) (*freezeSubscription.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &freezeSubscription.Response{
		SubscriptionID: 100,
		FrozenFrom:     req.From,
		FrozenUntil:    req.Until,
		ValidUntil:     time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		ExtensionDays:  10,
	}, nil
}

func freeze(uc *fakeUseCase, url, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/clients/{clientId}/subscription/freeze", NewHandler(uc, logger.Nop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, url, strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}

	rec := freeze(uc, "/clients/7/subscription/freeze", `{"from":"2025-01-10","until":"2025-01-20"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp FreezeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-02-10", resp.ValidUntil)
	assert.Equal(t, 10, resp.ExtensionDays)
	assert.Equal(t, int64(7), uc.got.ClientID)
}

func TestHandle_Errors(t *testing.T) {
	body := `{"from":"2025-01-10","until":"2025-01-20"}`

	tests := []struct {
		name   string
		url    string
		body   string
		err    error
		status int
	}{
		{name: "bad client id", url: "/clients/x/subscription/freeze", body: body, status: http.StatusBadRequest},
		{name: "bad body", url: "/clients/7/subscription/freeze", body: `{`, status: http.StatusBadRequest},
		{name: "bad date", url: "/clients/7/subscription/freeze", body: `{"from":"10.01.2025","until":"2025-01-20"}`, status: http.StatusBadRequest},
		{name: "inverted", url: "/clients/7/subscription/freeze", body: body, err: domain.Reject(domain.RejectInvertedFreezeRange, "inverted"), status: http.StatusBadRequest},
		{name: "after end", url: "/clients/7/subscription/freeze", body: body, err: domain.Reject(domain.RejectFreezeAfterEnd, "late"), status: http.StatusUnprocessableEntity},
		{name: "no subscription", url: "/clients/7/subscription/freeze", body: body, err: domain.Reject(domain.RejectNoSubscription, "none"), status: http.StatusNotFound},
		{name: "persistence", url: "/clients/7/subscription/freeze", body: body, err: domain.Reject(domain.RejectPersistenceFailure, "db"), status: http.StatusServiceUnavailable},
		{name: "invalid input", url: "/clients/7/subscription/freeze", body: body, err: freezeSubscription.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", url: "/clients/7/subscription/freeze", body: body, err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, freeze(&fakeUseCase{err: tt.err}, tt.url, tt.body).Code)
		})
	}
}
