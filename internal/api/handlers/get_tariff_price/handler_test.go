package get_tariff_price

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	purchaseSubscription "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/purchase_subscription"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/logger"
)

type fakeQuoter struct {
	err error
	got *purchaseSubscription.QuoteRequest
}

func (f *fakeQuoter) Quote(_ context.Context, req *purchaseSubscription.QuoteRequest) (*purchaseSubscription.Quote, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &purchaseSubscription.Quote{
		Tariff: domain.TariffCode{ClassLimit: domain.ClassLimitEight, TimeBand: domain.TimeBandMorning, Period: domain.PeriodMonth},
		Price:  decimal.RequireFromString("1500.00"),
	}, nil
}

func price(q *fakeQuoter, params url.Values) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(q, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tariffs/price?"+params.Encode(), nil))
	return rec
}

func TestHandle(t *testing.T) {
	q := &fakeQuoter{}

	rec := price(q, url.Values{"period": {"Month"}, "classLimit": {"8"}, "timeBand": {"<16"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PriceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "8_mrn_mnth", resp.Tariff)
	assert.True(t, decimal.NewFromInt(1500).Equal(resp.Price))
	assert.Equal(t, "<16", q.got.TimeBand)
}

func TestHandle_Errors(t *testing.T) {
	rec := price(&fakeQuoter{err: domain.Reject(domain.RejectInvalidTariffSelection, "unknown period")}, url.Values{"period": {"Weekly"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_tariff_selection")

	rec = price(&fakeQuoter{err: domain.Reject(domain.RejectCatalogUnavailable, "store down")}, url.Values{})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = price(&fakeQuoter{err: errors.New("boom")}, url.Values{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
