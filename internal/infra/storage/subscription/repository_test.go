package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func subscriptionRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestGetByClient(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, client_id, tariff_code, .* FROM subscriptions WHERE client_id = \$1 ORDER BY id DESC LIMIT 1$`).
		WithArgs(int64(7)).
		WillReturnRows(subscriptionRows().AddRow(
			int64(100), int64(7), "8_evn_mnth", date(2025, 1, 1), date(2025, 1, 31), true,
			date(2025, 1, 10), date(2025, 1, 20), 3, "1520.00", now, now,
		))

	sub, err := repo.GetByClient(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(100), sub.ID)
	assert.Equal(t, "8_evn_mnth", sub.Tariff.String())
	assert.True(t, sub.IsValid)
	require.NotNil(t, sub.FrozenFrom)
	assert.Equal(t, date(2025, 1, 10), *sub.FrozenFrom)
	assert.Equal(t, 3, sub.VisitCount)
	assert.True(t, decimal.RequireFromString("1520").Equal(sub.Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByClient_NotFound(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`FROM subscriptions`).WillReturnRows(subscriptionRows())

	_, err := repo.GetByClient(context.Background(), 7)
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestGetByClient_CorruptTariffIsInvariant(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`FROM subscriptions`).
		WillReturnRows(subscriptionRows().AddRow(
			int64(100), int64(7), "gold", date(2025, 1, 1), date(2025, 1, 31), true,
			nil, nil, 0, "0", nil, nil,
		))

	_, err := repo.GetByClient(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrInvariant)
}

func TestCreate_LinksClient(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO subscriptions \(client_id,tariff_code,valid_since,valid_until,is_valid,visit_count,price\) VALUES .* RETURNING id, created_at, updated_at`).
		WithArgs(int64(7), "unlim_any_year", date(2025, 1, 1), date(2026, 1, 1), true, 0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))
	mock.ExpectExec(`UPDATE clients SET subscription_id = \$1 WHERE id = \$2`).
		WithArgs(int64(5), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	sub, err := repo.Create(context.Background(), &domain.Subscription{
		ClientID:   7,
		Tariff:     domain.TariffCode{ClassLimit: domain.ClassLimitUnlimited, TimeBand: domain.TimeBandAnyTime, Period: domain.PeriodYear},
		ValidSince: date(2025, 1, 1),
		ValidUntil: date(2026, 1, 1),
		Price:      decimal.NewFromInt(12000),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), sub.ID)
	assert.True(t, sub.IsValid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UnknownClient(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO subscriptions`).WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), &domain.Subscription{ClientID: 404, Tariff: domain.OneTimeTariff})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestIncrementVisitCount(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE subscriptions SET visit_count = visit_count \+ 1, updated_at = NOW\(\) WHERE id = \$1`).
		WithArgs(int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE subscriptions SET visit_count`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.IncrementVisitCount(context.Background(), 100))
	assert.ErrorIs(t, repo.IncrementVisitCount(context.Background(), 404), ErrSubscriptionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersistFreeze(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE subscriptions SET frozen_from = \$1, frozen_until = \$2, valid_until = \$3, updated_at = NOW\(\) WHERE id = \$4`).
		WithArgs(date(2025, 1, 10), date(2025, 1, 20), date(2025, 2, 10), int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.PersistFreeze(context.Background(), 100, date(2025, 1, 10), date(2025, 1, 20), date(2025, 2, 10))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRevoke(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE subscriptions SET is_valid = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(false, int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE clients SET subscription_id = \$1 WHERE subscription_id = \$2`).
		WithArgs(nil, int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Revoke(context.Background(), 100))
	assert.NoError(t, mock.ExpectationsWereMet())
}
