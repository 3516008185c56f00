package tariff

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestFetchTariffTable(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT code, k_time, k_period_or_n FROM tariffs ORDER BY code ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"code", "k_time", "k_period_or_n"}).
			AddRow("12_mrn_mnth", "0.8", "1.2").
			AddRow("one_time", "1", "0.15"))

	table, err := repo.FetchTariffTable(context.Background())
	require.NoError(t, err)
	require.Len(t, table, 2)

	m := table[domain.TariffCode{ClassLimit: domain.ClassLimitTwelve, TimeBand: domain.TimeBandMorning, Period: domain.PeriodMonth}]
	assert.True(t, decimal.RequireFromString("0.8").Equal(m.Time))
	assert.True(t, decimal.RequireFromString("1.2").Equal(m.PeriodOrCount))

	_, ok := table[domain.OneTimeTariff]
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchTariffTable_Errors(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(`FROM tariffs`).WillReturnError(errors.New("timeout"))

		_, err := repo.FetchTariffTable(context.Background())
		assert.ErrorIs(t, err, ErrExecQuery)
	})

	t.Run("empty", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(`FROM tariffs`).WillReturnRows(sqlmock.NewRows([]string{"code", "k_time", "k_period_or_n"}))

		_, err := repo.FetchTariffTable(context.Background())
		assert.ErrorIs(t, err, ErrEmptyTable)
	})

	t.Run("unknown code", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(`FROM tariffs`).
			WillReturnRows(sqlmock.NewRows([]string{"code", "k_time", "k_period_or_n"}).AddRow("gold", "1", "1"))

		_, err := repo.FetchTariffTable(context.Background())
		assert.ErrorIs(t, err, domain.ErrInvariant)
	})
}
