package tariff

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/tariffcodec"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/dbmetrics"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/psqlbuilder"
)

// Repository читает таблицу коэффициентов тарифов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// FetchTariffTable загружает все тарифы: код -> (k_time, k_period_or_n)
func (r *Repository) FetchTariffTable(ctx context.Context) (domain.TariffTable, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code", "k_time", "k_period_or_n").
		From("tariffs").
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FetchTariffTable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchTariffTable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	table := make(domain.TariffTable)
	for rows.Next() {
		var (
			code          string
			kTime, kCount decimal.Decimal
		)
		if err := rows.Scan(&code, &kTime, &kCount); err != nil {
			return nil, fmt.Errorf("%w: FetchTariffTable - scan tariff: %v", ErrScanRow, err)
		}

		tariffCode, err := tariffcodec.Decode(code)
		if err != nil {
			return nil, fmt.Errorf("%w: tariffs table has code %q: %v", domain.ErrInvariant, code, err)
		}
		table[tariffCode] = domain.Multipliers{Time: kTime, PeriodOrCount: kCount}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FetchTariffTable - rows iteration: %v", ErrScanRow, err)
	}
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}

	return table, nil
}
