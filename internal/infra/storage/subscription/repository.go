package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/tariffcodec"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/dbmetrics"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/psqlbuilder"
)

const pgForeignKeyViolation pq.ErrorCode = "23503"

var columns = []string{
	"id",
	"client_id",
	"tariff_code",
	"valid_since",
	"valid_until",
	"is_valid",
	"frozen_from",
	"frozen_until",
	"visit_count",
	"price",
	"created_at",
	"updated_at",
}

// Repository репозиторий абонементов клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория абонементов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByClient получает последний купленный абонемент клиента, в том числе отозванный
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByClient(ctx context.Context, clientID int64) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("subscriptions").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("id DESC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClient - build select query: %v", ErrBuildQuery, err)
	}

	sub, err := scanSubscription(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByClient - client %d: %w", clientID, err)
	}

	return sub, nil
}

// Create сохраняет новый абонемент и привязывает его к клиенту
// Два запроса: вызывать внутри транзакции
func (r *Repository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("subscriptions").
		Columns(
			"client_id",
			"tariff_code",
			"valid_since",
			"valid_until",
			"is_valid",
			"visit_count",
			"price",
		).
		Values(
			sub.ClientID,
			sub.Tariff.String(),
			domain.DateOnly(sub.ValidSince),
			domain.DateOnly(sub.ValidUntil),
			true,
			0,
			sub.Price,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sub.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
			return nil, fmt.Errorf("%w: client %d", ErrClientNotFound, sub.ClientID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sub.IsValid = true
	sub.VisitCount = 0
	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	linkQuery, linkArgs, err := psqlbuilder.Update("clients").
		Set("subscription_id", sub.ID).
		Where(squirrel.Eq{"id": sub.ClientID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build link query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, linkQuery, linkArgs...); err != nil {
		return nil, fmt.Errorf("%w: Create - link client: %v", ErrExecQuery, err)
	}

	return sub, nil
}

// IncrementVisitCount увеличивает счетчик посещений на единицу
func (r *Repository) IncrementVisitCount(ctx context.Context, subscriptionID int64) error {
	query, args, err := psqlbuilder.Update("subscriptions").
		Set("visit_count", squirrel.Expr("visit_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": subscriptionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementVisitCount - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, "IncrementVisitCount", query, args)
}

// PersistFreeze сохраняет период заморозки и новую дату окончания
func (r *Repository) PersistFreeze(ctx context.Context, subscriptionID int64, frozenFrom, frozenUntil, newValidUntil time.Time) error {
	query, args, err := psqlbuilder.Update("subscriptions").
		Set("frozen_from", domain.DateOnly(frozenFrom)).
		Set("frozen_until", domain.DateOnly(frozenUntil)).
		Set("valid_until", domain.DateOnly(newValidUntil)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": subscriptionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: PersistFreeze - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, "PersistFreeze", query, args)
}

// Revoke отзывает абонемент (is_valid = false) и отвязывает его от клиента
// Два запроса: вызывать внутри транзакции
func (r *Repository) Revoke(ctx context.Context, subscriptionID int64) error {
	query, args, err := psqlbuilder.Update("subscriptions").
		Set("is_valid", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": subscriptionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Revoke - build update query: %v", ErrBuildQuery, err)
	}

	if err := r.execOne(ctx, "Revoke", query, args); err != nil {
		return err
	}

	unlinkQuery, unlinkArgs, err := psqlbuilder.Update("clients").
		Set("subscription_id", nil).
		Where(squirrel.Eq{"subscription_id": subscriptionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Revoke - build unlink query: %v", ErrBuildQuery, err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)
	if _, err := executor.ExecContext(ctx, unlinkQuery, unlinkArgs...); err != nil {
		return fmt.Errorf("%w: Revoke - unlink client: %v", ErrExecQuery, err)
	}

	return nil
}

// execOne выполняет UPDATE, который должен затронуть ровно одну строку
func (r *Repository) execOne(ctx context.Context, op, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

func scanSubscription(row *sql.Row) (*domain.Subscription, error) {
	var (
		sub                     domain.Subscription
		tariff                  string
		frozenFrom, frozenUntil sql.NullTime
		createdAt, updatedAt    sql.NullTime
	)

	err := row.Scan(
		&sub.ID,
		&sub.ClientID,
		&tariff,
		&sub.ValidSince,
		&sub.ValidUntil,
		&sub.IsValid,
		&frozenFrom,
		&frozenUntil,
		&sub.VisitCount,
		&sub.Price,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan subscription: %v", ErrScanRow, err)
	}

	// Код тарифа в БД записывается только через Encode: нераспознанный код означает порчу данных
	sub.Tariff, err = tariffcodec.Decode(tariff)
	if err != nil {
		return nil, fmt.Errorf("%w: subscription %d has stored tariff %q: %v", domain.ErrInvariant, sub.ID, tariff, err)
	}

	if frozenFrom.Valid {
		sub.FrozenFrom = &frozenFrom.Time
	}
	if frozenUntil.Valid {
		sub.FrozenUntil = &frozenUntil.Time
	}
	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	return &sub, nil
}
