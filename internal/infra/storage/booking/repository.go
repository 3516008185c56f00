package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/dbmetrics"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/psqlbuilder"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/types"
)

// Коды ошибок PostgreSQL
const (
	pgForeignKeyViolation  pq.ErrorCode = "23503"
	pgSerializationFailure pq.ErrorCode = "40001"
)

// Repository репозиторий для работы с бронированиями зала и слотами тренеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// subjectColumn колонка, по которой бронирование привязано к субъекту
func subjectColumn(subject domain.Subject) (string, error) {
	switch subject.Role {
	case domain.RoleClient:
		return "client_id", nil
	case domain.RoleTrainer:
		return "trainer_id", nil
	default:
		return "", fmt.Errorf("%w: unknown subject role %q", ErrBuildQuery, subject.Role)
	}
}

// FetchExistingBookings получает бронирования субъекта на дату, отсортированные по времени начала
// Внутри транзакции строки блокируются (FOR UPDATE) до её завершения
func (r *Repository) FetchExistingBookings(ctx context.Context, subject domain.Subject, date time.Time) ([]domain.ExistingBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	column, err := subjectColumn(subject)
	if err != nil {
		return nil, err
	}

	day := domain.DateOnly(date)
	selectBuilder := psqlbuilder.Select("id", "kind", "start_time", "end_time").
		From("bookings").
		Where(squirrel.Eq{column: subject.ID}).
		Where(squirrel.Eq{"booking_date": day}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FetchExistingBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchExistingBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]domain.ExistingBooking, 0)
	for rows.Next() {
		var (
			b          domain.ExistingBooking
			start, end types.TimeString
		)
		if err := rows.Scan(&b.ID, &b.Kind, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: FetchExistingBookings - scan booking: %v", ErrScanRow, err)
		}

		b.Window, err = windowOn(day, start, end)
		if err != nil {
			return nil, fmt.Errorf("%w: FetchExistingBookings - booking %d: %v", ErrScanRow, b.ID, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FetchExistingBookings - rows iteration: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"kind",
		"trainer_id",
		"client_id",
		"subscription_id",
		"booking_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": bookingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		b                                   domain.Booking
		trainerID, clientID, subscriptionID sql.NullInt64
		start, end                          types.TimeString
		createdAt                           sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.Kind,
		&trainerID,
		&clientID,
		&subscriptionID,
		&b.BookingDate,
		&start,
		&end,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.Window, err = windowOn(b.BookingDate, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - booking %d: %v", ErrScanRow, b.ID, err)
	}
	b.TrainerID = nullInt64(trainerID)
	b.ClientID = nullInt64(clientID)
	b.SubscriptionID = nullInt64(subscriptionID)
	b.CreatedAt = createdAt.Time

	return &b, nil
}

// CountConsumed количество бронирований клиента, списанных с абонемента
func (r *Repository) CountConsumed(ctx context.Context, clientID, subscriptionID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"client_id": clientID, "subscription_id": subscriptionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountConsumed - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountConsumed - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Create сохраняет бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"kind",
			"trainer_id",
			"client_id",
			"subscription_id",
			"booking_date",
			"start_time",
			"end_time",
		).
		Values(
			booking.Kind,
			booking.TrainerID,
			booking.ClientID,
			booking.SubscriptionID,
			domain.DateOnly(booking.BookingDate),
			types.NewTimeString(booking.Window.Start),
			types.NewTimeString(booking.Window.End),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		return nil, classify("Create - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time
	return booking, nil
}

// classify переводит ошибки драйвера в ошибки репозитория
func classify(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s: %s", ErrSubjectNotFound, op, pqErr.Constraint)
		case pgSerializationFailure:
			return fmt.Errorf("%w: %s: %v", ErrSerialization, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func windowOn(day time.Time, start, end types.TimeString) (domain.TimeWindow, error) {
	startAt, err := start.OnDate(day)
	if err != nil {
		return domain.TimeWindow{}, err
	}
	endAt, err := end.OnDate(day)
	if err != nil {
		return domain.TimeWindow{}, err
	}
	return domain.TimeWindow{Start: startAt, End: endAt}, nil
}
