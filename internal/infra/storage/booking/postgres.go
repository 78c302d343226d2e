package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/autovalley/AV-RentalService/internal/domain"
	"github.com/autovalley/AV-RentalService/pkg/psqlbuilder"
)

// PostgresRepository журнал бронирований поверх PostgreSQL.
// Опциональный бэкенд, подключается через конфигурацию.
type PostgresRepository struct {
	db DBExecutor
}

// NewPostgresRepository создает новый экземпляр репозитория бронирований
func NewPostgresRepository(db DBExecutor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var bookingColumns = []string{
	"id",
	"code",
	"vehicle_id",
	"user_id",
	"start_date",
	"end_date",
	"total_price",
	"returned",
	"returned_at",
	"created_at",
}

// Create добавляет запись о бронировании в журнал
func (r *PostgresRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert("bookings").
		Columns("id", "code", "vehicle_id", "user_id", "start_date", "end_date", "total_price", "returned").
		Values(b.ID, b.Code, b.VehicleID, b.UserID, b.StartDate, b.EndDate, b.TotalPrice, b.Returned).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	stored := *b
	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	stored.CreatedAt = createdAt.Time

	return &stored, nil
}

// GetByID получает бронирование по внутреннему ключу
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return b, nil
}

// GetByUserID возвращает бронирования пользователя в порядке добавления
func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID})
}

// List возвращает все бронирования в порядке добавления (операторский обзор)
func (r *PostgresRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	return r.list(ctx, nil)
}

func (r *PostgresRepository) list(ctx context.Context, where interface{}) ([]*domain.Booking, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at ASC, id ASC")

	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// MarkReturned помечает бронирование возвращённым.
// Условие returned = false в запросе гарантирует однократный переход флага.
func (r *PostgresRepository) MarkReturned(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("returned", true).
		Set("returned_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "returned": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkReturned - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkReturned - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkReturned - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо бронирования нет, либо оно уже возвращено — различаем отдельным чтением
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrAlreadyReturned
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в доменную модель
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var returnedAt, createdAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Code,
		&b.VehicleID,
		&b.UserID,
		&b.StartDate,
		&b.EndDate,
		&b.TotalPrice,
		&b.Returned,
		&returnedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if returnedAt.Valid {
		t := returnedAt.Time
		b.ReturnedAt = &t
	}
	b.CreatedAt = createdAt.Time

	return &b, nil
}
