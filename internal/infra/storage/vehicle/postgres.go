package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/autovalley/AV-RentalService/internal/domain"
	"github.com/autovalley/AV-RentalService/pkg/psqlbuilder"
)

// PostgresRepository репозиторий реестра транспорта поверх PostgreSQL.
// Опциональный бэкенд: ядро работает с in-memory хранилищем,
// персистентность подключается через конфигурацию.
type PostgresRepository struct {
	db DBExecutor
}

// NewPostgresRepository создает новый экземпляр репозитория транспорта
func NewPostgresRepository(db DBExecutor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var vehicleColumns = []string{
	"id",
	"category",
	"brand",
	"model",
	"year",
	"daily_rate",
	"available",
	"created_at",
}

// Create добавляет транспорт в реестр
func (r *PostgresRepository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	query, args, err := psqlbuilder.Insert("vehicles").
		Columns("id", "category", "brand", "model", "year", "daily_rate", "available").
		Values(v.ID, v.Category, v.Brand, v.Model, v.Year, v.DailyRate, v.Available).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	stored := *v
	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	stored.CreatedAt = createdAt.Time

	return &stored, nil
}

// GetByID получает транспорт по ID
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}
	return v, nil
}

// List возвращает весь парк в порядке добавления
func (r *PostgresRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	return r.list(ctx, nil)
}

// ListAvailable возвращает только доступный транспорт, сохраняя относительный порядок
func (r *PostgresRepository) ListAvailable(ctx context.Context) ([]*domain.Vehicle, error) {
	return r.list(ctx, squirrel.Eq{"available": true})
}

func (r *PostgresRepository) list(ctx context.Context, where interface{}) ([]*domain.Vehicle, error) {
	selectBuilder := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
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

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return vehicles, nil
}

// SetAvailability меняет флаг доступности транспорта
func (r *PostgresRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	query, args, err := psqlbuilder.Update("vehicles").
		Set("available", available).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanVehicle сканирует одну строку результата в доменную модель
func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var createdAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.Category,
		&v.Brand,
		&v.Model,
		&v.Year,
		&v.DailyRate,
		&v.Available,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	v.CreatedAt = createdAt.Time
	return &v, nil
}
