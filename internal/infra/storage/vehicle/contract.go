package vehicle

import (
	"context"
	"database/sql"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// Repository общий контракт реестра транспорта для обоих бэкендов хранилища.
// Флаг доступности меняется только через SetAvailability.
type Repository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	ListAvailable(ctx context.Context) ([]*domain.Vehicle, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}

// DBExecutor интерфейс для выполнения SQL запросов
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
