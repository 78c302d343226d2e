package booking

import (
	"context"
	"database/sql"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// Repository общий контракт журнала бронирований для обоих бэкендов хранилища.
// Записи только добавляются; единственная мутация после создания — MarkReturned.
type Repository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	MarkReturned(ctx context.Context, id string) error
}

// DBExecutor интерфейс для выполнения SQL запросов
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
