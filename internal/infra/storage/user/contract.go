package user

import (
	"context"
	"database/sql"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// Repository общий контракт хранилища пользователей для обоих бэкендов.
// Email уникален в рамках всей системы.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// DBExecutor интерфейс для выполнения SQL запросов
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
