package vehicles

import (
	"context"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// VehicleRepository интерфейс реестра транспорта
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	ListAvailable(ctx context.Context) ([]*domain.Vehicle, error)
}

// UserRepository интерфейс хранилища пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
