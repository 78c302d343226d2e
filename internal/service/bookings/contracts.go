package bookings

import (
	"context"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
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
