package reserve_vehicle

import (
	"context"
	"time"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// VehicleRegistry интерфейс реестра транспорта.
// Флаг доступности меняется только через SetAvailability.
type VehicleRegistry interface {
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}

// BookingLedger интерфейс журнала бронирований
type BookingLedger interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
}

// UserRepository интерфейс хранилища пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// PricingPolicy интерфейс политики ценообразования
type PricingPolicy interface {
	Price(category domain.VehicleCategory, dailyRate float64, start, end time.Time) (float64, error)
}

// VehicleLocker сериализует мутации по ключу транспорта
type VehicleLocker interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// MetricsCollector счётчики жизненного цикла аренды (опционально)
type MetricsCollector interface {
	IncReservations()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
