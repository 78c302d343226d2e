package return_booking

import (
	"context"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// VehicleRegistry интерфейс реестра транспорта
type VehicleRegistry interface {
	SetAvailability(ctx context.Context, id string, available bool) error
}

// BookingLedger интерфейс журнала бронирований
type BookingLedger interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	MarkReturned(ctx context.Context, id string) error
}

// VehicleLocker сериализует мутации по ключу транспорта
type VehicleLocker interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// MetricsCollector счётчики жизненного цикла аренды (опционально)
type MetricsCollector interface {
	IncReturns()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
