package reserve_vehicle

import (
	"context"

	reserveVehicle "github.com/autovalley/AV-RentalService/internal/usecase/reserve_vehicle"
)

// ReserveVehicleUseCase интерфейс use case бронирования
type ReserveVehicleUseCase interface {
	Execute(ctx context.Context, req *reserveVehicle.Request) (*reserveVehicle.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
