package get_vehicle

import (
	"context"

	"github.com/autovalley/AV-RentalService/internal/service/vehicles/models"
)

// VehicleService интерфейс сервиса транспорта
type VehicleService interface {
	GetByID(ctx context.Context, id string) (*models.VehicleResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
