package list_vehicles

import (
	"context"

	"github.com/autovalley/AV-RentalService/internal/service/vehicles/models"
)

// VehicleService интерфейс сервиса транспорта
type VehicleService interface {
	List(ctx context.Context) (*models.VehicleListResponse, error)
	ListAvailable(ctx context.Context) (*models.VehicleListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
