package return_booking

import (
	"context"

	returnBooking "github.com/autovalley/AV-RentalService/internal/usecase/return_booking"
)

// ReturnBookingUseCase интерфейс use case возврата транспорта
type ReturnBookingUseCase interface {
	Execute(ctx context.Context, req *returnBooking.Request) (*returnBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
