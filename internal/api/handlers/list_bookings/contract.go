package list_bookings

import (
	"context"

	"github.com/autovalley/AV-RentalService/internal/service/bookings/models"
)

type BookingService interface {
	GetAllBookings(ctx context.Context, requestingUserID string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
