package return_booking

import (
	"time"

	returnBooking "github.com/autovalley/AV-RentalService/internal/usecase/return_booking"
)

// ReturnBookingResponse модель ответа о завершённом бронировании
type ReturnBookingResponse struct {
	BookingID  string `json:"bookingId"`
	Code       string `json:"code"`
	VehicleID  string `json:"vehicleId"`
	ReturnedAt string `json:"returnedAt"`
}

// FromUseCaseResponse преобразует ответ use case в HTTP модель
func FromUseCaseResponse(resp *returnBooking.Response) *ReturnBookingResponse {
	return &ReturnBookingResponse{
		BookingID:  resp.BookingID,
		Code:       resp.Code,
		VehicleID:  resp.VehicleID,
		ReturnedAt: resp.ReturnedAt.Format(time.RFC3339),
	}
}
