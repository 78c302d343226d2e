package reserve_vehicle

import (
	"fmt"
	"time"

	"github.com/autovalley/AV-RentalService/internal/domain"
	reserveVehicle "github.com/autovalley/AV-RentalService/internal/usecase/reserve_vehicle"
)

// ReserveVehicleRequest модель запроса на бронирование транспорта
type ReserveVehicleRequest struct {
	VehicleID string `json:"vehicleId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ReserveVehicleResponse модель ответа с данными бронирования
type ReserveVehicleResponse struct {
	BookingID  string  `json:"bookingId"`
	Code       string  `json:"code"`
	VehicleID  string  `json:"vehicleId"`
	UserID     string  `json:"userId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TotalPrice float64 `json:"totalPrice"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest преобразует HTTP модель в запрос use case
func (r *ReserveVehicleRequest) ToUseCaseRequest(userID string) (*reserveVehicle.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate format: %v", err)
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate format: %v", err)
	}

	return &reserveVehicle.Request{
		VehicleID: r.VehicleID,
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// FromUseCaseResponse преобразует ответ use case в HTTP модель
func FromUseCaseResponse(resp *reserveVehicle.Response) *ReserveVehicleResponse {
	return &ReserveVehicleResponse{
		BookingID:  resp.BookingID,
		Code:       resp.Code,
		VehicleID:  resp.VehicleID,
		UserID:     resp.UserID,
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		TotalPrice: resp.TotalPrice,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
