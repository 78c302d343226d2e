package create_vehicle

import "github.com/autovalley/AV-RentalService/internal/service/vehicles/models"

// CreateVehicleRequest HTTP request model
type CreateVehicleRequest struct {
	Category  string  `json:"category"` // car | bike | truck
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	DailyRate float64 `json:"dailyRate"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateVehicleRequest) ToServiceRequest(adminID string) *models.CreateVehicleRequest {
	return &models.CreateVehicleRequest{
		AdminID:   adminID,
		Category:  r.Category,
		Brand:     r.Brand,
		Model:     r.Model,
		Year:      r.Year,
		DailyRate: r.DailyRate,
	}
}
