package models

import (
	"time"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// Request модели

// CreateVehicleRequest запрос на добавление транспорта
type CreateVehicleRequest struct {
	AdminID   string  // ID администратора, выполняющего операцию
	Category  string  // car | bike | truck
	Brand     string  // Марка
	Model     string  // Модель
	Year      int     // Год выпуска (в настраиваемом диапазоне)
	DailyRate float64 // Дневная ставка, строго положительная
}

// Response модели

// VehicleResponse ответ с данными транспорта
type VehicleResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	DailyRate float64   `json:"dailyRate"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}

// VehicleListResponse ответ со списком транспорта
type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}

// FromDomainVehicle конвертирует domain модель в DTO
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}
	return &VehicleResponse{
		ID:        v.ID,
		Category:  string(v.Category),
		Brand:     v.Brand,
		Model:     v.Model,
		Year:      v.Year,
		DailyRate: v.DailyRate,
		Available: v.Available,
		CreatedAt: v.CreatedAt,
	}
}

// FromDomainVehicleList конвертирует список domain моделей в DTO
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	resp := &VehicleListResponse{
		Vehicles: make([]VehicleResponse, 0, len(vehicles)),
	}
	for _, v := range vehicles {
		if dto := FromDomainVehicle(v); dto != nil {
			resp.Vehicles = append(resp.Vehicles, *dto)
		}
	}
	return resp
}
