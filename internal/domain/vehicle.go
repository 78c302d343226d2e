package domain

import "time"

// VehicleCategory represents the kind of a vehicle
type VehicleCategory string

const (
	CategoryCar   VehicleCategory = "car"
	CategoryBike  VehicleCategory = "bike"
	CategoryTruck VehicleCategory = "truck"
)

// Categories список всех допустимых категорий транспорта
var Categories = []VehicleCategory{
	CategoryCar,
	CategoryBike,
	CategoryTruck,
}

// Vehicle represents a rentable vehicle in the fleet
type Vehicle struct {
	ID        string
	Category  VehicleCategory
	Brand     string
	Model     string
	Year      int
	DailyRate float64
	Available bool
	CreatedAt time.Time
}

// IsAvailable returns true if the vehicle is free to be reserved.
// The flag is false exactly while an active booking references the vehicle.
func (v *Vehicle) IsAvailable() bool {
	return v.Available
}

// IsValidCategory returns true if the category is one of the known vehicle kinds
func IsValidCategory(c VehicleCategory) bool {
	for _, valid := range Categories {
		if c == valid {
			return true
		}
	}
	return false
}
