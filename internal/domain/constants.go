package domain

// Default configuration values
const (
	DefaultMinVehicleYear = 2000
	DefaultMaxVehicleYear = 2025
	DefaultCurrency       = "USD"
)

// Business validation constants
const (
	MinRentalDays     = 1
	BookingCodeLength = 8
	MaxBrandLength    = 64
	MaxModelLength    = 64
	MaxNameLength     = 128
	MaxEmailLength    = 254
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
