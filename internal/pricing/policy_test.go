package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

func date(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestPrice_CategoryMultipliers(t *testing.T) {
	policy := NewPolicy()

	// Трое суток по ставке 50 для каждой категории
	tests := []struct {
		name     string
		category domain.VehicleCategory
		expected float64
	}{
		{"car full rate", domain.CategoryCar, 150.0},
		{"bike discounted", domain.CategoryBike, 120.0},
		{"truck surcharged", domain.CategoryTruck, 225.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := policy.Price(tt.category, 50, date(1), date(4))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, price)
		})
	}
}

func TestPrice_SingleDay(t *testing.T) {
	policy := NewPolicy()

	price, err := policy.Price(domain.CategoryCar, 55, date(10), date(11))
	require.NoError(t, err)
	assert.Equal(t, 55.0, price)
}

func TestPrice_KeepsFullPrecision(t *testing.T) {
	policy := NewPolicy()

	// 33.33 * 7 * 0.8 не даёт круглое число, значение не округляется
	price, err := policy.Price(domain.CategoryBike, 33.33, date(1), date(8))
	require.NoError(t, err)
	assert.InDelta(t, 33.33*7*0.8, price, 1e-9)
}

func TestPrice_InvalidRange(t *testing.T) {
	policy := NewPolicy()

	_, err := policy.Price(domain.CategoryCar, 50, date(5), date(5))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = policy.Price(domain.CategoryCar, 50, date(5), date(3))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestPrice_UnknownCategory(t *testing.T) {
	policy := NewPolicy()

	_, err := policy.Price(domain.VehicleCategory("boat"), 50, date(1), date(2))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestPrice_InvalidRate(t *testing.T) {
	policy := NewPolicy()

	_, err := policy.Price(domain.CategoryCar, 0, date(1), date(2))
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = policy.Price(domain.CategoryCar, -10, date(1), date(2))
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestMultiplier(t *testing.T) {
	policy := NewPolicy()

	m, err := policy.Multiplier(domain.CategoryTruck)
	require.NoError(t, err)
	assert.Equal(t, 1.5, m)

	_, err = policy.Multiplier(domain.VehicleCategory("scooter"))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestRentalDays(t *testing.T) {
	assert.Equal(t, 1, RentalDays(date(1), date(2)))
	assert.Equal(t, 7, RentalDays(date(1), date(8)))
	assert.Equal(t, 0, RentalDays(date(1), date(1)))
}
