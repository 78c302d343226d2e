package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortBookingCode(t *testing.T) {
	code := ShortBookingCode("a1b2c3d4-e5f6-7890-abcd-ef1234567890")
	assert.Equal(t, "A1B2C3D4", code)
	assert.Len(t, code, BookingCodeLength)

	// Короткий вход не дополняется
	assert.Equal(t, "AB12", ShortBookingCode("ab12"))
}

func TestBookingLifecyclePredicates(t *testing.T) {
	b := &Booking{
		ID:     "id-1",
		UserID: "user-1",
	}

	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeReturned())
	assert.True(t, b.BelongsTo("user-1"))
	assert.False(t, b.BelongsTo("user-2"))

	now := time.Now()
	b.Returned = true
	b.ReturnedAt = &now

	assert.False(t, b.IsActive())
	assert.False(t, b.CanBeReturned())
}

func TestBookingDays(t *testing.T) {
	b := &Booking{
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 7, b.Days())
}

func TestVehicleCategoryValidation(t *testing.T) {
	assert.True(t, IsValidCategory(CategoryCar))
	assert.True(t, IsValidCategory(CategoryBike))
	assert.True(t, IsValidCategory(CategoryTruck))
	assert.False(t, IsValidCategory(VehicleCategory("boat")))
}

func TestUserRolePredicates(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	customer := &User{Role: RoleCustomer}

	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsCustomer())
	assert.True(t, customer.IsCustomer())
	assert.False(t, customer.IsAdmin())

	assert.True(t, IsValidRole(RoleAdmin))
	assert.False(t, IsValidRole(UserRole("manager")))
}
