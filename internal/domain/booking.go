package domain

import (
	"strings"
	"time"
)

// Booking represents a rental booking in the system.
// TotalPrice is fixed at creation time and is never recomputed,
// even if the vehicle's daily rate changes later.
type Booking struct {
	ID         string // внутренний ключ (полный UUID)
	Code       string // короткий код для отображения пользователю
	VehicleID  string
	UserID     string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
	Returned   bool

	CreatedAt  time.Time
	ReturnedAt *time.Time
}

// IsActive returns true while the booking has not been returned
func (b *Booking) IsActive() bool {
	return !b.Returned
}

// CanBeReturned returns true if the booking may still be returned
func (b *Booking) CanBeReturned() bool {
	return !b.Returned
}

// BelongsTo returns true if the booking is owned by the given user
func (b *Booking) BelongsTo(userID string) bool {
	return b.UserID == userID
}

// Days returns the booking length in whole days
func (b *Booking) Days() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}

// ShortBookingCode строит короткий код бронирования из полного UUID.
// Код используется только для отображения, поиск всегда идёт по полному ключу.
func ShortBookingCode(id string) string {
	compact := strings.ReplaceAll(id, "-", "")
	if len(compact) > BookingCodeLength {
		compact = compact[:BookingCodeLength]
	}
	return strings.ToUpper(compact)
}
