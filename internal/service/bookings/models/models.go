package models

import (
	"time"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования.
// TotalPrice отдаётся с полной точностью, округление — забота слоя отображения.
type BookingResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	VehicleID  string  `json:"vehicleId"`
	UserID     string  `json:"userId"`
	StartDate  string  `json:"startDate"` // "2026-08-01"
	EndDate    string  `json:"endDate"`
	TotalPrice float64 `json:"totalPrice"`
	Returned   bool    `json:"returned"`

	ReturnedAt *string   `json:"returnedAt,omitempty"` // ISO 8601
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:         b.ID,
		Code:       b.Code,
		VehicleID:  b.VehicleID,
		UserID:     b.UserID,
		StartDate:  b.StartDate.Format(domain.DateFormat),
		EndDate:    b.EndDate.Format(domain.DateFormat),
		TotalPrice: b.TotalPrice,
		Returned:   b.Returned,
		CreatedAt:  b.CreatedAt,
	}

	if b.ReturnedAt != nil {
		returnedStr := b.ReturnedAt.Format(time.RFC3339)
		resp.ReturnedAt = &returnedStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}
	return resp
}
