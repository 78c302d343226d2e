package models

import (
	"time"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// RegisterUserRequest запрос на регистрацию пользователя
type RegisterUserRequest struct {
	Name  string // Имя
	Email string // Email, уникален в рамках всей системы
	Role  string // admin | customer
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
