package register_user

import "github.com/autovalley/AV-RentalService/internal/service/users/models"

// RegisterUserRequest HTTP request model
type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // admin | customer
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterUserRequest) ToServiceRequest() *models.RegisterUserRequest {
	return &models.RegisterUserRequest{
		Name:  r.Name,
		Email: r.Email,
		Role:  r.Role,
	}
}
