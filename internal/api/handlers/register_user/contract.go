package register_user

import (
	"context"

	"github.com/autovalley/AV-RentalService/internal/service/users/models"
)

// UserService интерфейс сервиса пользователей
type UserService interface {
	Register(ctx context.Context, req *models.RegisterUserRequest) (*models.UserResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
