package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/autovalley/AV-RentalService/internal/domain"
	userRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/user"
	"github.com/autovalley/AV-RentalService/internal/service/users/models"
)

// Service сервис для работы с пользователями.
// Идентичность разрешается на HTTP-слое, здесь только регистрация и поиск.
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя с уникальным email
func (s *Service) Register(ctx context.Context, req *models.RegisterUserRequest) (*models.UserResponse, error) {
	s.logger.Info("RegisterUser: name=%s, email=%s, role=%s", req.Name, req.Email, req.Role)

	if err := validateRegisterRequest(req); err != nil {
		s.logger.Warn("RegisterUser: validation failed: %v", err)
		return nil, err
	}

	user := &domain.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Role:  domain.UserRole(strings.ToLower(strings.TrimSpace(req.Role))),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("RegisterUser: email=%s already taken", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("RegisterUser: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterUser: user created, id=%s", created.ID)
	return models.FromDomainUser(created), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetUser: user=%s not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetUser: repository error for user=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// GetByEmail получает пользователя по email
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetUserByEmail: email=%s not found", email)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetUserByEmail: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: GetByEmail - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// validateRegisterRequest проверяет имя, email и роль
func validateRegisterRequest(req *models.RegisterUserRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || len(email) > domain.MaxEmailLength || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	role := domain.UserRole(strings.ToLower(strings.TrimSpace(req.Role)))
	if !domain.IsValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	return nil
}
