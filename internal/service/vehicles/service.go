package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/autovalley/AV-RentalService/internal/domain"
	userRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/user"
	vehicleRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/vehicle"
	"github.com/autovalley/AV-RentalService/internal/service/vehicles/models"
)

// YearRange настраиваемый диапазон допустимых годов выпуска
type YearRange struct {
	Min int
	Max int
}

// Service сервис для работы с реестром транспорта
type Service struct {
	vehicleRepo VehicleRepository
	userRepo    UserRepository
	years       YearRange
	logger      Logger
}

// NewService создает новый экземпляр сервиса транспорта
func NewService(
	vehicleRepo VehicleRepository,
	userRepo UserRepository,
	years YearRange,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		years:       years,
		logger:      logger,
	}
}

// Create добавляет транспорт в реестр.
// Доступно только администраторам; новый транспорт сразу доступен для аренды.
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("CreateVehicle: admin=%s, category=%s, brand=%s, model=%s, year=%d, rate=%.2f",
		req.AdminID, req.Category, req.Brand, req.Model, req.Year, req.DailyRate)

	if err := s.checkAdminAccess(ctx, req.AdminID); err != nil {
		return nil, err
	}

	if err := validateCreateRequest(req, s.years); err != nil {
		s.logger.Warn("CreateVehicle: validation failed: %v", err)
		return nil, err
	}

	vehicle := &domain.Vehicle{
		ID:        uuid.NewString(),
		Category:  domain.VehicleCategory(strings.ToLower(strings.TrimSpace(req.Category))),
		Brand:     strings.TrimSpace(req.Brand),
		Model:     strings.TrimSpace(req.Model),
		Year:      req.Year,
		DailyRate: req.DailyRate,
		Available: true,
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error("CreateVehicle: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateVehicle: vehicle created, id=%s", created.ID)
	return models.FromDomainVehicle(created), nil
}

// GetByID получает транспорт по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("GetVehicle: vehicle=%s not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetVehicle: repository error for vehicle=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainVehicle(vehicle), nil
}

// List возвращает весь парк в порядке добавления
func (s *Service) List(ctx context.Context) (*models.VehicleListResponse, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListVehicles: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListVehicles: fetched %d vehicles", len(vehicles))
	return models.FromDomainVehicleList(vehicles), nil
}

// ListAvailable возвращает только доступный транспорт, сохраняя относительный порядок
func (s *Service) ListAvailable(ctx context.Context) (*models.VehicleListResponse, error) {
	vehicles, err := s.vehicleRepo.ListAvailable(ctx)
	if err != nil {
		s.logger.Error("ListAvailableVehicles: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAvailableVehicles: fetched %d vehicles", len(vehicles))
	return models.FromDomainVehicleList(vehicles), nil
}

// checkAdminAccess проверяет, что операцию выполняет администратор
func (s *Service) checkAdminAccess(ctx context.Context, adminID string) error {
	user, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user=%s not found", adminID)
			return ErrUserNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get user=%s: %v", adminID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		s.logger.Warn("checkAdminAccess: user=%s has role=%s, admin required", adminID, user.Role)
		return ErrAccessDenied
	}
	return nil
}

// validateCreateRequest проверяет категорию, год и дневную ставку
func validateCreateRequest(req *models.CreateVehicleRequest, years YearRange) error {
	category := domain.VehicleCategory(strings.ToLower(strings.TrimSpace(req.Category)))
	if !domain.IsValidCategory(category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}

	if strings.TrimSpace(req.Brand) == "" || len(req.Brand) > domain.MaxBrandLength {
		return fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Model) == "" || len(req.Model) > domain.MaxModelLength {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}

	if req.Year < years.Min || req.Year > years.Max {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, years.Min, years.Max)
	}

	if req.DailyRate <= 0 {
		return fmt.Errorf("%w: daily rate must be positive", ErrInvalidInput)
	}

	return nil
}
