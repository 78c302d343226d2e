package reserve_vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/autovalley/AV-RentalService/internal/domain"
	userRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/user"
	vehicleRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/vehicle"
)

// UseCase use case бронирования транспорта.
// Проверка доступности, переключение флага и запись в журнал выполняются
// как одна критическая секция под замком транспорта (см. VehicleLocker).
type UseCase struct {
	vehicles VehicleRegistry
	ledger   BookingLedger
	users    UserRepository
	pricing  PricingPolicy
	locker   VehicleLocker
	metrics  MetricsCollector
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vehicles VehicleRegistry,
	ledger BookingLedger,
	users UserRepository,
	pricing PricingPolicy,
	locker VehicleLocker,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		vehicles: vehicles,
		ledger:   ledger,
		users:    users,
		pricing:  pricing,
		locker:   locker,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет бронирование транспорта.
// Порядок шагов: валидация диапазона, проверка клиента, затем под замком
// транспорта — проверка доступности, расчёт цены, переключение флага и
// добавление записи в журнал. Любая ошибка до записи в журнал не оставляет
// флаг переключённым.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveVehicle: vehicle=%s, user=%s, period=%s to %s",
		req.VehicleID, req.UserID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных (диапазон дат проверяется до любых мутаций)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveVehicle: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем клиента: бронирования держат только покупатели
	user, err := uc.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("ReserveVehicle: user=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("ReserveVehicle: failed to get user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.IsCustomer() {
		uc.logger.Warn("ReserveVehicle: user=%s has role=%s, only customers may reserve", req.UserID, user.Role)
		return nil, ErrAccessDenied
	}

	var result *domain.Booking

	// 3. Критическая секция по транспорту: проверка доступности, переключение
	// флага и запись в журнал никогда не чередуются с другой мутацией того же
	// транспорта.
	err = uc.locker.Do(ctx, req.VehicleID, func(lockCtx context.Context) error {
		vehicle, err := uc.vehicles.GetByID(lockCtx, req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				uc.logger.Warn("ReserveVehicle: vehicle=%s not found", req.VehicleID)
				return ErrVehicleNotFound
			}
			uc.logger.Error("ReserveVehicle: failed to get vehicle=%s: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
		}

		if !vehicle.IsAvailable() {
			uc.logger.Warn("ReserveVehicle: vehicle=%s is already booked", req.VehicleID)
			return ErrVehicleNotAvailable
		}

		// Цена фиксируется на момент бронирования и больше не пересчитывается
		totalPrice, err := uc.pricing.Price(vehicle.Category, vehicle.DailyRate, req.StartDate, req.EndDate)
		if err != nil {
			uc.logger.Warn("ReserveVehicle: pricing failed for vehicle=%s: %v", req.VehicleID, err)
			return fmt.Errorf("%w: pricing: %v", ErrInvalidInput, err)
		}

		if err := uc.vehicles.SetAvailability(lockCtx, vehicle.ID, false); err != nil {
			uc.logger.Error("ReserveVehicle: failed to flip availability for vehicle=%s: %v", vehicle.ID, err)
			return fmt.Errorf("%w: failed to flip availability: %v", ErrInternal, err)
		}

		bookingID := uuid.NewString()
		booking := &domain.Booking{
			ID:         bookingID,
			Code:       domain.ShortBookingCode(bookingID),
			VehicleID:  vehicle.ID,
			UserID:     user.ID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			TotalPrice: totalPrice,
			Returned:   false,
		}

		created, err := uc.ledger.Create(lockCtx, booking)
		if err != nil {
			// Компенсация: флаг не должен остаться переключённым без записи в журнале
			if restoreErr := uc.vehicles.SetAvailability(lockCtx, vehicle.ID, true); restoreErr != nil {
				uc.logger.Error("ReserveVehicle: failed to restore availability for vehicle=%s: %v",
					vehicle.ID, restoreErr)
			}
			uc.logger.Error("ReserveVehicle: failed to create booking for vehicle=%s: %v", vehicle.ID, err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncReservations()
	}

	uc.logger.Info("ReserveVehicle: booking created, id=%s, code=%s, total=%.2f",
		result.ID, result.Code, result.TotalPrice)

	return &Response{
		BookingID:  result.ID,
		Code:       result.Code,
		VehicleID:  result.VehicleID,
		UserID:     result.UserID,
		StartDate:  result.StartDate,
		EndDate:    result.EndDate,
		TotalPrice: result.TotalPrice,
		CreatedAt:  result.CreatedAt,
	}, nil
}
