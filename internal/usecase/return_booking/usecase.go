package return_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/booking"
	vehicleRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/vehicle"
)

// UseCase use case возврата бронирования.
// Переключение флага доступности и отметка о возврате выполняются как одна
// критическая секция под замком транспорта: между этими двумя шагами отказов
// по построению нет (in-memory журнал после всех проверок не отказывает).
type UseCase struct {
	vehicles VehicleRegistry
	ledger   BookingLedger
	locker   VehicleLocker
	metrics  MetricsCollector
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vehicles VehicleRegistry,
	ledger BookingLedger,
	locker VehicleLocker,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		vehicles: vehicles,
		ledger:   ledger,
		locker:   locker,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет возврат бронирования.
// Порядок шагов: поиск бронирования, проверка владельца, проверка повторного
// возврата, затем под замком транспорта — возврат флага и отметка в журнале.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReturnBooking: booking=%s, user=%s", req.BookingID, req.UserID)

	if strings.TrimSpace(req.BookingID) == "" || strings.TrimSpace(req.UserID) == "" {
		return nil, fmt.Errorf("%w: bookingID and userID are required", ErrInvalidInput)
	}

	// 1. Ищем бронирование (вне замка: владелец и транспорт неизменяемы)
	booking, err := uc.ledger.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ReturnBooking: booking=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ReturnBooking: failed to get booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Вернуть бронирование может только его владелец
	if !booking.BelongsTo(req.UserID) {
		uc.logger.Warn("ReturnBooking: booking=%s belongs to user=%s, requested by user=%s",
			req.BookingID, booking.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	var response *Response

	// 3. Критическая секция по транспорту
	err = uc.locker.Do(ctx, booking.VehicleID, func(lockCtx context.Context) error {
		// Перечитываем под замком: параллельный возврат мог уже пройти
		current, err := uc.ledger.GetByID(lockCtx, req.BookingID)
		if err != nil {
			uc.logger.Error("ReturnBooking: failed to re-read booking=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to re-read booking: %v", ErrInternal, err)
		}

		if !current.CanBeReturned() {
			uc.logger.Warn("ReturnBooking: booking=%s already returned", req.BookingID)
			return ErrAlreadyReturned
		}

		if err := uc.vehicles.SetAvailability(lockCtx, current.VehicleID, true); err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				// Журнал ссылается ровно на один существующий транспорт,
				// сюда можно попасть только при повреждении хранилища
				uc.logger.Error("ReturnBooking: ledger references unknown vehicle=%s", current.VehicleID)
			}
			return fmt.Errorf("%w: failed to restore availability: %v", ErrInternal, err)
		}

		if err := uc.ledger.MarkReturned(lockCtx, current.ID); err != nil {
			uc.logger.Error("ReturnBooking: failed to mark booking=%s returned: %v", current.ID, err)
			return fmt.Errorf("%w: failed to mark returned: %v", ErrInternal, err)
		}

		returned, err := uc.ledger.GetByID(lockCtx, current.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to read returned booking: %v", ErrInternal, err)
		}

		response = &Response{
			BookingID:  returned.ID,
			Code:       returned.Code,
			VehicleID:  returned.VehicleID,
			ReturnedAt: returned.ReturnedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncReturns()
	}

	uc.logger.Info("ReturnBooking: booking=%s returned, vehicle=%s available again",
		response.BookingID, response.VehicleID)
	return response, nil
}
