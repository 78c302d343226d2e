package reserve_vehicle

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса.
// Диапазон дат проверяется до любых обращений к хранилищу:
// при ошибке состояние системы не меняется.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.VehicleID) == "" {
		return fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if !req.EndDate.After(req.StartDate) {
		return ErrInvalidRange
	}

	return nil
}
