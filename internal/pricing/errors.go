package pricing

import "errors"

var (
	// ErrInvalidRange возвращается, когда дата окончания не позже даты начала
	ErrInvalidRange = errors.New("pricing: end date must be after start date")

	// ErrUnknownCategory возвращается при неизвестной категории транспорта
	ErrUnknownCategory = errors.New("pricing: unknown vehicle category")

	// ErrInvalidRate возвращается при неположительной дневной ставке
	ErrInvalidRate = errors.New("pricing: daily rate must be positive")
)
