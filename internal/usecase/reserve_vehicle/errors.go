package reserve_vehicle

import "errors"

var (
	// ErrInvalidRange возвращается, когда дата окончания не позже даты начала
	ErrInvalidRange = errors.New("reserve_vehicle: end date must be after start date")

	// ErrVehicleNotFound возвращается, когда транспорт не найден
	ErrVehicleNotFound = errors.New("reserve_vehicle: vehicle not found")

	// ErrVehicleNotAvailable возвращается, когда транспорт уже забронирован
	ErrVehicleNotAvailable = errors.New("reserve_vehicle: vehicle is already booked")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("reserve_vehicle: user not found")

	// ErrAccessDenied возвращается, когда бронировать пытается не клиент
	ErrAccessDenied = errors.New("reserve_vehicle: only customers can reserve vehicles")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_vehicle: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_vehicle: internal error")
)
