package vehicles

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда транспорт не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrAccessDenied возвращается, когда добавить транспорт пытается не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (неизвестная категория, год вне допустимого диапазона, неположительная ставка)
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
