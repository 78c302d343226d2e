package return_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("return_booking: booking not found")

	// ErrAccessDenied возвращается, когда вернуть бронирование пытается не владелец
	ErrAccessDenied = errors.New("return_booking: booking belongs to another customer")

	// ErrAlreadyReturned возвращается при повторном возврате
	ErrAlreadyReturned = errors.New("return_booking: booking already returned")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("return_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("return_booking: internal error")
)
