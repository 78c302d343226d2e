package return_booking

import "time"

// Request модель запроса на возврат бронирования
type Request struct {
	BookingID string // Внутренний ключ бронирования
	UserID    string // ID клиента, запрашивающего возврат
}

// Response модель ответа с возвращённым бронированием
type Response struct {
	BookingID  string     // Внутренний ключ бронирования
	Code       string     // Короткий код
	VehicleID  string     // ID транспорта, снова доступного для аренды
	ReturnedAt *time.Time // Время возврата
}
