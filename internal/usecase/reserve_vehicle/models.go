package reserve_vehicle

import "time"

// Request модель запроса на бронирование транспорта
type Request struct {
	VehicleID string    // ID транспорта
	UserID    string    // ID клиента (разрешённая извне идентичность)
	StartDate time.Time // Дата начала аренды
	EndDate   time.Time // Дата окончания аренды (строго позже начала)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID  string    // Внутренний ключ бронирования
	Code       string    // Короткий код для отображения
	VehicleID  string    // ID транспорта
	UserID     string    // ID клиента
	StartDate  time.Time // Дата начала аренды
	EndDate    time.Time // Дата окончания аренды
	TotalPrice float64   // Полная стоимость, зафиксированная при создании
	CreatedAt  time.Time // Время создания записи
}
