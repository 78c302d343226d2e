package pricing

import (
	"time"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// categoryMultipliers таблица множителей стоимости по категориям транспорта.
// Велосипеды сдаются со скидкой 20%, грузовики с надбавкой 50%.
var categoryMultipliers = map[domain.VehicleCategory]float64{
	domain.CategoryCar:   1.0,
	domain.CategoryBike:  0.8,
	domain.CategoryTruck: 1.5,
}

// Policy чистая функция расчёта стоимости аренды.
// Не имеет состояния и побочных эффектов, результат детерминирован.
type Policy struct{}

// NewPolicy создает новый экземпляр политики ценообразования
func NewPolicy() *Policy {
	return &Policy{}
}

// Price вычисляет полную стоимость аренды за период [start, end).
// Стоимость: daily_rate * целые_дни * множитель_категории.
// Результат хранится с полной точностью, округление только при отображении.
func (p *Policy) Price(category domain.VehicleCategory, dailyRate float64, start, end time.Time) (float64, error) {
	if dailyRate <= 0 {
		return 0, ErrInvalidRate
	}

	multiplier, ok := categoryMultipliers[category]
	if !ok {
		return 0, ErrUnknownCategory
	}

	days := RentalDays(start, end)
	if days < domain.MinRentalDays {
		return 0, ErrInvalidRange
	}

	return dailyRate * float64(days) * multiplier, nil
}

// Multiplier возвращает множитель стоимости для категории
func (p *Policy) Multiplier(category domain.VehicleCategory) (float64, error) {
	multiplier, ok := categoryMultipliers[category]
	if !ok {
		return 0, ErrUnknownCategory
	}
	return multiplier, nil
}

// RentalDays возвращает длительность аренды в целых днях
func RentalDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
