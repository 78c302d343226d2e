package vehicle

import (
	"context"
	"sync"
	"time"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// MemoryRepository in-memory реестр транспорта (бэкенд по умолчанию).
// Хранит записи в порядке добавления для воспроизводимого вывода списков.
// Все операции защищены RWMutex, чтение не блокирует другие чтения.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []*domain.Vehicle
	index map[string]int
}

// NewMemoryRepository создает новый пустой in-memory реестр транспорта
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make([]*domain.Vehicle, 0),
		index: make(map[string]int),
	}
}

// Create добавляет транспорт в реестр
func (r *MemoryRepository) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[v.ID]; exists {
		return nil, ErrDuplicateID
	}

	stored := *v
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.index[stored.ID] = len(r.items)
	r.items = append(r.items, &stored)

	result := stored
	return &result, nil
}

// GetByID получает транспорт по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, ErrVehicleNotFound
	}

	result := *r.items[pos]
	return &result, nil
}

// List возвращает весь парк в порядке добавления
func (r *MemoryRepository) List(_ context.Context) ([]*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Vehicle, 0, len(r.items))
	for _, v := range r.items {
		cp := *v
		result = append(result, &cp)
	}
	return result, nil
}

// ListAvailable возвращает только доступный транспорт, сохраняя относительный порядок
func (r *MemoryRepository) ListAvailable(_ context.Context) ([]*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Vehicle, 0)
	for _, v := range r.items {
		if v.Available {
			cp := *v
			result = append(result, &cp)
		}
	}
	return result, nil
}

// SetAvailability меняет флаг доступности транспорта.
// Вызывается только оркестрирующими use case, напрямую флаг никто не трогает.
func (r *MemoryRepository) SetAvailability(_ context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return ErrVehicleNotFound
	}

	r.items[pos].Available = available
	return nil
}

// Reset очищает реестр (для тестов)
func (r *MemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = r.items[:0]
	r.index = make(map[string]int)
}
