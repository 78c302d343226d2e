package booking

import (
	"context"
	"sync"
	"time"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// MemoryRepository in-memory журнал бронирований (бэкенд по умолчанию).
// Записи хранятся в порядке добавления, удаление не предусмотрено.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []*domain.Booking
	index map[string]int
}

// NewMemoryRepository создает новый пустой in-memory журнал бронирований
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make([]*domain.Booking, 0),
		index: make(map[string]int),
	}
}

// Create добавляет запись о бронировании в журнал
func (r *MemoryRepository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[b.ID]; exists {
		return nil, ErrDuplicateID
	}

	stored := *b
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.index[stored.ID] = len(r.items)
	r.items = append(r.items, &stored)

	result := stored
	return &result, nil
}

// GetByID получает бронирование по внутреннему ключу
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	result := *r.items[pos]
	return &result, nil
}

// GetByUserID возвращает бронирования пользователя в порядке добавления
func (r *MemoryRepository) GetByUserID(_ context.Context, userID string) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.items {
		if b.UserID == userID {
			cp := *b
			result = append(result, &cp)
		}
	}
	return result, nil
}

// List возвращает все бронирования в порядке добавления (операторский обзор)
func (r *MemoryRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0, len(r.items))
	for _, b := range r.items {
		cp := *b
		result = append(result, &cp)
	}
	return result, nil
}

// MarkReturned помечает бронирование возвращённым.
// Флаг переходит из false в true ровно один раз,
// повторная попытка завершается ErrAlreadyReturned.
func (r *MemoryRepository) MarkReturned(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return ErrBookingNotFound
	}

	b := r.items[pos]
	if b.Returned {
		return ErrAlreadyReturned
	}

	now := time.Now()
	b.Returned = true
	b.ReturnedAt = &now
	return nil
}

// Reset очищает журнал (для тестов)
func (r *MemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = r.items[:0]
	r.index = make(map[string]int)
}
