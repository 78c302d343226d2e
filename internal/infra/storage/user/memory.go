package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

// MemoryRepository in-memory хранилище пользователей (бэкенд по умолчанию)
type MemoryRepository struct {
	mu      sync.RWMutex
	items   []*domain.User
	byID    map[string]int
	byEmail map[string]int
}

// NewMemoryRepository создает новое пустое in-memory хранилище пользователей
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items:   make([]*domain.User, 0),
		byID:    make(map[string]int),
		byEmail: make(map[string]int),
	}
}

// Create добавляет пользователя; email сравнивается без учёта регистра
func (r *MemoryRepository) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID]; exists {
		return nil, ErrDuplicateID
	}

	emailKey := normalizeEmail(u.Email)
	if _, exists := r.byEmail[emailKey]; exists {
		return nil, ErrEmailTaken
	}

	stored := *u
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	pos := len(r.items)
	r.byID[stored.ID] = pos
	r.byEmail[emailKey] = pos
	r.items = append(r.items, &stored)

	result := stored
	return &result, nil
}

// GetByID получает пользователя по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	result := *r.items[pos]
	return &result, nil
}

// GetByEmail получает пользователя по email
func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}

	result := *r.items[pos]
	return &result, nil
}

// Reset очищает хранилище (для тестов)
func (r *MemoryRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = r.items[:0]
	r.byID = make(map[string]int)
	r.byEmail = make(map[string]int)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
