package vehicle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

func newTestVehicle(id string, available bool) *domain.Vehicle {
	return &domain.Vehicle{
		ID:        id,
		Category:  domain.CategoryCar,
		Brand:     "Toyota",
		Model:     "Camry",
		Year:      2023,
		DailyRate: 55,
		Available: available,
	}
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestVehicle("v1", true))
	require.NoError(t, err)
	assert.Equal(t, "v1", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Toyota", got.Brand)
	assert.True(t, got.Available)
}

func TestMemoryRepository_GetNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestMemoryRepository_DuplicateID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestVehicle("v1", true))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestVehicle("v1", true))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestMemoryRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	for _, id := range []string{"v1", "v2", "v3"} {
		_, err := repo.Create(ctx, newTestVehicle(id, true))
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "v1", list[0].ID)
	assert.Equal(t, "v2", list[1].ID)
	assert.Equal(t, "v3", list[2].ID)
}

func TestMemoryRepository_ListAvailableFilters(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestVehicle("v1", true))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestVehicle("v2", false))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestVehicle("v3", true))
	require.NoError(t, err)

	available, err := repo.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "v1", available[0].ID)
	assert.Equal(t, "v3", available[1].ID)
}

func TestMemoryRepository_SetAvailability(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestVehicle("v1", true))
	require.NoError(t, err)

	require.NoError(t, repo.SetAvailability(ctx, "v1", false))

	got, err := repo.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.False(t, got.Available)

	err = repo.SetAvailability(ctx, "missing", true)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestVehicle("v1", true))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "v1")
	require.NoError(t, err)
	got.Available = false

	// Мутация полученной копии не затрагивает хранилище
	again, err := repo.GetByID(ctx, "v1")
	require.NoError(t, err)
	assert.True(t, again.Available)
}
