package reserve_vehicle

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovalley/AV-RentalService/internal/domain"
	bookingRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/booking"
	userRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/user"
	vehicleRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/vehicle"
	"github.com/autovalley/AV-RentalService/internal/pricing"
	"github.com/autovalley/AV-RentalService/pkg/vehiclelock"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type testEnv struct {
	vehicles *vehicleRepo.MemoryRepository
	bookings *bookingRepo.MemoryRepository
	users    *userRepo.MemoryRepository
	useCase  *UseCase
}

func newTestEnv() *testEnv {
	vehicles := vehicleRepo.NewMemoryRepository()
	bookings := bookingRepo.NewMemoryRepository()
	users := userRepo.NewMemoryRepository()

	uc := NewUseCase(
		vehicles,
		bookings,
		users,
		pricing.NewPolicy(),
		vehiclelock.New(),
		nil,
		noopLogger{},
	)

	return &testEnv{
		vehicles: vehicles,
		bookings: bookings,
		users:    users,
		useCase:  uc,
	}
}

func (e *testEnv) addCustomer(t *testing.T) string {
	t.Helper()
	id := uuid.NewString()
	_, err := e.users.Create(context.Background(), &domain.User{
		ID:    id,
		Name:  "Alice",
		Email: id + "@example.com",
		Role:  domain.RoleCustomer,
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) addAdmin(t *testing.T) string {
	t.Helper()
	id := uuid.NewString()
	_, err := e.users.Create(context.Background(), &domain.User{
		ID:    id,
		Name:  "Operator",
		Email: id + "@example.com",
		Role:  domain.RoleAdmin,
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) addVehicle(t *testing.T, category domain.VehicleCategory, rate float64) string {
	t.Helper()
	id := uuid.NewString()
	_, err := e.vehicles.Create(context.Background(), &domain.Vehicle{
		ID:        id,
		Category:  category,
		Brand:     "Toyota",
		Model:     "Camry",
		Year:      2023,
		DailyRate: rate,
		Available: true,
	})
	require.NoError(t, err)
	return id
}

func testDate(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestExecute_Success(t *testing.T) {
	env := newTestEnv()
	userID := env.addCustomer(t)
	vehicleID := env.addVehicle(t, domain.CategoryCar, 55)

	resp, err := env.useCase.Execute(context.Background(), &Request{
		VehicleID: vehicleID,
		UserID:    userID,
		StartDate: testDate(1),
		EndDate:   testDate(4),
	})
	require.NoError(t, err)

	// 55 * 3 дня * 1.0
	assert.Equal(t, 165.0, resp.TotalPrice)
	assert.Equal(t, vehicleID, resp.VehicleID)
	assert.Equal(t, userID, resp.UserID)
	assert.NotEmpty(t, resp.BookingID)
	assert.Len(t, resp.Code, domain.BookingCodeLength)

	// Транспорт помечен занятым
	v, err := env.vehicles.GetByID(context.Background(), vehicleID)
	require.NoError(t, err)
	assert.False(t, v.Available)

	// Запись появилась в журнале
	b, err := env.bookings.GetByID(context.Background(), resp.BookingID)
	require.NoError(t, err)
	assert.False(t, b.Returned)
	assert.Equal(t, resp.Code, b.Code)
}

func TestExecute_BikeDiscount(t *testing.T) {
	env := newTestEnv()
	userID := env.addCustomer(t)
	vehicleID := env.addVehicle(t, domain.CategoryBike, 25)

	resp, err := env.useCase.Execute(context.Background(), &Request{
		VehicleID: vehicleID,
		UserID:    userID,
		StartDate: testDate(1),
		EndDate:   testDate(3),
	})
	require.NoError(t, err)

	// 25 * 2 дня * 0.8
	assert.Equal(t, 40.0, resp.TotalPrice)
}

func TestExecute_InvalidRange(t *testing.T) {
	env := newTestEnv()
	userID := env.addCustomer(t)
	vehicleID := env.addVehicle(t, domain.CategoryCar, 55)

	// Диапазон отклоняется до любых мутаций
	_, err := env.useCase.Execute(context.Background(), &Request{
		VehicleID: vehicleID,
		UserID:    userID,
		StartDate: testDate(4),
		EndDate:   testDate(1),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = env.useCase.Execute(context.Background(), &Request{
		VehicleID: vehicleID,
		UserID:    userID,
		StartDate: testDate(4),
		EndDate:   testDate(4),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)

	// Транспорт остался доступным, журнал пуст
	v, err := env.vehicles.GetByID(context.Background(), vehicleID)
	require.NoError(t, err)
	assert.True(t, v.Available)

	list, err := env.bookings.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	env := newTestEnv()
	userID := env.addCustomer(t)

	_, err := env.useCase.Execute(context.Background(), &Request{
		VehicleID: uuid.NewString(),
		UserID:    userID,
		StartDate: testDate(1),
		EndDate:   testDate(2),
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_UserNotFound(t *testing.T) {
	env := newTestEnv()
	vehicleID := env.addVehicle(t, domain.CategoryCar, 55)

	_, err := env.useCase.Execute(context.Background(), &Request{
		VehicleID: vehicleID,
		UserID:    uuid.NewString(),
		StartDate: testDate(1),
		EndDate:   testDate(2),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_AdminCannotReserve(t *testing.T) {
	env := newTestEnv()
	adminID := env.addAdmin(t)
	vehicleID := env.addVehicle(t, domain.CategoryCar, 55)

	_, err := env.useCase.Execute(context.Background(), &Request{
		VehicleID: vehicleID,
		UserID:    adminID,
		StartDate: testDate(1),
		EndDate:   testDate(2),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	v, err := env.vehicles.GetByID(context.Background(), vehicleID)
	require.NoError(t, err)
	assert.True(t, v.Available)
}

func TestExecute_AlreadyBooked(t *testing.T) {
	env := newTestEnv()
	firstUser := env.addCustomer(t)
	secondUser := env.addCustomer(t)
	vehicleID := env.addVehicle(t, domain.CategoryCar, 55)

	_, err := env.useCase.Execute(context.Background(), &Request{
		VehicleID: vehicleID,
		UserID:    firstUser,
		StartDate: testDate(1),
		EndDate:   testDate(4),
	})
	require.NoError(t, err)

	// Повторная попытка отклоняется, журнал не растёт
	_, err = env.useCase.Execute(context.Background(), &Request{
		VehicleID: vehicleID,
		UserID:    secondUser,
		StartDate: testDate(10),
		EndDate:   testDate(12),
	})
	assert.ErrorIs(t, err, ErrVehicleNotAvailable)

	list, err := env.bookings.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestExecute_ConcurrentReservesSingleWinner(t *testing.T) {
	env := newTestEnv()
	vehicleID := env.addVehicle(t, domain.CategoryCar, 55)

	const attempts = 20
	users := make([]string, attempts)
	for i := range users {
		users[i] = env.addCustomer(t)
	}

	errCh := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		go func(userID string) {
			_, err := env.useCase.Execute(context.Background(), &Request{
				VehicleID: vehicleID,
				UserID:    userID,
				StartDate: testDate(1),
				EndDate:   testDate(2),
			})
			errCh <- err
		}(users[i])
	}

	succeeded := 0
	for i := 0; i < attempts; i++ {
		if err := <-errCh; err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrVehicleNotAvailable)
		}
	}

	// Ровно один победитель, одна запись в журнале
	assert.Equal(t, 1, succeeded)

	list, err := env.bookings.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
