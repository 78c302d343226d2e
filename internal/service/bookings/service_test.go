package bookings

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
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type testEnv struct {
	bookings *bookingRepo.MemoryRepository
	users    *userRepo.MemoryRepository
	svc      *Service
}

func newTestEnv() *testEnv {
	bookings := bookingRepo.NewMemoryRepository()
	users := userRepo.NewMemoryRepository()
	return &testEnv{
		bookings: bookings,
		users:    users,
		svc:      NewService(bookings, users, noopLogger{}),
	}
}

func (e *testEnv) addUser(t *testing.T, role domain.UserRole) string {
	t.Helper()
	id := uuid.NewString()
	_, err := e.users.Create(context.Background(), &domain.User{
		ID:    id,
		Name:  "Test User",
		Email: id + "@example.com",
		Role:  role,
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) addBooking(t *testing.T, userID string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := e.bookings.Create(context.Background(), &domain.Booking{
		ID:         id,
		Code:       domain.ShortBookingCode(id),
		VehicleID:  uuid.NewString(),
		UserID:     userID,
		StartDate:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		TotalPrice: 165,
	})
	require.NoError(t, err)
	return id
}

func TestGetByID_Owner(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, domain.RoleCustomer)
	bookingID := env.addBooking(t, owner)

	resp, err := env.svc.GetByID(context.Background(), bookingID, owner)
	require.NoError(t, err)
	assert.Equal(t, bookingID, resp.ID)
	assert.Equal(t, "2026-03-01", resp.StartDate)
	assert.Equal(t, "2026-03-04", resp.EndDate)
	assert.Equal(t, 165.0, resp.TotalPrice)
	assert.Nil(t, resp.ReturnedAt)
}

func TestGetByID_AdminSeesAnyBooking(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, domain.RoleCustomer)
	admin := env.addUser(t, domain.RoleAdmin)
	bookingID := env.addBooking(t, owner)

	resp, err := env.svc.GetByID(context.Background(), bookingID, admin)
	require.NoError(t, err)
	assert.Equal(t, owner, resp.UserID)
}

func TestGetByID_ForeignCustomerDenied(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, domain.RoleCustomer)
	other := env.addUser(t, domain.RoleCustomer)
	bookingID := env.addBooking(t, owner)

	_, err := env.svc.GetByID(context.Background(), bookingID, other)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	env := newTestEnv()
	user := env.addUser(t, domain.RoleCustomer)

	_, err := env.svc.GetByID(context.Background(), uuid.NewString(), user)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_Self(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, domain.RoleCustomer)
	first := env.addBooking(t, owner)
	second := env.addBooking(t, owner)
	env.addBooking(t, env.addUser(t, domain.RoleCustomer))

	resp, err := env.svc.GetUserBookings(context.Background(), owner, owner)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, first, resp.Bookings[0].ID)
	assert.Equal(t, second, resp.Bookings[1].ID)
}

func TestGetUserBookings_ForeignHistoryDenied(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, domain.RoleCustomer)
	other := env.addUser(t, domain.RoleCustomer)
	env.addBooking(t, owner)

	_, err := env.svc.GetUserBookings(context.Background(), owner, other)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserBookings_AdminSeesForeignHistory(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(t, domain.RoleCustomer)
	admin := env.addUser(t, domain.RoleAdmin)
	env.addBooking(t, owner)

	resp, err := env.svc.GetUserBookings(context.Background(), owner, admin)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetAllBookings_AdminOnly(t *testing.T) {
	env := newTestEnv()
	customer := env.addUser(t, domain.RoleCustomer)
	admin := env.addUser(t, domain.RoleAdmin)
	env.addBooking(t, customer)
	env.addBooking(t, customer)

	resp, err := env.svc.GetAllBookings(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	_, err = env.svc.GetAllBookings(context.Background(), customer)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
