package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/user"
	"github.com/autovalley/AV-RentalService/internal/service/users/models"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestService() *Service {
	return NewService(userRepo.NewMemoryRepository(), noopLogger{})
}

func TestRegister_Success(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  "customer",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "customer", resp.Role)

	got, err := svc.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  "customer",
	})
	require.NoError(t, err)

	// Регистр email не делает адрес другим
	_, err = svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:  "Another Alice",
		Email: "Alice@Example.com",
		Role:  "customer",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		req  *models.RegisterUserRequest
	}{
		{"empty name", &models.RegisterUserRequest{Name: " ", Email: "a@b.com", Role: "customer"}},
		{"empty email", &models.RegisterUserRequest{Name: "Alice", Email: "", Role: "customer"}},
		{"email without at", &models.RegisterUserRequest{Name: "Alice", Email: "alice.example.com", Role: "customer"}},
		{"unknown role", &models.RegisterUserRequest{Name: "Alice", Email: "a@b.com", Role: "manager"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_NormalizesRole(t *testing.T) {
	svc := newTestService()

	resp, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:  "Operator",
		Email: "op@example.com",
		Role:  " Admin ",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByEmail(t *testing.T) {
	svc := newTestService()

	created, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  "customer",
	})
	require.NoError(t, err)

	got, err := svc.GetByEmail(context.Background(), "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
