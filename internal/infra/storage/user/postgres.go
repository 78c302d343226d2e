package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/autovalley/AV-RentalService/internal/domain"
	"github.com/autovalley/AV-RentalService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// PostgresRepository хранилище пользователей поверх PostgreSQL.
// Уникальность email обеспечивается уникальным индексом по lower(email).
type PostgresRepository struct {
	db DBExecutor
}

// NewPostgresRepository создает новый экземпляр репозитория пользователей
func NewPostgresRepository(db DBExecutor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var userColumns = []string{
	"id",
	"name",
	"email",
	"role",
	"created_at",
}

// Create добавляет пользователя
func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := psqlbuilder.Insert("users").
		Columns("id", "name", "email", "role").
		Values(u.ID, u.Name, strings.TrimSpace(u.Email), u.Role).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	stored := *u
	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	stored.CreatedAt = createdAt.Time

	return &stored, nil
}

// GetByID получает пользователя по ID
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByEmail получает пользователя по email (без учёта регистра)
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Expr("lower(email) = lower(?)", strings.TrimSpace(email)))
}

func (r *PostgresRepository) getOne(ctx context.Context, where interface{}) (*domain.User, error) {
	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan user: %v", ErrScanRow, err)
	}

	u.CreatedAt = createdAt.Time
	return &u, nil
}
