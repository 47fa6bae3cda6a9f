package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskvault/task-api/internal/core/domain"
)

// UserRepository is the pgx-backed implementation of ports.UserRepository.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = "id, email, username, password_hash, created_at, updated_at"

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: scan user: %v", domain.ErrDatabase, err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

// FindByEmail matches the email ignoring case, backed by the unique index
// on LOWER(email).
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE LOWER(email) = LOWER($1)", email)
	return scanUser(row)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1", username)
	return scanUser(row)
}

// Create inserts the user. Concurrent registrations can slip past the
// service-level uniqueness checks, so constraint collisions are classified
// here as the same domain errors.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err, "users_email_lower_key"):
			return domain.ErrEmailTaken
		case isUniqueViolation(err, "users_username_key"):
			return domain.ErrUsernameTaken
		case isCheckViolation(err):
			return domain.NewValidationError("Invalid email or username format")
		}
		return fmt.Errorf("%w: insert user: %v", domain.ErrDatabase, err)
	}
	return nil
}
