package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskvault/task-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Lookup methods return domain.ErrUserNotFound when no row matches.
type UserRepository interface {
	// FindByID retrieves a user by primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// FindByEmail retrieves a user by email, compared case-insensitively.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByUsername retrieves a user by username, compared case-sensitively.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create inserts a new user. A unique-constraint collision surfaces as
	// domain.ErrEmailTaken or domain.ErrUsernameTaken.
	Create(ctx context.Context, user *domain.User) error
}
