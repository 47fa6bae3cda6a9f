package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskvault/task-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*domain.User, error)
	// Login returns a signed access token and the authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
