package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskvault/task-api/internal/core/domain"
)

// CreateTaskInput carries validated input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description *string
	Completed   bool
}

type TaskService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)
	Update(ctx context.Context, id, userID uuid.UUID, update domain.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// Toggle flips the completed flag and refreshes updated_at.
	Toggle(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)
}
