package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskvault/task-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
//
// Every per-task operation takes the owning user's id alongside the task id;
// a row that exists but belongs to another user is reported as
// domain.ErrTaskNotFound, indistinguishable from a row that never existed.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)
	// ListByUser returns the user's tasks ordered by created_at descending.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	// Update persists the task's mutable columns and updated_at atomically.
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
