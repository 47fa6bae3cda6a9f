package handler

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskvault/task-api/internal/core/domain"
)

// --- Request types ---

// createTaskRequest carries the body of POST /api/tasks. The whitespace-only
// title rule cannot be expressed as a validator tag, so the service layer
// re-checks the trimmed title.
type createTaskRequest struct {
	Title       string  `json:"title"       validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Completed   bool    `json:"completed"`
}

// updateTaskRequest carries the body of PATCH /api/tasks/:id. Every field is
// a pointer so that an absent field can be told apart from a zero value.
type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Completed   *bool   `json:"completed"`
}

func (r updateTaskRequest) toUpdate() domain.TaskUpdate {
	return domain.TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// --- Response types ---

type taskResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTaskResponses(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}
