package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TitleMaxLen       = 200
	DescriptionMaxLen = 2000
)

var ErrTaskNotFound = errors.New("task not found")

// Task is a single todo item owned by exactly one user.
type Task struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskUpdate carries a partial update. Nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Empty reports whether the update would change nothing.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Completed == nil
}
