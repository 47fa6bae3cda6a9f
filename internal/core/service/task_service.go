package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskvault/task-api/internal/core/domain"
	"github.com/taskvault/task-api/internal/core/ports"
)

// TaskService implements task CRUD scoped to the owning user.
type TaskService struct {
	tasks  ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, logger: logger}
}

// normalizeTitle trims the title and enforces the 1-200 character rule.
func normalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", domain.NewValidationError("Title cannot be empty or whitespace-only")
	}
	if utf8.RuneCountInString(trimmed) > domain.TitleMaxLen {
		return "", domain.NewValidationError("Title must be at most 200 characters")
	}
	return trimmed, nil
}

func validateDescription(description *string) error {
	if description != nil && utf8.RuneCountInString(*description) > domain.DescriptionMaxLen {
		return domain.NewValidationError("Description must be at most 2000 characters")
	}
	return nil
}

// Create inserts a new task owned by userID.
func (s *TaskService) Create(ctx context.Context, userID uuid.UUID, input ports.CreateTaskInput) (*domain.Task, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: input.Description,
		Completed:   input.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Str("task_id", task.ID.String()).Str("user_id", userID.String()).Msg("task created")
	return task, nil
}

// List returns the user's tasks, newest first. No tasks is an empty slice.
func (s *TaskService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

// Get returns the task only when it exists and belongs to userID.
func (s *TaskService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	return s.tasks.FindByIDAndUser(ctx, id, userID)
}

// Update applies the non-nil fields of update and refreshes updated_at.
// A title, when present, goes through the same trim rules as on create.
func (s *TaskService) Update(ctx context.Context, id, userID uuid.UUID, update domain.TaskUpdate) (*domain.Task, error) {
	task, err := s.tasks.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title, err := normalizeTitle(*update.Title)
		if err != nil {
			return nil, err
		}
		task.Title = title
	}
	if update.Description != nil {
		if err := validateDescription(update.Description); err != nil {
			return nil, err
		}
		task.Description = update.Description
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("task_id", id.String()).Msg("failed to update task")
		return nil, err
	}
	return task, nil
}

// Delete removes the task. Deleting an already-deleted task reports
// domain.ErrTaskNotFound; the operation is deliberately not idempotent.
func (s *TaskService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.tasks.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.logger.Info().Str("task_id", id.String()).Str("user_id", userID.String()).Msg("task deleted")
	return nil
}

// Toggle flips the completed flag and refreshes updated_at.
func (s *TaskService) Toggle(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("task_id", id.String()).Msg("failed to toggle task")
		return nil, err
	}
	return task, nil
}
