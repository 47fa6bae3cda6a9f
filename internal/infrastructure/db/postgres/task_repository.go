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

// TaskRepository is the pgx-backed implementation of ports.TaskRepository.
// All queries carry the owning user's id, so a task belonging to another
// user is indistinguishable from one that does not exist.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = "id, user_id, title, description, completed, created_at, updated_at"

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("%w: scan task: %v", domain.ErrDatabase, err)
	}
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO tasks (id, user_id, title, description, completed, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		task.ID, task.UserID, task.Title, task.Description, task.Completed, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return domain.NewValidationError("Title cannot be empty or whitespace-only")
		}
		return fmt.Errorf("%w: insert task: %v", domain.ErrDatabase, err)
	}
	return nil
}

func (r *TaskRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1 AND user_id = $2", id, userID)
	return scanTask(row)
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list tasks: %v", domain.ErrDatabase, err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list tasks: %v", domain.ErrDatabase, err)
	}
	return tasks, nil
}

// Update writes the mutable columns in a single statement; the row either
// changes entirely or not at all.
func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tasks SET title = $1, description = $2, completed = $3, updated_at = $4
		 WHERE id = $5 AND user_id = $6`,
		task.Title, task.Description, task.Completed, task.UpdatedAt, task.ID, task.UserID)
	if err != nil {
		if isCheckViolation(err) {
			return domain.NewValidationError("Title cannot be empty or whitespace-only")
		}
		return fmt.Errorf("%w: update task: %v", domain.ErrDatabase, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		"DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("%w: delete task: %v", domain.ErrDatabase, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
