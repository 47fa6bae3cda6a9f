package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskvault/task-api/internal/api/metrics"
	"github.com/taskvault/task-api/internal/api/middleware"
	"github.com/taskvault/task-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. Every route runs
// behind the Auth middleware, so the owning user is always on the context.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// taskID parses the :id path parameter. A malformed id can never match a
// stored task, so it is reported as not-found rather than a bad request.
func taskID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusNotFound, "Task with id '"+c.Param("id")+"' not found")
	}
	return id, nil
}

// Create handles POST /api/tasks.
//
// @Summary      Create a new task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  problemDetails
// @Failure      401   {object}  problemDetails
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := middleware.UserFromContext(c)
	task, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// List handles GET /api/tasks. Tasks are ordered newest first; a user with
// no tasks receives an empty array, never null.
//
// @Summary      List the authenticated user's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   taskResponse
// @Failure      401  {object}  problemDetails
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	user := middleware.UserFromContext(c)
	tasks, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponses(tasks))
}

// Get handles GET /api/tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id (UUID)"
// @Success      200  {object}  taskResponse
// @Failure      404  {object}  problemDetails
// @Router       /api/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	user := middleware.UserFromContext(c)
	task, err := h.service.Get(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PATCH /api/tasks/:id with partial-update semantics: only
// fields present in the body change, everything else is left untouched.
//
// @Summary      Update a task (partial)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id (UUID)"
// @Param        body  body      updateTaskRequest  true  "Fields to update"
// @Success      200   {object}  taskResponse
// @Failure      400   {object}  problemDetails
// @Failure      404   {object}  problemDetails
// @Router       /api/tasks/{id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := middleware.UserFromContext(c)
	task, err := h.service.Update(c.Request().Context(), id, user.ID, req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /api/tasks/:id. Deletion is not idempotent: a second
// delete of the same id reports not-found.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id (UUID)"
// @Success      204
// @Failure      404  {object}  problemDetails
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	user := middleware.UserFromContext(c)
	if err := h.service.Delete(c.Request().Context(), id, user.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Toggle handles POST /api/tasks/:id/toggle — flips the completed flag.
//
// @Summary      Toggle a task's completion status
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id (UUID)"
// @Success      200  {object}  taskResponse
// @Failure      404  {object}  problemDetails
// @Router       /api/tasks/{id}/toggle [post]
func (h *TaskHandler) Toggle(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}

	user := middleware.UserFromContext(c)
	task, err := h.service.Toggle(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}

	if task.Completed {
		metrics.TasksCompletedTotal.Inc()
	}
	return c.JSON(http.StatusOK, toTaskResponse(task))
}
