package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskvault/task-api/internal/api/middleware"
	"github.com/taskvault/task-api/internal/core/domain"
	"github.com/taskvault/task-api/internal/core/ports"
)

type stubTaskService struct {
	createFn func(ctx context.Context, userID uuid.UUID, input ports.CreateTaskInput) (*domain.Task, error)
	listFn   func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	getFn    func(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)
	updateFn func(ctx context.Context, id, userID uuid.UUID, update domain.TaskUpdate) (*domain.Task, error)
	deleteFn func(ctx context.Context, id, userID uuid.UUID) error
	toggleFn func(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)
}

func (s *stubTaskService) Create(ctx context.Context, userID uuid.UUID, input ports.CreateTaskInput) (*domain.Task, error) {
	return s.createFn(ctx, userID, input)
}

func (s *stubTaskService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	return s.listFn(ctx, userID)
}

func (s *stubTaskService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	return s.getFn(ctx, id, userID)
}

func (s *stubTaskService) Update(ctx context.Context, id, userID uuid.UUID, update domain.TaskUpdate) (*domain.Task, error) {
	return s.updateFn(ctx, id, userID, update)
}

func (s *stubTaskService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.deleteFn(ctx, id, userID)
}

func (s *stubTaskService) Toggle(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	return s.toggleFn(ctx, id, userID)
}

func taskContext(t *testing.T, method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder, *domain.User) {
	t.Helper()
	e := newTestEcho()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	user := &domain.User{ID: uuid.New(), Email: "owner@example.com", Username: "owner"}
	middleware.SetUser(c, user)
	return e, c, rec, user
}

func TestTaskHandler_Create_Success(t *testing.T) {
	var gotInput ports.CreateTaskInput
	stub := &stubTaskService{
		createFn: func(ctx context.Context, userID uuid.UUID, input ports.CreateTaskInput) (*domain.Task, error) {
			gotInput = input
			return &domain.Task{
				ID:        uuid.New(),
				UserID:    userID,
				Title:     input.Title,
				Completed: input.Completed,
				CreatedAt: time.Now().UTC(),
				UpdatedAt: time.Now().UTC(),
			}, nil
		},
	}
	handler := NewTaskHandler(stub)

	_, c, rec, _ := taskContext(t, http.MethodPost, "/api/tasks", `{"title":"Buy milk"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotInput.Title != "Buy milk" || gotInput.Description != nil || gotInput.Completed {
		t.Fatalf("unexpected input: %+v", gotInput)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "Buy milk" || resp["completed"] != false {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, userID uuid.UUID, input ports.CreateTaskInput) (*domain.Task, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewTaskHandler(stub)

	_, c, _, _ := taskContext(t, http.MethodPost, "/api/tasks", `{"description":"no title"}`)
	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestTaskHandler_List_EmptyIsArray(t *testing.T) {
	stub := &stubTaskService{
		listFn: func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
			return []*domain.Task{}, nil
		},
	}
	handler := NewTaskHandler(stub)

	_, c, rec, _ := taskContext(t, http.MethodGet, "/api/tasks", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestTaskHandler_Get_MalformedID(t *testing.T) {
	handler := NewTaskHandler(&stubTaskService{})

	_, c, _, _ := taskContext(t, http.MethodGet, "/api/tasks/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestTaskHandler_Get_NotFoundPropagates(t *testing.T) {
	stub := &stubTaskService{
		getFn: func(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
			return nil, domain.ErrTaskNotFound
		},
	}
	handler := NewTaskHandler(stub)

	id := uuid.New()
	_, c, _, _ := taskContext(t, http.MethodGet, "/api/tasks/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := handler.Get(c); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskHandler_Update_PartialBody(t *testing.T) {
	var gotUpdate domain.TaskUpdate
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, id, userID uuid.UUID, update domain.TaskUpdate) (*domain.Task, error) {
			gotUpdate = update
			return &domain.Task{ID: id, UserID: userID, Title: "kept", Completed: *update.Completed}, nil
		},
	}
	handler := NewTaskHandler(stub)

	id := uuid.New()
	_, c, rec, _ := taskContext(t, http.MethodPatch, "/api/tasks/"+id.String(), `{"completed":true}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUpdate.Title != nil || gotUpdate.Description != nil {
		t.Fatalf("absent fields should stay nil: %+v", gotUpdate)
	}
	if gotUpdate.Completed == nil || !*gotUpdate.Completed {
		t.Fatalf("completed should be set true")
	}
}

func TestTaskHandler_Delete_NoContent(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, id, userID uuid.UUID) error { return nil },
	}
	handler := NewTaskHandler(stub)

	id := uuid.New()
	_, c, rec, _ := taskContext(t, http.MethodDelete, "/api/tasks/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestTaskHandler_Toggle(t *testing.T) {
	stub := &stubTaskService{
		toggleFn: func(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
			return &domain.Task{ID: id, UserID: userID, Title: "t", Completed: true}, nil
		},
	}
	handler := NewTaskHandler(stub)

	id := uuid.New()
	_, c, rec, _ := taskContext(t, http.MethodPost, "/api/tasks/"+id.String()+"/toggle", "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	if err := handler.Toggle(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"completed":true`) {
		t.Fatalf("expected completed true in %s", rec.Body.String())
	}
}
