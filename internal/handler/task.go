package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/todotask/backend/internal/middleware"
	"github.com/todotask/backend/internal/model"
	"github.com/todotask/backend/internal/repository"
)

// TaskHandler bundles dependencies for task CRUD, listings and the
// kanban status endpoint.
type TaskHandler struct {
	Tasks      *repository.TaskRepo
	Activities *repository.ActivityRepo
}

func NewTaskHandler(t *repository.TaskRepo, a *repository.ActivityRepo) *TaskHandler {
	return &TaskHandler{Tasks: t, Activities: a}
}

// ----- DTOs -----

type taskCreateReq struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Priority         string `json:"priority"`
	Date             string `json:"date"`
	Status           string `json:"status"`
	FileName         string `json:"file_name"`
	OriginalFileName string `json:"original_file_name"`
}

type taskUpdateReq struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	Priority         *string `json:"priority"`
	Date             *string `json:"date"`
	Status           *string `json:"status"`
	FileName         *string `json:"file_name"`
	OriginalFileName *string `json:"original_file_name"`
}

// taskResp is the JSON shape the frontend consumes; "date" is the due
// date in "YYYY-MM-DD".
type taskResp struct {
	ID               uint64 `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Priority         string `json:"priority"`
	Date             string `json:"date"`
	Status           string `json:"status"`
	FileName         string `json:"file_name,omitempty"`
	OriginalFileName string `json:"original_file_name,omitempty"`
	CreatedAt        string `json:"created_at"`
}

func toTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Priority:         t.Priority,
		Date:             t.DueDate,
		Status:           t.Status,
		FileName:         t.FileName,
		OriginalFileName: t.OriginalFileName,
		CreatedAt:        t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toTaskResps(ts []model.Task) []taskResp {
	out := make([]taskResp, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTaskResp(t))
	}
	return out
}

// ownedTask loads a task and enforces ownership: unknown id is 404,
// someone else's task is 403.
func (h *TaskHandler) ownedTask(ctx context.Context, id, userID uint64) (model.Task, error) {
	t, err := h.Tasks.GetByID(ctx, id)
	if err != nil {
		return t, err
	}
	if t.UserID != userID {
		return t, repository.ErrForbidden
	}
	return t, nil
}

func taskIDParam(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func taskError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
}

// Create inserts a new task for the authenticated user.
func (h *TaskHandler) Create(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	var req taskCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}
	if req.Status == "" {
		req.Status = model.StatusTodo
	}
	if !model.ValidStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Tasks.Create(ctx, model.Task{
		UserID:           uid,
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		DueDate:          req.Date,
		Status:           req.Status,
		FileName:         req.FileName,
		OriginalFileName: req.OriginalFileName,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create task failed"})
	}

	recordActivity(h.Activities, c, uid, "task_create", "Created task: "+req.Title)

	return c.JSON(http.StatusOK, echo.Map{"message": "Task created", "task_id": id})
}

// List returns all of the caller's tasks.
func (h *TaskHandler) List(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.Tasks.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toTaskResps(tasks))
}

// Get returns a single task after the ownership check.
func (h *TaskHandler) Get(c echo.Context) error {
	uid := middleware.CurrentUserID(c)
	id, err := taskIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.ownedTask(ctx, id, uid)
	if err != nil {
		return taskError(c, err)
	}
	return c.JSON(http.StatusOK, toTaskResp(t))
}

// Update applies a partial patch to an owned task.
func (h *TaskHandler) Update(c echo.Context) error {
	uid := middleware.CurrentUserID(c)
	id, err := taskIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task id"})
	}

	var req taskUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Status != nil && !model.ValidStatus(*req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.ownedTask(ctx, id, uid); err != nil {
		return taskError(c, err)
	}
	if err := h.Tasks.Update(ctx, id, req.Title, req.Description, req.Priority, req.Date, req.Status, req.FileName, req.OriginalFileName); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update task failed"})
	}

	recordActivity(h.Activities, c, uid, "task_update", fmt.Sprintf("Updated task: %d", id))

	return c.JSON(http.StatusOK, echo.Map{"message": "Task updated"})
}

// Delete removes an owned task.
func (h *TaskHandler) Delete(c echo.Context) error {
	uid := middleware.CurrentUserID(c)
	id, err := taskIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.ownedTask(ctx, id, uid); err != nil {
		return taskError(c, err)
	}
	if err := h.Tasks.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete task failed"})
	}

	recordActivity(h.Activities, c, uid, "task_delete", fmt.Sprintf("Deleted task: %d", id))

	return c.JSON(http.StatusOK, echo.Map{"message": "Task deleted"})
}

// UpdateStatus moves a task between kanban columns.
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	uid := middleware.CurrentUserID(c)
	id, err := taskIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid task id"})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil || !model.ValidStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.ownedTask(ctx, id, uid); err != nil {
		return taskError(c, err)
	}
	if err := h.Tasks.UpdateStatus(ctx, id, req.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update status failed"})
	}

	recordActivity(h.Activities, c, uid, "task_status_change",
		fmt.Sprintf("Changed status to %s for task %d", req.Status, id))

	return c.JSON(http.StatusOK, echo.Map{"message": "Status updated"})
}

// Overdue lists unfinished tasks whose due date has passed.
func (h *TaskHandler) Overdue(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.Tasks.ListOverdue(ctx, uid, repository.Today(time.Now()))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toTaskResps(tasks))
}

// Upcoming lists tasks due after today.
func (h *TaskHandler) Upcoming(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.Tasks.ListUpcoming(ctx, uid, repository.Today(time.Now()))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toTaskResps(tasks))
}
