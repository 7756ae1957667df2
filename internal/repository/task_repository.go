package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/todotask/backend/internal/model"
)

// TaskRepo owns the 'tasks' table.
type TaskRepo struct{ DB *sql.DB }

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{DB: db} }

const taskCols = "id,user_id,title,description,priority,due_date,status,file_name,original_file_name,created_at,updated_at"

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Priority, &t.DueDate,
		&t.Status, &t.FileName, &t.OriginalFileName, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create inserts a task and returns its ID.
func (r *TaskRepo) Create(ctx context.Context, t model.Task) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO tasks (user_id, title, description, priority, due_date, status, file_name, original_file_name) VALUES (?,?,?,?,?,?,?,?)",
		t.UserID, t.Title, t.Description, t.Priority, t.DueDate, t.Status, t.FileName, t.OriginalFileName)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a single task regardless of owner; the handler decides
// between 404 and 403.
func (r *TaskRepo) GetByID(ctx context.Context, id uint64) (model.Task, error) {
	t, err := scanTask(r.DB.QueryRowContext(ctx,
		"SELECT "+taskCols+" FROM tasks WHERE id=? LIMIT 1", id))
	if err == sql.ErrNoRows {
		return t, ErrNotFound
	}
	return t, err
}

// ListByUser returns all tasks owned by a user, newest first.
func (r *TaskRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Task, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+taskCols+" FROM tasks WHERE user_id=? ORDER BY id DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListOverdue returns unfinished tasks whose due date is before today.
// due_date is "YYYY-MM-DD", so string comparison orders correctly.
func (r *TaskRepo) ListOverdue(ctx context.Context, userID uint64, today string) ([]model.Task, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+taskCols+" FROM tasks WHERE user_id=? AND due_date<>'' AND due_date<? AND status<>? ORDER BY due_date",
		userID, today, model.StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListUpcoming returns tasks due strictly after today.
func (r *TaskRepo) ListUpcoming(ctx context.Context, userID uint64, today string) ([]model.Task, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+taskCols+" FROM tasks WHERE user_id=? AND due_date>? ORDER BY due_date",
		userID, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// ListDueOn returns unfinished tasks due exactly on the given date.
// Used by the reminder sweep for "due tomorrow" notices.
func (r *TaskRepo) ListDueOn(ctx context.Context, userID uint64, date string) ([]model.Task, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+taskCols+" FROM tasks WHERE user_id=? AND due_date=? AND status<>? ORDER BY id",
		userID, date, model.StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// Update applies the non-nil fields of the patch to an existing task.
func (r *TaskRepo) Update(ctx context.Context, id uint64, title, description, priority, dueDate, status, fileName, originalFileName *string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE tasks SET
			title=COALESCE(?,title),
			description=COALESCE(?,description),
			priority=COALESCE(?,priority),
			due_date=COALESCE(?,due_date),
			status=COALESCE(?,status),
			file_name=COALESCE(?,file_name),
			original_file_name=COALESCE(?,original_file_name)
		WHERE id=?`,
		title, description, priority, dueDate, status, fileName, originalFileName, id)
	return err
}

// UpdateStatus moves a task between kanban columns.
func (r *TaskRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE tasks SET status=? WHERE id=?", status, id)
	return err
}

// Delete removes a task row.
func (r *TaskRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM tasks WHERE id=?", id)
	return err
}

func collectTasks(rows *sql.Rows) ([]model.Task, error) {
	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Today formats a time as the "YYYY-MM-DD" string used by due-date
// comparisons across the service.
func Today(now time.Time) string { return now.Format("2006-01-02") }
