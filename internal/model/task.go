package model

import "time"

// Task statuses as stored in `tasks.status`.  These mirror the kanban
// columns in the frontend.
const (
	StatusTodo       = "todo"
	StatusInProgress = "inprogress"
	StatusCompleted  = "completed"
	StatusBlocked    = "blocked"
)

// ValidStatus reports whether s is one of the known task statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

// Task mirrors the 'tasks' table.  DueDate is kept as a "YYYY-MM-DD"
// string because overdue/upcoming queries compare it lexically against
// today's date, the same way the rest of the system formats dates.
type Task struct {
	ID               uint64    // tasks.id
	UserID           uint64    // tasks.user_id (owner)
	Title            string    // tasks.title
	Description      string    // tasks.description
	Priority         string    // tasks.priority (High|Medium|Low)
	DueDate          string    // tasks.due_date ("YYYY-MM-DD", may be empty)
	Status           string    // tasks.status
	FileName         string    // tasks.file_name (stored attachment reference)
	OriginalFileName string    // tasks.original_file_name (name as uploaded)
	CreatedAt        time.Time // tasks.created_at
	UpdatedAt        time.Time // tasks.updated_at
}
