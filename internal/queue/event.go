// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into reminder emails.
package queue

// ReminderTask is the slice of a task that matters for a reminder notice.
type ReminderTask struct {
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
}

// TaskReminderEvent is published once per user by the reminder sweep when
// they have overdue or soon-due tasks.  It carries everything the
// consumer needs to compose the email without touching the database.
type TaskReminderEvent struct {
	UserID      uint64         `json:"user_id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Overdue     []ReminderTask `json:"overdue"`
	DueTomorrow []ReminderTask `json:"due_tomorrow"`
	SweptAt     string         `json:"swept_at"`
}
