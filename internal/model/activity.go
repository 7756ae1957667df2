package model

import "time"

// Activity is a row in the `activities` table: a fire-and-forget audit
// trail of what a user did, from which device and address.  Entries are
// written on a best-effort basis and cleared when the user logs out.
type Activity struct {
	ID          uint64    // activities.id
	UserID      uint64    // activities.user_id
	Action      string    // activities.action (e.g. "login", "task_create")
	Description string    // activities.description
	Device      string    // activities.device (raw User-Agent)
	IP          string    // activities.ip
	CreatedAt   time.Time // activities.created_at
}
