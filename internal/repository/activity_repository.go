package repository

import (
	"context"
	"database/sql"

	"github.com/todotask/backend/internal/model"
)

// ActivityRepo owns the 'activities' table.  Writes are fire-and-forget
// at the call sites: a failed insert is logged, never surfaced.
type ActivityRepo struct{ DB *sql.DB }

func NewActivityRepo(db *sql.DB) *ActivityRepo { return &ActivityRepo{DB: db} }

// Insert appends an audit entry.
func (r *ActivityRepo) Insert(ctx context.Context, a model.Activity) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO activities (user_id, action, description, device, ip) VALUES (?,?,?,?,?)",
		a.UserID, a.Action, a.Description, a.Device, a.IP)
	return err
}

// ListByUser returns a user's activity, newest first.
func (r *ActivityRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Activity, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,action,description,device,ip,created_at FROM activities WHERE user_id=? ORDER BY id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	logs := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Action, &a.Description, &a.Device, &a.IP, &a.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, a)
	}
	return logs, rows.Err()
}

// DeleteByUser clears a user's trail.  Called on logout.
func (r *ActivityRepo) DeleteByUser(ctx context.Context, userID uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM activities WHERE user_id=?", userID)
	return err
}
