package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/todotask/backend/internal/model"
)

// OTPRepo persists password-reset codes in the 'password_otps' table.
// Rows are append-only: a new forgot-password request inserts a fresh
// row without invalidating earlier unused codes for the same address.
type OTPRepo struct{ DB *sql.DB }

func NewOTPRepo(db *sql.DB) *OTPRepo { return &OTPRepo{DB: db} }

// Insert appends an unused code row with the current UTC timestamp.
func (r *OTPRepo) Insert(ctx context.Context, email, code string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO password_otps (email, otp_code, used, created_at) VALUES (?,?,0,?)",
		NormalizeEmail(email), code, time.Now().UTC())
	return err
}

// FindActiveMatch reports whether an unused (email, code) row exists
// whose age is still within the validity window.  The window is checked
// here, at verification time, not only at generation.
func (r *OTPRepo) FindActiveMatch(ctx context.Context, email, code string) (bool, error) {
	cutoff := time.Now().UTC().Add(-model.OTPWindow)
	var id uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM password_otps WHERE email=? AND otp_code=? AND used=0 AND created_at>=? LIMIT 1",
		NormalizeEmail(email), code, cutoff).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Consume flips the matching row to used, but only if it is still unused
// and inside the validity window.  The conditional UPDATE makes the check
// and the flip a single atomic step, so two concurrent reset attempts
// with the same code cannot both pass: exactly one caller sees true.
func (r *OTPRepo) Consume(ctx context.Context, email, code string) (bool, error) {
	cutoff := time.Now().UTC().Add(-model.OTPWindow)
	res, err := r.DB.ExecContext(ctx,
		"UPDATE password_otps SET used=1 WHERE email=? AND otp_code=? AND used=0 AND created_at>=?",
		NormalizeEmail(email), code, cutoff)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
