package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/todotask/backend/internal/model"
)

// UserRepo is the single source of truth for identity and the current
// password hash.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = "id,name,email,password_hash,bio,profile_pic,created_at,updated_at"

// NormalizeEmail lowercases and trims an address.  Every lookup and
// insert goes through this so email uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create inserts a user with an already-hashed password and returns its ID.
func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, bio) VALUES (?,?,?,'')",
		name, NormalizeEmail(email), passwordHash)
	if err != nil {
		// MySQL duplicate-key error on the unique email index.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE email=? LIMIT 1",
		NormalizeEmail(email)).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Bio, &u.ProfilePic, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return u, ErrNotFound
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id=? LIMIT 1",
		id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Bio, &u.ProfilePic, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return u, ErrNotFound
	}
	return u, err
}

// ListAll returns every user.  The reminder sweep walks this list; the
// service is personal-scale, so an unpaginated scan is acceptable.
func (r *UserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+userCols+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Bio, &u.ProfilePic, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdatePassword replaces the stored password hash.  Used by both the
// change-password and reset-password flows.
func (r *UserRepo) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET password_hash=? WHERE id=?",
		passwordHash, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile applies the non-nil fields of the patch.  COALESCE keeps
// the current value for anything the caller left out.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uint64, name, bio, profilePic *string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name=COALESCE(?,name), bio=COALESCE(?,bio), profile_pic=COALESCE(?,profile_pic) WHERE id=?",
		name, bio, profilePic, id)
	return err
}
