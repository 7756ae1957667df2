package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectUserByEmail = "SELECT id,name,email,password_hash,bio,profile_pic,created_at,updated_at FROM users WHERE email=? LIMIT 1"

func userRows(id uint64, name, email, hash string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "bio", "profile_pic", "created_at", "updated_at"}).
		AddRow(id, name, email, hash, "", "", now, now)
}

func TestUserRepo_Create(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO users (name, email, password_hash, bio) VALUES (?,?,?,'')")).
		WithArgs("A", "a@x.com", "hashed").
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := NewUserRepo(db)
	id, err := repo.Create(context.Background(), "A", "A@X.COM", "hashed")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO users (name, email, password_hash, bio) VALUES (?,?,?,'')")).
		WithArgs("A", "a@x.com", "hashed").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'a@x.com' for key 'uq_users_email'"))

	repo := NewUserRepo(db)
	_, err = repo.Create(context.Background(), "A", "a@x.com", "hashed")
	assert.ErrorIs(t, err, ErrEmailExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
		WithArgs("a@x.com").
		WillReturnRows(userRows(3, "A", "a@x.com", "hashed"))

	repo := NewUserRepo(db)
	// Lookup is case-insensitive via normalization.
	u, err := repo.GetByEmail(context.Background(), "  A@x.COM ")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// An empty result set maps to ErrNotFound.
	mock.ExpectQuery(regexp.QuoteMeta(selectUserByEmail)).
		WithArgs("nobody@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "bio", "profile_pic", "created_at", "updated_at"}))

	repo := NewUserRepo(db)
	_, err = repo.GetByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_UpdatePassword_NoRows(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE users SET password_hash=? WHERE id=?")).
		WithArgs("newhash", uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewUserRepo(db)
	err = repo.UpdatePassword(context.Background(), 99, "newhash")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
