package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPRepo_Insert(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO password_otps (email, otp_code, used, created_at) VALUES (?,?,0,?)")).
		WithArgs("a@x.com", "042137", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewOTPRepo(db)
	// Email arrives mixed-case; the repo normalizes before writing.
	require.NoError(t, repo.Insert(context.Background(), " A@X.com ", "042137"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepo_FindActiveMatch(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := regexp.QuoteMeta(
		"SELECT id FROM password_otps WHERE email=? AND otp_code=? AND used=0 AND created_at>=? LIMIT 1")

	mock.ExpectQuery(query).
		WithArgs("a@x.com", "123456", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint64(5)))
	mock.ExpectQuery(query).
		WithArgs("a@x.com", "000000", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewOTPRepo(db)

	ok, err := repo.FindActiveMatch(context.Background(), "a@x.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.FindActiveMatch(context.Background(), "a@x.com", "000000")
	require.NoError(t, err)
	assert.False(t, ok, "no matching unused row within the window")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepo_Consume(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stmt := regexp.QuoteMeta(
		"UPDATE password_otps SET used=1 WHERE email=? AND otp_code=? AND used=0 AND created_at>=?")

	// First consume wins, second sees zero affected rows: the
	// conditional update is what keeps a code single-use under
	// concurrent resets.
	mock.ExpectExec(stmt).
		WithArgs("a@x.com", "123456", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(stmt).
		WithArgs("a@x.com", "123456", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewOTPRepo(db)

	ok, err := repo.Consume(context.Background(), "a@x.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Consume(context.Background(), "a@x.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok, "second consume of the same code must lose")

	require.NoError(t, mock.ExpectationsWereMet())
}
