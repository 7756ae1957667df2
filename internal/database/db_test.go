package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/todotask/backend/internal/config"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		DBUser: "todo",
		DBPass: "s3cret",
		DBHost: "db.local",
		DBPort: "3306",
		DBName: "todotask",
	}
	assert.Equal(t,
		"todo:s3cret@tcp(db.local:3306)/todotask?charset=utf8mb4&parseTime=true&loc=UTC",
		DSN(cfg))
}

func TestDSN_NoPassword(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		DBUser: "todo",
		DBHost: "127.0.0.1",
		DBPort: "3307",
		DBName: "todotask",
	}
	// No colon when the password is empty.
	assert.Equal(t,
		"todo@tcp(127.0.0.1:3307)/todotask?charset=utf8mb4&parseTime=true&loc=UTC",
		DSN(cfg))
}
