package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todotask/backend/internal/utils"
)

const testSecret = "mw-test-secret"

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, uint64) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen uint64
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		seen = CurrentUserID(c)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, seen
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	rec, _ := runJWT(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing bearer token")
}

func TestJWTAuth_WrongScheme(t *testing.T) {
	t.Parallel()

	rec, _ := runJWT(t, "Basic dXNlcjpwdw==")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token scheme")
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	access, err := utils.NewAccessToken(testSecret, 7, -1)
	require.NoError(t, err)

	rec, _ := runJWT(t, "Bearer "+access.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token expired")
}

func TestJWTAuth_TamperedToken(t *testing.T) {
	t.Parallel()

	access, err := utils.NewAccessToken("other-secret", 7, 24)
	require.NoError(t, err)

	rec, _ := runJWT(t, "Bearer "+access.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestJWTAuth_ValidTokenSetsUserID(t *testing.T) {
	t.Parallel()

	access, err := utils.NewAccessToken(testSecret, 42, 24)
	require.NoError(t, err)

	rec, seen := runJWT(t, "Bearer "+access.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(42), seen)
}

func TestJWTAuth_SchemeCaseInsensitive(t *testing.T) {
	t.Parallel()

	access, err := utils.NewAccessToken(testSecret, 42, 24)
	require.NoError(t, err)

	rec, seen := runJWT(t, "bearer "+access.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(42), seen)
}
