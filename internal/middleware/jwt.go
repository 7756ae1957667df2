package middleware // middleware provides reusable HTTP middleware functions

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/todotask/backend/internal/utils"
)

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and injects the subject user ID into the request context under
// "user_id".  The provided secret must match the one used when issuing
// tokens.  Failure modes are kept distinct so clients get useful
// guidance: a missing header is 401, a non-Bearer scheme is 403, an
// expired token is 401 "token expired" and anything tampered or
// malformed is 401 "invalid token".
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			scheme, raw, found := strings.Cut(auth, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "invalid token scheme"})
			}
			raw = strings.TrimSpace(raw)

			uid, err := utils.ParseAccessToken(secret, raw)
			switch {
			case err == nil:
			case errors.Is(err, utils.ErrTokenExpired):
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token expired"})
			default:
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			if uid == 0 {
				// A signed token without a usable subject is a caller
				// problem, not a token-service failure.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set("user_id", uid)
			return next(c)
		}
	}
}

// CurrentUserID pulls the authenticated user's ID out of the context.
// It returns 0 when the request was not authenticated.
func CurrentUserID(c echo.Context) uint64 {
	if v, ok := c.Get("user_id").(uint64); ok {
		return v
	}
	return 0
}
