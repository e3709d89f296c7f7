package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	domainAuth "investlink-backend/internal/domain/auth"

	"github.com/labstack/echo/v4"
)

const claimsKey = "auth.claims"

// ErrNoClaims marks a request that reached a handler without passing
// Authenticate.
var ErrNoClaims = errors.New("no claims in context")

// TokenParser verifies a bearer token and returns its claims; the auth
// usecase satisfies this.
type TokenParser interface {
	ParseToken(token string) (*domainAuth.Claims, error)
}

// Authenticate extracts and verifies the Authorization bearer token and
// stashes the claims in the request context.
func Authenticate(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := parser.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired session token"})
			}
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// RequireRole guards a route group for one role.
func RequireRole(role domainAuth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := Claims(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			if claims.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// Claims returns the verified claims set by Authenticate.
func Claims(c echo.Context) (*domainAuth.Claims, error) {
	claims, ok := c.Get(claimsKey).(*domainAuth.Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}

// LoginID returns the numeric login id from the verified claims.
func LoginID(c echo.Context) (uint64, error) {
	claims, err := Claims(c)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(claims.Subject, 10, 64)
}
