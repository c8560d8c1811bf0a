package httpapi

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vincenttwizere/Refuture-sub002/internal/common"
	"github.com/vincenttwizere/Refuture-sub002/internal/server/auth"
)

const claimsKey = "claims"

// AuthVerifier is the slice of the auth service the middleware needs.
type AuthVerifier interface {
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// requireAuth verifies the bearer header and the server-side session, and
// stashes the claims in the request context for handlers downstream.
func requireAuth(authSvc AuthVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return fail(c, common.ErrUnauthorized)
			}

			claims, err := authSvc.Authenticate(c.Request().Context(), token)
			if err != nil {
				return fail(c, err)
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// requireRole restricts a route group to one role. Must run after
// requireAuth.
func requireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claimsOf(c).Role != role {
				return fail(c, common.ErrForbidden)
			}
			return next(c)
		}
	}
}

// claimsOf returns the verified claims set by requireAuth. Calling it on an
// unauthenticated route is a programming error and panics via the type
// assertion.
func claimsOf(c echo.Context) *auth.Claims {
	return c.Get(claimsKey).(*auth.Claims)
}
