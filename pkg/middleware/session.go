package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"farmhub/entities"
	"farmhub/pkg/apperr"
)

const (
	ctxUser  = "user"
	ctxToken = "token"
)

// Authenticator resolves a bearer token to its user.
type Authenticator interface {
	Authenticate(token string) (*entities.User, error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// Session requires a valid session and stores its user on the context.
func Session(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c)
			u, err := a.Authenticate(token)
			if err != nil {
				return apperr.Respond(c, err)
			}
			c.Set(ctxUser, u)
			c.Set(ctxToken, token)
			return next(c)
		}
	}
}

// RequireAdmin rejects users without the admin role. It must run after Session.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := CurrentUser(c)
			if u == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
			}
			if u.Role != entities.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin role required"})
			}
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) *entities.User {
	u, _ := c.Get(ctxUser).(*entities.User)
	return u
}

func CurrentToken(c echo.Context) string {
	t, _ := c.Get(ctxToken).(string)
	return t
}
