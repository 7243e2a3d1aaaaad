package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"lodge-portal/internal/domain/user"
	"lodge-portal/internal/infrastructure/auth"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// SessionCookie carries the session token for browser clients.
const SessionCookie = "token"

const ctxUserKey = "session.user"

type TokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

type UserResolver interface {
	Resolve(ctx context.Context, publicID string) (*user.User, error)
}

// RequireSession accepts a Bearer token or the session cookie. The account
// behind the token must still exist.
func RequireSession(tokens TokenParser, users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := sessionToken(c)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			claims, err := tokens.Parse(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": auth.ErrInvalidToken.Error()})
			}
			u, err := users.Resolve(c.Request().Context(), claims.Subject)
			if errors.Is(err, user.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "account no longer exists"})
			}
			if err != nil {
				logrus.WithError(err).Error("resolve session user")
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			}
			c.Set(ctxUserKey, u)
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireSession.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u := CurrentUser(c)
		if u == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
		}
		if !u.IsAdmin() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
		}
		return next(c)
	}
}

// CurrentUser is nil outside RequireSession.
func CurrentUser(c echo.Context) *user.User {
	u, _ := c.Get(ctxUserKey).(*user.User)
	return u
}

func sessionToken(c echo.Context) string {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if ck, err := c.Cookie(SessionCookie); err == nil {
		return ck.Value
	}
	return ""
}
