package http

import (
	"bytes"
	"net/http"
	"time"

	"lodge-portal/internal/adapter/middleware"
	"lodge-portal/internal/usecase/account"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc           *account.Usecase
	cookieSecure bool
}

func NewAuthHandler(uc *account.Usecase, cookieSecure bool) *AuthHandler {
	return &AuthHandler{uc: uc, cookieSecure: cookieSecure}
}

func clientInfo(c echo.Context) account.ClientInfo {
	return account.ClientInfo{IP: c.RealIP(), UserAgent: c.Request().UserAgent()}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var in account.SignupInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	u, err := h.uc.Signup(c.Request().Context(), in, clientInfo(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"user": u})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var in account.LoginInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	s, err := h.uc.Login(c.Request().Context(), in, clientInfo(c))
	if err != nil {
		return writeError(c, err)
	}
	c.SetCookie(h.sessionCookie(s.Token, s.ExpiresAt))
	return c.JSON(http.StatusOK, s)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	ck := h.sessionCookie("", time.Unix(0, 0))
	ck.MaxAge = -1
	c.SetCookie(ck)
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"user": middleware.CurrentUser(c)})
}

func (h *AuthHandler) CheckAccess(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"admin": true, "user": middleware.CurrentUser(c)})
}

// ---- admin: members ----

func (h *AuthHandler) ListUsers(c echo.Context) error {
	var f account.ListFilter
	if err := decode(c, &f); err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListUsers(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"users": list})
}

func (h *AuthHandler) ExportUsers(c echo.Context) error {
	var f account.ListFilter
	if err := decode(c, &f); err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := h.uc.ExportCSV(c.Request().Context(), f, &buf); err != nil {
		return writeError(c, err)
	}
	name := "members-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *AuthHandler) UpdateUserStatus(c echo.Context) error {
	var in account.UpdateStatusInput
	if err := decode(c, &in); err != nil {
		return writeError(c, err)
	}
	u, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"user": u})
}

func (h *AuthHandler) DeleteUser(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
