package middleware

import (
	"net/http"

	"imobia/internal/service"

	"github.com/labstack/echo/v4"
)

const SessionCookieName = "session_token"

type AuthMiddleware struct {
	Auth *service.AuthService
}

// RequireAuth rejects requests without a valid session cookie.
func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.Auth == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		session, user, err := m.Auth.GetSession(c.Request().Context(), readSessionCookie(c))
		if err != nil || session == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		SetAuthContext(c, user, session)
		return next(c)
	}
}

// WithSession resolves the session when present but lets anonymous
// requests through; handlers serving both the admin and the public site
// decide per request.
func (m AuthMiddleware) WithSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.Auth != nil {
			if session, user, err := m.Auth.GetSession(c.Request().Context(), readSessionCookie(c)); err == nil && session != nil {
				SetAuthContext(c, user, session)
			}
		}
		return next(c)
	}
}

func readSessionCookie(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
