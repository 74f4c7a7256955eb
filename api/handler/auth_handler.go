package handler

import (
	"errors"
	"net/http"
	"time"

	"imobia/api/middleware"
	"imobia/internal/dto"
	"imobia/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Auth          *service.AuthService
	Validate      *validator.Validate
	CookieDomain  string
	SecureCookies bool
	SameSite      http.SameSite
	SessionTTL    time.Duration
}

func NewAuthHandler(auth *service.AuthService, validate *validator.Validate, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		Auth:          auth,
		Validate:      validate,
		SecureCookies: true,
		SameSite:      http.SameSiteLaxMode,
		SessionTTL:    sessionTTL,
	}
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	var req dto.SignUpRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	user, err := h.Auth.SignUp(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}

	result, err := h.Auth.StartSession(c.Request().Context(), user, stringPtr(c.RealIP()), stringPtr(c.Request().UserAgent()))
	if err != nil {
		return writeServiceError(c, err)
	}
	h.setSessionCookie(c, result.Token)
	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

func (h *AuthHandler) SignIn(c echo.Context) error {
	var req dto.SignInRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	result, err := h.Auth.SignIn(c.Request().Context(), req, stringPtr(c.RealIP()), stringPtr(c.Request().UserAgent()))
	if err != nil {
		return writeServiceError(c, err)
	}
	h.setSessionCookie(c, result.Token)
	return c.JSON(http.StatusOK, map[string]any{"user": result.User})
}

func (h *AuthHandler) SignOut(c echo.Context) error {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	if err := h.Auth.SignOut(c.Request().Context(), session.ID, &session.UserID, stringPtr(c.RealIP())); err != nil {
		return writeServiceError(c, err)
	}
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// GetSession answers 200 for both known and unknown sessions; an anonymous
// caller gets a JSON null, matching the auth client the admin UI ships.
func (h *AuthHandler) GetSession(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, nil)
	}
	session, user, err := h.Auth.GetSession(c.Request().Context(), cookie.Value)
	if err != nil {
		return writeServiceError(c, err)
	}
	if session == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, dto.SessionResponse{Session: session, User: user})
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   int(h.SessionTTL.Seconds()),
		Expires:  time.Now().Add(h.SessionTTL),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: h.SameSite,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: h.SameSite,
	})
}
