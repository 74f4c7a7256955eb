package handler

import (
	"net/http"

	"imobia/internal/dto"
	"imobia/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CompanySettingsHandler struct {
	Settings *service.CompanySettingsService
	Validate *validator.Validate
}

func NewCompanySettingsHandler(settings *service.CompanySettingsService, validate *validator.Validate) *CompanySettingsHandler {
	return &CompanySettingsHandler{Settings: settings, Validate: validate}
}

// Get renders an empty object, not a 404, when nothing was saved yet.
func (h *CompanySettingsHandler) Get(c echo.Context) error {
	settings, err := h.Settings.Get(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	if settings == nil {
		return c.JSON(http.StatusOK, map[string]any{})
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *CompanySettingsHandler) Save(c echo.Context) error {
	var req dto.CompanySettingsRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	settings, err := h.Settings.Save(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}
