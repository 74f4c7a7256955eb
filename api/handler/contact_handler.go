package handler

import (
	"net/http"

	"imobia/internal/dto"
	"imobia/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	Contact  *service.ContactService
	Validate *validator.Validate
}

func NewContactHandler(contact *service.ContactService, validate *validator.Validate) *ContactHandler {
	return &ContactHandler{Contact: contact, Validate: validate}
}

// Send validates the form and hands it to the best-effort mailer; the
// visitor always sees success once the payload is well-formed.
func (h *ContactHandler) Send(c echo.Context) error {
	var req dto.ContactRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	h.Contact.Send(c.Request().Context(), req)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
