package handler

import (
	"errors"
	"net/http"
	"strconv"

	"imobia/api/middleware"
	"imobia/internal/dto"
	"imobia/internal/repository"
	"imobia/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type RealEstateHandler struct {
	Listings *service.RealEstateService
	Validate *validator.Validate
}

func NewRealEstateHandler(listings *service.RealEstateService, validate *validator.Validate) *RealEstateHandler {
	return &RealEstateHandler{Listings: listings, Validate: validate}
}

// List serves two callers from one route. The public site always sends
// is_available=true and gets the paginated, available-only shape; everyone
// else must hold a session and gets the flat admin array with owner_name.
func (h *RealEstateHandler) List(c echo.Context) error {
	if c.QueryParam("is_available") == "true" {
		return h.listPublic(c)
	}

	if _, ok := middleware.UserFromContext(c); !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	listings, err := h.Listings.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, listings)
}

func (h *RealEstateHandler) listPublic(c echo.Context) error {
	filter := repository.ListingFilter{
		Finality: c.QueryParam("finality"),
		Type:     c.QueryParam("type"),
		City:     c.QueryParam("city"),
		Search:   c.QueryParam("search"),
	}
	filter.Bedrooms, _ = strconv.Atoi(c.QueryParam("bedrooms"))
	filter.MinPrice, _ = strconv.ParseFloat(c.QueryParam("minPrice"), 64)
	filter.MaxPrice, _ = strconv.ParseFloat(c.QueryParam("maxPrice"), 64)
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	page, err := h.Listings.ListPublic(c.Request().Context(), filter)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *RealEstateHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid listing id"))
	}
	listing, err := h.Listings.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *RealEstateHandler) NextCode(c echo.Context) error {
	listingType := c.QueryParam("type")
	if listingType == "" {
		return writeError(c, http.StatusBadRequest, errors.New("type query parameter is required"))
	}
	code, err := h.Listings.NextCode(c.Request().Context(), listingType)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"code": code})
}

func (h *RealEstateHandler) Create(c echo.Context) error {
	var req dto.RealEstateCreateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	listing, err := h.Listings.Create(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, listing)
}

func (h *RealEstateHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid listing id"))
	}

	var req dto.RealEstateUpdateRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	listing, err := h.Listings.Update(c.Request().Context(), id, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *RealEstateHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid listing id"))
	}
	if err := h.Listings.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
