package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/clubhub/club-service/internal/api/dto"
	"github.com/clubhub/club-service/internal/domain"
	"github.com/clubhub/club-service/internal/repository"
	apperrors "github.com/clubhub/club-service/pkg/util"
)

// PropertiesHandler exposes property CRUD.
type PropertiesHandler struct {
	properties repository.PropertyRepository
}

// NewPropertiesHandler constructs handler.
func NewPropertiesHandler(properties repository.PropertyRepository) *PropertiesHandler {
	return &PropertiesHandler{properties: properties}
}

// List handles GET /properties.
func (h *PropertiesHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	properties, total, err := h.properties.List(c.UserContext(), c.Query("clubId"), page.PageSize, page.Offset())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(pageResponse(dto.NewPropertyViews(properties), page, total))
}

// Get handles GET /properties/:id.
func (h *PropertiesHandler) Get(c *fiber.Ctx) error {
	property, err := h.properties.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("property", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewPropertyView(*property))
}

// Create handles POST /properties.
func (h *PropertiesHandler) Create(c *fiber.Ctx) error {
	var req dto.PropertyCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClubID == "" || req.Name == "" {
		return apperrors.NewValidationError("clubId and name required", nil)
	}

	property := &domain.Property{
		ClubID:      req.ClubID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		AcquiredAt:  req.AcquiredAt,
		ValueCents:  req.ValueCents,
	}
	if err := h.properties.Create(c.UserContext(), property); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPropertyView(*property))
}

// Update handles PATCH /properties/:id.
func (h *PropertiesHandler) Update(c *fiber.Ctx) error {
	var req dto.PropertyUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	property, err := h.properties.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("property", nil)
		}
		return apperrors.MapError(err)
	}

	req.Apply(property)
	if err := h.properties.Update(c.UserContext(), property); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewPropertyView(*property))
}

// Delete handles DELETE /properties/:id.
func (h *PropertiesHandler) Delete(c *fiber.Ctx) error {
	if err := h.properties.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("property", nil)
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
