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

// ActivitiesHandler exposes activity CRUD.
type ActivitiesHandler struct {
	activities repository.ActivityRepository
}

// NewActivitiesHandler constructs handler.
func NewActivitiesHandler(activities repository.ActivityRepository) *ActivitiesHandler {
	return &ActivitiesHandler{activities: activities}
}

// List handles GET /activities.
func (h *ActivitiesHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	activities, total, err := h.activities.List(c.UserContext(), c.Query("clubId"), page.PageSize, page.Offset())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(pageResponse(dto.NewActivityViews(activities), page, total))
}

// Get handles GET /activities/:id.
func (h *ActivitiesHandler) Get(c *fiber.Ctx) error {
	activity, err := h.activities.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("activity", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewActivityView(*activity))
}

// Create handles POST /activities.
func (h *ActivitiesHandler) Create(c *fiber.Ctx) error {
	var req dto.ActivityCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClubID == "" || req.Title == "" || req.StartsAt.IsZero() {
		return apperrors.NewValidationError("clubId, title and startsAt required", nil)
	}

	activity := &domain.Activity{
		ClubID:      req.ClubID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if err := h.activities.Create(c.UserContext(), activity); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewActivityView(*activity))
}

// Update handles PATCH /activities/:id.
func (h *ActivitiesHandler) Update(c *fiber.Ctx) error {
	var req dto.ActivityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	activity, err := h.activities.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("activity", nil)
		}
		return apperrors.MapError(err)
	}

	req.Apply(activity)
	if err := h.activities.Update(c.UserContext(), activity); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewActivityView(*activity))
}

// Delete handles DELETE /activities/:id.
func (h *ActivitiesHandler) Delete(c *fiber.Ctx) error {
	if err := h.activities.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("activity", nil)
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
