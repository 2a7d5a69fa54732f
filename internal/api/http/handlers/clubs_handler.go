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

// ClubsHandler exposes club CRUD.
type ClubsHandler struct {
	clubs repository.ClubRepository
}

// NewClubsHandler constructs handler.
func NewClubsHandler(clubs repository.ClubRepository) *ClubsHandler {
	return &ClubsHandler{clubs: clubs}
}

// List handles GET /clubs.
func (h *ClubsHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	clubs, total, err := h.clubs.List(c.UserContext(), page.PageSize, page.Offset())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(pageResponse(dto.NewClubViews(clubs), page, total))
}

// Get handles GET /clubs/:id.
func (h *ClubsHandler) Get(c *fiber.Ctx) error {
	club, err := h.clubs.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("club", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewClubView(*club))
}

// Create handles POST /clubs.
func (h *ClubsHandler) Create(c *fiber.Ctx) error {
	var req dto.ClubCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	club := &domain.Club{Name: req.Name, Description: req.Description}
	if err := h.clubs.Create(c.UserContext(), club); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewClubView(*club))
}

// Update handles PATCH /clubs/:id.
func (h *ClubsHandler) Update(c *fiber.Ctx) error {
	var req dto.ClubUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	club, err := h.clubs.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("club", nil)
		}
		return apperrors.MapError(err)
	}

	req.Apply(club)
	if err := h.clubs.Update(c.UserContext(), club); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewClubView(*club))
}

// Delete handles DELETE /clubs/:id.
func (h *ClubsHandler) Delete(c *fiber.Ctx) error {
	if err := h.clubs.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("club", nil)
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
