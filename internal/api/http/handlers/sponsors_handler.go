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

// SponsorsHandler exposes sponsor CRUD.
type SponsorsHandler struct {
	sponsors repository.SponsorRepository
}

// NewSponsorsHandler constructs handler.
func NewSponsorsHandler(sponsors repository.SponsorRepository) *SponsorsHandler {
	return &SponsorsHandler{sponsors: sponsors}
}

// List handles GET /sponsors.
func (h *SponsorsHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	sponsors, total, err := h.sponsors.List(c.UserContext(), c.Query("clubId"), page.PageSize, page.Offset())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(pageResponse(dto.NewSponsorViews(sponsors), page, total))
}

// Get handles GET /sponsors/:id.
func (h *SponsorsHandler) Get(c *fiber.Ctx) error {
	sponsor, err := h.sponsors.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("sponsor", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewSponsorView(*sponsor))
}

// Create handles POST /sponsors.
func (h *SponsorsHandler) Create(c *fiber.Ctx) error {
	var req dto.SponsorCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClubID == "" || req.Name == "" {
		return apperrors.NewValidationError("clubId and name required", nil)
	}

	sponsor := &domain.Sponsor{
		ClubID:       req.ClubID,
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Tier:         domain.SponsorTierBronze,
		Active:       true,
	}
	if req.Tier != "" {
		sponsor.Tier = domain.SponsorTier(req.Tier)
	}
	if req.Active != nil {
		sponsor.Active = *req.Active
	}

	if err := h.sponsors.Create(c.UserContext(), sponsor); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewSponsorView(*sponsor))
}

// Update handles PATCH /sponsors/:id.
func (h *SponsorsHandler) Update(c *fiber.Ctx) error {
	var req dto.SponsorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	sponsor, err := h.sponsors.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("sponsor", nil)
		}
		return apperrors.MapError(err)
	}

	req.Apply(sponsor)
	if err := h.sponsors.Update(c.UserContext(), sponsor); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewSponsorView(*sponsor))
}

// Delete handles DELETE /sponsors/:id.
func (h *SponsorsHandler) Delete(c *fiber.Ctx) error {
	if err := h.sponsors.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("sponsor", nil)
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
