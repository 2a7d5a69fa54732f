package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/clubhub/club-service/internal/api/dto"
	"github.com/clubhub/club-service/internal/domain"
	"github.com/clubhub/club-service/internal/service"
	apperrors "github.com/clubhub/club-service/pkg/util"
)

// MembersHandler exposes roster member CRUD.
type MembersHandler struct {
	members *service.MemberService
}

// NewMembersHandler constructs handler.
func NewMembersHandler(members *service.MemberService) *MembersHandler {
	return &MembersHandler{members: members}
}

// List handles GET /members.
func (h *MembersHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	members, total, err := h.members.List(c.UserContext(), c.Query("clubId"), page.PageSize, page.Offset())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(pageResponse(dto.NewMemberViews(members), page, total))
}

// Get handles GET /members/:id.
func (h *MembersHandler) Get(c *fiber.Ctx) error {
	member, err := h.members.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("member", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewMemberView(*member))
}

// Create handles POST /members.
func (h *MembersHandler) Create(c *fiber.Ctx) error {
	var req dto.MemberCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClubID == "" || req.FirstName == "" || req.LastName == "" {
		return apperrors.NewValidationError("clubId, firstName and lastName required", nil)
	}

	member := &domain.Member{
		ClubID:    req.ClubID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		JoinedAt:  time.Now(),
		Active:    true,
	}
	if req.JoinedAt != nil {
		member.JoinedAt = *req.JoinedAt
	}
	if req.Active != nil {
		member.Active = *req.Active
	}

	if err := h.members.Create(c.UserContext(), member); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewMemberView(*member))
}

// Update handles PATCH /members/:id.
func (h *MembersHandler) Update(c *fiber.Ctx) error {
	var req dto.MemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	member, err := h.members.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("member", nil)
		}
		return apperrors.MapError(err)
	}

	req.Apply(member)
	if err := h.members.Update(c.UserContext(), member); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewMemberView(*member))
}

// Delete handles DELETE /members/:id.
func (h *MembersHandler) Delete(c *fiber.Ctx) error {
	if err := h.members.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("member", nil)
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
