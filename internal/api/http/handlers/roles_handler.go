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

// RolesHandler exposes role CRUD and permission assignment.
type RolesHandler struct {
	roles repository.RoleRepository
}

// NewRolesHandler constructs handler.
func NewRolesHandler(roles repository.RoleRepository) *RolesHandler {
	return &RolesHandler{roles: roles}
}

// List handles GET /roles.
func (h *RolesHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	roles, total, err := h.roles.List(c.UserContext(), c.Query("clubId"), page.PageSize, page.Offset())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(pageResponse(dto.NewRoleViews(roles), page, total))
}

// Get handles GET /roles/:id, including the role's permission names.
func (h *RolesHandler) Get(c *fiber.Ctx) error {
	role, err := h.roles.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("role", nil)
		}
		return apperrors.MapError(err)
	}

	view := dto.NewRoleView(*role)
	permissions, err := h.roles.ListPermissionNames(c.UserContext(), role.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	view.Permissions = permissions
	return c.JSON(view)
}

// Create handles POST /roles.
func (h *RolesHandler) Create(c *fiber.Ctx) error {
	var req dto.RoleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClubID == "" || req.Name == "" {
		return apperrors.NewValidationError("clubId and name required", nil)
	}

	role := &domain.Role{ClubID: req.ClubID, Name: req.Name}
	if err := h.roles.Create(c.UserContext(), role); err != nil {
		if apperrors.IsUniqueViolation(err, "roles_club_id_name_key") {
			return apperrors.NewConflict("role name already used in this club", nil)
		}
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewRoleView(*role))
}

// Update handles PATCH /roles/:id.
func (h *RolesHandler) Update(c *fiber.Ctx) error {
	var req dto.RoleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	role, err := h.roles.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("role", nil)
		}
		return apperrors.MapError(err)
	}

	if req.Name != nil {
		role.Name = *req.Name
	}
	if err := h.roles.Update(c.UserContext(), role); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewRoleView(*role))
}

// ReplacePermissions handles PUT /roles/:id/permissions. Already-issued
// access tokens keep their permission snapshot until they expire or refresh.
func (h *RolesHandler) ReplacePermissions(c *fiber.Ctx) error {
	var req dto.RolePermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	role, err := h.roles.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("role", nil)
		}
		return apperrors.MapError(err)
	}

	if err := h.roles.ReplacePermissions(c.UserContext(), role.ID, req.PermissionIDs); err != nil {
		return apperrors.MapError(err)
	}

	view := dto.NewRoleView(*role)
	permissions, err := h.roles.ListPermissionNames(c.UserContext(), role.ID)
	if err != nil {
		return apperrors.MapError(err)
	}
	view.Permissions = permissions
	return c.JSON(view)
}

// Delete handles DELETE /roles/:id.
func (h *RolesHandler) Delete(c *fiber.Ctx) error {
	if err := h.roles.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("role", nil)
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
