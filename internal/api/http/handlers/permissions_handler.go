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

// PermissionsHandler exposes catalog permission CRUD.
type PermissionsHandler struct {
	permissions repository.PermissionRepository
}

// NewPermissionsHandler constructs handler.
func NewPermissionsHandler(permissions repository.PermissionRepository) *PermissionsHandler {
	return &PermissionsHandler{permissions: permissions}
}

// List handles GET /permissions.
func (h *PermissionsHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	permissions, total, err := h.permissions.List(c.UserContext(), page.PageSize, page.Offset())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(pageResponse(dto.NewPermissionViews(permissions), page, total))
}

// Get handles GET /permissions/:id.
func (h *PermissionsHandler) Get(c *fiber.Ctx) error {
	permission, err := h.permissions.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("permission", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewPermissionView(*permission))
}

// Create handles POST /permissions.
func (h *PermissionsHandler) Create(c *fiber.Ctx) error {
	var req dto.PermissionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	permission := &domain.Permission{Name: req.Name, Description: req.Description}
	if err := h.permissions.Create(c.UserContext(), permission); err != nil {
		if apperrors.IsUniqueViolation(err, "permissions_name_key") {
			return apperrors.NewConflict("permission name already exists", nil)
		}
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPermissionView(*permission))
}

// Update handles PATCH /permissions/:id.
func (h *PermissionsHandler) Update(c *fiber.Ctx) error {
	var req dto.PermissionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	permission, err := h.permissions.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("permission", nil)
		}
		return apperrors.MapError(err)
	}

	if req.Name != nil {
		permission.Name = *req.Name
	}
	if req.Description != nil {
		permission.Description = *req.Description
	}
	if err := h.permissions.Update(c.UserContext(), permission); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewPermissionView(*permission))
}

// Delete handles DELETE /permissions/:id.
func (h *PermissionsHandler) Delete(c *fiber.Ctx) error {
	if err := h.permissions.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("permission", nil)
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
