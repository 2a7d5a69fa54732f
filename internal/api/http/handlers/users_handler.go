package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/clubhub/club-service/internal/api/dto"
	"github.com/clubhub/club-service/internal/auth"
	"github.com/clubhub/club-service/internal/domain"
	"github.com/clubhub/club-service/internal/repository"
	apperrors "github.com/clubhub/club-service/pkg/util"
)

// UsersHandler exposes account CRUD for administrators.
type UsersHandler struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users repository.UserRepository, bcryptCost int) *UsersHandler {
	return &UsersHandler{users: users, bcryptCost: bcryptCost}
}

// List handles GET /users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	users, total, err := h.users.List(c.UserContext(), page.PageSize, page.Offset())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(pageResponse(dto.NewAccountViews(users), page, total))
}

// Get handles GET /users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewAccountView(*user))
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("name, email and password required", nil)
	}

	hash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}

	user := &domain.User{Name: req.Name, Email: req.Email, PasswordHash: hash}
	if err := h.users.Create(c.UserContext(), user); err != nil {
		if apperrors.IsUniqueViolation(err, "users_email_key") {
			return apperrors.NewEmailAlreadyExists(req.Email)
		}
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAccountView(*user))
}

// Update handles PATCH /users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.users.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return apperrors.MapError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password, h.bcryptCost)
		if err != nil {
			return apperrors.MapError(err)
		}
		user.PasswordHash = hash
	}

	if err := h.users.Update(c.UserContext(), user); err != nil {
		if apperrors.IsUniqueViolation(err, "users_email_key") {
			return apperrors.NewEmailAlreadyExists(user.Email)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewAccountView(*user))
}

// Delete handles DELETE /users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
