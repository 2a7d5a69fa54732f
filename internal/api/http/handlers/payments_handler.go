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

// PaymentsHandler exposes payment CRUD.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(payments *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments}
}

// List handles GET /payments.
func (h *PaymentsHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	payments, total, err := h.payments.List(c.UserContext(), c.Query("clubId"), page.PageSize, page.Offset())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(pageResponse(dto.NewPaymentViews(payments), page, total))
}

// Get handles GET /payments/:id.
func (h *PaymentsHandler) Get(c *fiber.Ctx) error {
	payment, err := h.payments.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("payment", nil)
		}
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewPaymentView(*payment))
}

// Create handles POST /payments.
func (h *PaymentsHandler) Create(c *fiber.Ctx) error {
	var req dto.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ClubID == "" || req.AmountCents <= 0 {
		return apperrors.NewValidationError("clubId and a positive amountCents required", nil)
	}

	payment := &domain.Payment{
		ClubID:      req.ClubID,
		MemberID:    req.MemberID,
		AmountCents: req.AmountCents,
		Currency:    "EUR",
		Method:      domain.PaymentMethodCash,
		Reference:   req.Reference,
		Notes:       req.Notes,
		PaidAt:      time.Now(),
	}
	if req.Currency != "" {
		payment.Currency = req.Currency
	}
	if req.Method != "" {
		payment.Method = domain.PaymentMethod(req.Method)
	}
	if req.PaidAt != nil {
		payment.PaidAt = *req.PaidAt
	}

	if err := h.payments.Create(c.UserContext(), payment); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPaymentView(*payment))
}

// Update handles PATCH /payments/:id.
func (h *PaymentsHandler) Update(c *fiber.Ctx) error {
	var req dto.PaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	payment, err := h.payments.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("payment", nil)
		}
		return apperrors.MapError(err)
	}

	req.Apply(payment)
	if err := h.payments.Update(c.UserContext(), payment); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewPaymentView(*payment))
}

// Delete handles DELETE /payments/:id.
func (h *PaymentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.payments.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("payment", nil)
		}
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
