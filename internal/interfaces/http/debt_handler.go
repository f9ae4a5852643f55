package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comanda-api/internal/application/debts"
	"github.com/jhoicas/Comanda-api/internal/application/dto"
)

// DebtHandler maneja las deudas recurrentes y sus abonos.
type DebtHandler struct {
	uc *debts.UseCase
}

// NewDebtHandler construye el handler.
func NewDebtHandler(uc *debts.UseCase) *DebtHandler {
	return &DebtHandler{uc: uc}
}

// Create registra una deuda recurrente.
func (h *DebtHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDebtRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista las deudas ordenadas por día de vencimiento.
func (h *DebtHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Pay godoc
// @Summary      Registrar un abono contra una deuda
// @Tags         debts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayDebtRequest  true  "Deuda y monto"
// @Success      201   {object}  dto.DebtPaymentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/debts/pay [post]
func (h *DebtHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayDebtRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Pay(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayments lista los abonos, el más reciente primero.
func (h *DebtHandler) ListPayments(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 50), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListPayments(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
