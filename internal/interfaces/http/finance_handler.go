package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/application/finance"
)

// FinanceHandler maneja la reserva diaria y el registro de gastos.
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// ReserveToday calcula y persiste la reserva sugerida de hoy.
func (h *FinanceHandler) ReserveToday(c *fiber.Ctx) error {
	out, err := h.uc.ReserveToday()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateExpense registra un gasto.
func (h *FinanceHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateExpense(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListExpenses lista gastos.
func (h *FinanceHandler) ListExpenses(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.ListExpenses(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListRules lista las reglas de reparto de ingreso.
func (h *FinanceHandler) ListRules(c *fiber.Ctx) error {
	out, err := h.uc.ListRules()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateRule crea una regla de reparto.
func (h *FinanceHandler) CreateRule(c *fiber.Ctx) error {
	var in dto.CreateAllocationRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateRule(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateRule actualiza una regla de reparto (parcial).
func (h *FinanceHandler) UpdateRule(c *fiber.Ctx) error {
	var in dto.UpdateAllocationRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateRule(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
