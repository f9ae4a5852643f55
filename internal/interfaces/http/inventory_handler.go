package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/application/inventory"
)

// InventoryHandler maneja ítems de almacén, ajustes y movimientos.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// CreateItem da de alta un ítem.
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateItem(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem actualiza campos descriptivos (la cantidad va por /adjust).
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateItem(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajustar cantidad de un ítem (delta con signo + auditoría)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.AdjustStockRequest  true  "Delta y motivo"
// @Success      200   {object}  dto.ItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Adjust(c.UserContext(), c.Params("id"), in.Delta, in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListItems lista el almacén.
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Movements lista los movimientos recientes (o los de un ítem con ?item_id=).
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 50), Offset: c.QueryInt("offset", 0)}
	if itemID := c.Query("item_id"); itemID != "" {
		out, err := h.uc.MovementsForItem(itemID, page)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.Movements(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
