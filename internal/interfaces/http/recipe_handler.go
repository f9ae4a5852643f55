package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/application/recipes"
)

// RecipeHandler maneja recetas y su costo calculado bajo demanda.
type RecipeHandler struct {
	uc *recipes.UseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(uc *recipes.UseCase) *RecipeHandler {
	return &RecipeHandler{uc: uc}
}

// Save crea o reemplaza la receta del producto.
func (h *RecipeHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Save(c.UserContext(), c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByProduct obtiene la receta de un producto.
func (h *RecipeHandler) GetByProduct(c *fiber.Ctx) error {
	out, err := h.uc.GetByProduct(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista todas las recetas.
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UnitCost godoc
// @Summary      Costo por unidad de la receta (recalculado en cada lectura)
// @Tags         recipes
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.UnitCostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{productId}/cost [get]
func (h *RecipeHandler) UnitCost(c *fiber.Ctx) error {
	out, err := h.uc.UnitCost(c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
