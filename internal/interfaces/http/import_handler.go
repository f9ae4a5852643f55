package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/application/importer"
)

// ImportHandler maneja la importación masiva de catálogo.
type ImportHandler struct {
	uc *importer.UseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importar catálogo desde texto tabular (CSV con encabezado)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "CSV"
// @Success      200   {object}  dto.ImportResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Import(c.UserContext(), in.CSV)
	if err != nil {
		// Cancelación a mitad de lote: se informan los contadores aplicados.
		if out != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			return c.Status(fiber.StatusOK).JSON(out)
		}
		return respondError(c, err)
	}
	return c.JSON(out)
}
