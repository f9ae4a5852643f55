package dto

import "github.com/shopspring/decimal"

// RecipeLineInput ingrediente de una receta.
type RecipeLineInput struct {
	ItemID string          `json:"item_id" validate:"required"`
	Qty    decimal.Decimal `json:"qty" validate:"required"`
}

// SaveRecipeRequest entrada para crear o reemplazar la receta de un producto.
type SaveRecipeRequest struct {
	Name      string            `json:"name"`
	Notes     string            `json:"notes"`
	YieldQty  decimal.Decimal   `json:"yield_qty"`
	YieldUnit string            `json:"yield_unit"`
	Lines     []RecipeLineInput `json:"lines"`
}

// RecipeLineResponse línea de receta con datos del ítem resueltos.
type RecipeLineResponse struct {
	ItemID      string          `json:"item_id"`
	ItemName    string          `json:"item_name,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	Qty         decimal.Decimal `json:"qty"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
}

// RecipeResponse salida de una receta.
type RecipeResponse struct {
	ID        string               `json:"id"`
	ProductID string               `json:"product_id"`
	Name      string               `json:"name"`
	Notes     string               `json:"notes,omitempty"`
	YieldQty  decimal.Decimal      `json:"yield_qty"`
	YieldUnit string               `json:"yield_unit"`
	Lines     []RecipeLineResponse `json:"lines"`
}

// UnitCostResponse costo calculado bajo demanda para una receta.
// Partial indica que algún ítem referenciado ya no existe y aportó 0.
type UnitCostResponse struct {
	ProductID string          `json:"product_id"`
	BatchCost decimal.Decimal `json:"batch_cost"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	YieldQty  decimal.Decimal `json:"yield_qty"`
	Partial   bool            `json:"partial"`
}
