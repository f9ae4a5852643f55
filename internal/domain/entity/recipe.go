package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe describe cómo se produce un lote de un producto a partir de ítems
// del almacén. YieldQty es cuántas unidades terminadas rinde un lote.
type Recipe struct {
	ID        string
	ProductID string
	Name      string
	Notes     string
	YieldQty  decimal.Decimal
	YieldUnit string
	Lines     []RecipeLine
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecipeLine es un ingrediente de la receta.
type RecipeLine struct {
	ID       string
	RecipeID string
	ItemID   string
	Qty      decimal.Decimal
}
