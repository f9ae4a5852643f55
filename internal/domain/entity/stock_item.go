package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa un insumo del almacén. StockQty solo se modifica a
// través del libro de movimientos (ajustes), nunca por asignación directa:
// para cualquier ítem vale StockQty = StockQty(t0) + Σ cambios de movimientos.
type StockItem struct {
	ID           string
	Code         string // código único
	Name         string
	Unit         string
	StockQty     decimal.Decimal
	CostPerUnit  decimal.Decimal
	ReorderPoint decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BelowReorderPoint indica si el ítem está en o bajo su punto de reorden.
func (i *StockItem) BelowReorderPoint() bool {
	return i.StockQty.LessThanOrEqual(i.ReorderPoint)
}
