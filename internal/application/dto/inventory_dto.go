package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un ítem de almacén.
type CreateItemRequest struct {
	Code         string          `json:"code"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Unit         string          `json:"unit"`
	StockQty     decimal.Decimal `json:"stock_qty"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
}

// UpdateItemRequest entrada parcial para actualizar un ítem. La cantidad en
// stock no se actualiza por aquí: usar AdjustStockRequest.
type UpdateItemRequest struct {
	Code         *string          `json:"code"`
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit         *string          `json:"unit"`
	CostPerUnit  *decimal.Decimal `json:"cost_per_unit"`
	ReorderPoint *decimal.Decimal `json:"reorder_point"`
}

// AdjustStockRequest body para POST /api/items/{id}/adjust.
type AdjustStockRequest struct {
	Delta  decimal.Decimal `json:"delta" validate:"required"`
	Reason string          `json:"reason"`
}

// ItemResponse salida de un ítem de almacén.
type ItemResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	StockQty     decimal.Decimal `json:"stock_qty"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	ReorderPoint decimal.Decimal `json:"reorder_point"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MovementResponse salida de un movimiento del libro de stock.
type MovementResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name,omitempty"`
	Change    decimal.Decimal `json:"change"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
