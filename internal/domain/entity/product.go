package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del catálogo.
// Price es el precio de venta vigente; las órdenes guardan su propio snapshot
// al momento de crearse, así que cambiarlo nunca afecta órdenes históricas.
// Los productos no se eliminan: Active en false los oculta del punto de venta.
type Product struct {
	ID        string
	SKU       string // código único
	Name      string
	Category  string
	Price     decimal.Decimal
	ImageURL  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
