package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. SKU es opcional:
// si falta se genera a partir del nombre con un sufijo de unicidad.
type CreateProductRequest struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url"`
	Active   *bool           `json:"active"`
}

// UpdateProductRequest entrada parcial para actualizar un producto.
type UpdateProductRequest struct {
	SKU      *string          `json:"sku"`
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	ImageURL *string          `json:"image_url"`
	Active   *bool            `json:"active"`
}

// SetActiveRequest entrada para mostrar/ocultar un producto del catálogo.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url,omitempty"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
