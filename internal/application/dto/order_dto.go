package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineInput línea de una orden nueva; el precio se toma del catálogo.
type OrderLineInput struct {
	ProductID string          `json:"product_id" validate:"required"`
	Qty       decimal.Decimal `json:"qty" validate:"required"`
}

// CreateOrderRequest entrada para crear una orden completa en una operación.
type CreateOrderRequest struct {
	Lines             []OrderLineInput `json:"lines" validate:"required,min=1"`
	PaymentMethod     string           `json:"payment_method"`
	PaymentStatus     string           `json:"payment_status"`
	FulfillmentStatus string           `json:"fulfillment_status"`
	CashReceived      *decimal.Decimal `json:"cash_received"`
	Change            *decimal.Decimal `json:"change"`
	Notes             string           `json:"notes"`
}

// UpdateOrderStatusRequest entrada para PATCH /api/orders/{id}/status.
// Los campos de pago son opcionales; si vienen, sobreescriben.
type UpdateOrderStatusRequest struct {
	FulfillmentStatus string           `json:"fulfillment_status" validate:"required"`
	PaymentStatus     *string          `json:"payment_status"`
	PaymentMethod     *string          `json:"payment_method"`
	CashReceived      *decimal.Decimal `json:"cash_received"`
	Change            *decimal.Decimal `json:"change"`
	PaidAt            *time.Time       `json:"paid_at"`
	ServedAt          *time.Time       `json:"served_at"`
}

// OrderLineResponse línea con el precio congelado al crear la orden.
type OrderLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Qty       decimal.Decimal `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse salida de una orden con sus líneas.
type OrderResponse struct {
	ID                string              `json:"id"`
	OrderNumber       string              `json:"order_number"`
	PaymentMethod     string              `json:"payment_method"`
	PaymentStatus     string              `json:"payment_status"`
	FulfillmentStatus string              `json:"fulfillment_status"`
	Total             decimal.Decimal     `json:"total"`
	CashReceived      *decimal.Decimal    `json:"cash_received"`
	Change            *decimal.Decimal    `json:"change"`
	Notes             string              `json:"notes,omitempty"`
	PaidAt            *time.Time          `json:"paid_at"`
	ServedAt          *time.Time          `json:"served_at"`
	CreatedAt         time.Time           `json:"created_at"`
	Lines             []OrderLineResponse `json:"lines"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
