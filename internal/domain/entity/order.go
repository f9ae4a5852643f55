package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago y de entrega de una orden. Ambos son monótonos:
// unpaid→paid y waiting→finished son las únicas transiciones hacia adelante.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"

	FulfillmentWaiting  = "waiting"
	FulfillmentFinished = "finished"

	PaymentMethodCash = "cash"
	PaymentMethodQR   = "qr_transfer"
)

// Order es una venta registrada. Total y los LineTotal se calculan una sola
// vez al crearla, con el precio del catálogo en ese instante, y nunca se
// recalculan. Las órdenes no se eliminan.
type Order struct {
	ID                string
	OrderNumber       string
	PaymentMethod     string
	PaymentStatus     string
	FulfillmentStatus string
	Total             decimal.Decimal
	CashReceived      *decimal.Decimal
	Change            *decimal.Decimal
	Notes             string
	PaidAt            *time.Time
	ServedAt          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Lines             []OrderLine
}

// OrderLine es una línea de la orden con el precio congelado al crearla.
type OrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Qty       decimal.Decimal
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// ValidPaymentStatus valida el estado de pago recibido del exterior.
func ValidPaymentStatus(s string) bool {
	return s == PaymentStatusUnpaid || s == PaymentStatusPaid
}

// ValidFulfillmentStatus valida el estado de entrega recibido del exterior.
func ValidFulfillmentStatus(s string) bool {
	return s == FulfillmentWaiting || s == FulfillmentFinished
}
