package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt es una obligación recurrente (proveedor, préstamo, servicio) con su
// día de vencimiento dentro del mes. El saldo no se descuenta solo: los
// abonos se registran aparte como DebtPayment.
type Debt struct {
	ID         string
	Name       string
	Amount     decimal.Decimal // cuota mensual
	DueDay     int             // 1..31
	Type       string
	MinimumPay decimal.Decimal
	TotalDebt  decimal.Decimal
	Notes      string
	CreatedAt  time.Time
}

// DebtPayment es un abono registrado contra una deuda.
type DebtPayment struct {
	ID       string
	DebtID   string
	DebtName string // solo lectura, resuelto por join
	Amount   decimal.Decimal
	PaidAt   time.Time
}
