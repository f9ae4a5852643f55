package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDebtRequest entrada para registrar una deuda recurrente.
type CreateDebtRequest struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	DueDay     int             `json:"due_day"`
	Type       string          `json:"type"`
	MinimumPay decimal.Decimal `json:"minimum_pay"`
	TotalDebt  decimal.Decimal `json:"total_debt"`
	Notes      string          `json:"notes"`
}

// PayDebtRequest entrada para abonar a una deuda.
type PayDebtRequest struct {
	DebtID string          `json:"debt_id"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt *time.Time      `json:"paid_at"`
}

// DebtResponse salida de una deuda.
type DebtResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	DueDay     int             `json:"due_day"`
	Type       string          `json:"type"`
	MinimumPay decimal.Decimal `json:"minimum_pay"`
	TotalDebt  decimal.Decimal `json:"total_debt"`
	Notes      string          `json:"notes,omitempty"`
}

// DebtPaymentResponse abono con el nombre de la deuda resuelto.
type DebtPaymentResponse struct {
	ID       string          `json:"id"`
	DebtID   string          `json:"debt_id"`
	DebtName string          `json:"debt_name,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	PaidAt   time.Time       `json:"paid_at"`
}
