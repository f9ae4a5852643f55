package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReserveTodayResponse ingreso del día y reserva sugerida ya persistida.
type ReserveTodayResponse struct {
	Date           string          `json:"date"` // YYYY-MM-DD
	Income         decimal.Decimal `json:"income"`
	Reserve        decimal.Decimal `json:"reserve"`
	MonthCollected decimal.Decimal `json:"month_collected"`
}

// CreateExpenseRequest entrada para registrar un gasto.
type CreateExpenseRequest struct {
	Category      string          `json:"category" validate:"required"`
	Description   string          `json:"description" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"payment_method"`
	IncurredOn    *time.Time      `json:"incurred_on"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	IncurredOn    time.Time       `json:"incurred_on"`
}

// CreateAllocationRuleRequest entrada para crear una regla de reparto.
type CreateAllocationRuleRequest struct {
	Name       string          `json:"name"`
	RuleType   string          `json:"rule_type"`
	Percentage decimal.Decimal `json:"percentage"`
	Target     string          `json:"target"`
	Active     *bool           `json:"active"`
}

// UpdateAllocationRuleRequest entrada parcial para actualizar una regla.
type UpdateAllocationRuleRequest struct {
	Name       *string          `json:"name"`
	RuleType   *string          `json:"rule_type"`
	Percentage *decimal.Decimal `json:"percentage"`
	Target     *string          `json:"target"`
	Active     *bool            `json:"active"`
}

// AllocationRuleResponse salida de una regla de reparto.
type AllocationRuleResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	RuleType   string          `json:"rule_type"`
	Percentage decimal.Decimal `json:"percentage"`
	Target     string          `json:"target"`
	Active     bool            `json:"active"`
}
