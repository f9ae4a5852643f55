package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseEntry es un gasto operativo registrado manualmente.
type ExpenseEntry struct {
	ID            string
	Category      string
	Description   string
	Amount        decimal.Decimal
	PaymentMethod string
	IncurredOn    time.Time
}
