package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllocationRule reparte un porcentaje del ingreso hacia un destino
// (reserva, deuda, reinversión). Las reglas inactivas se conservan.
type AllocationRule struct {
	ID         string
	Name       string
	RuleType   string
	Percentage decimal.Decimal // 0..100
	Target     string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
