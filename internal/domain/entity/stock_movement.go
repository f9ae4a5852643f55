package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement es el registro inmutable de un cambio de cantidad de un ítem.
// Solo se inserta; nunca se actualiza ni se borra (pista de auditoría).
type StockMovement struct {
	ID        string
	ItemID    string
	Change    decimal.Decimal // con signo: positivo entrada, negativo salida
	Reason    string
	CreatedAt time.Time

	// ItemName solo se llena en lecturas con join; no se persiste.
	ItemName string
}
