package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReserve es el snapshot diario de ingreso y reserva sugerida.
// Se reemplaza completo al recalcular el día (una fila por fecha).
type DailyReserve struct {
	ID      string
	Date    time.Time // solo la fecha es significativa
	Income  decimal.Decimal
	Reserve decimal.Decimal
}
