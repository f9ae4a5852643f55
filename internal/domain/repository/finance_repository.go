package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/domain/entity"
)

// FinanceRepository expone las lecturas agregadas y el snapshot de reserva.
type FinanceRepository interface {
	// IncomeForDate suma el total de las órdenes creadas en esa fecha.
	IncomeForDate(date time.Time) (decimal.Decimal, error)
	// ReplaceDailyReserve reemplaza el snapshot de la fecha (una fila por día).
	ReplaceDailyReserve(reserve *entity.DailyReserve) error
	// MonthReserveTotal suma las reservas del mes de la fecha dada.
	MonthReserveTotal(date time.Time) (decimal.Decimal, error)
}
