package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo lecturas agregadas sobre órdenes y snapshot de reserva diaria.
type FinanceRepo struct {
	q Querier
}

// NewFinanceRepository construye el adaptador.
func NewFinanceRepository(q Querier) *FinanceRepo {
	return &FinanceRepo{q: q}
}

// IncomeForDate suma el total de las órdenes creadas en la fecha dada.
func (r *FinanceRepo) IncomeForDate(date time.Time) (decimal.Decimal, error) {
	var income decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total), 0) FROM orders WHERE created_at::date = $1::date`,
		date,
	).Scan(&income)
	if err != nil {
		return decimal.Zero, fmt.Errorf("income for date: %w", err)
	}
	return income, nil
}

// ReplaceDailyReserve reemplaza el snapshot del día (una fila por fecha).
func (r *FinanceRepo) ReplaceDailyReserve(reserve *entity.DailyReserve) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM daily_reserve WHERE date = $1::date`, reserve.Date); err != nil {
		return fmt.Errorf("delete daily reserve: %w", err)
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO daily_reserve (id, date, income, reserve) VALUES ($1, $2::date, $3, $4)`,
		reserve.ID, reserve.Date, reserve.Income, reserve.Reserve,
	)
	if err != nil {
		return fmt.Errorf("insert daily reserve: %w", err)
	}
	return nil
}

// MonthReserveTotal suma las reservas del mes de la fecha dada.
func (r *FinanceRepo) MonthReserveTotal(date time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(reserve), 0) FROM daily_reserve WHERE date_trunc('month', date) = date_trunc('month', $1::date)`,
		date,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("month reserve total: %w", err)
	}
	return total, nil
}
