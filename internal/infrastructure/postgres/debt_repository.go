package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

var _ repository.DebtRepository = (*DebtRepo)(nil)

const debtColumns = `id, name, amount, due_day, type, minimum_pay, total_debt, notes, created_at`

// DebtRepo implementación del puerto DebtRepository sobre PostgreSQL.
type DebtRepo struct {
	q Querier
}

// NewDebtRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDebtRepository(q Querier) *DebtRepo {
	return &DebtRepo{q: q}
}

// Create inserta la deuda.
func (r *DebtRepo) Create(debt *entity.Debt) error {
	query := `
		INSERT INTO debts (id, name, amount, due_day, type, minimum_pay, total_debt, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		debt.ID, debt.Name, debt.Amount, debt.DueDay, debt.Type,
		debt.MinimumPay, debt.TotalDebt, debt.Notes, debt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert debt: %w", err)
	}
	return nil
}

// GetByID obtiene la deuda, (nil, nil) si no existe.
func (r *DebtRepo) GetByID(id string) (*entity.Debt, error) {
	var d entity.Debt
	err := r.q.QueryRow(context.Background(), `SELECT `+debtColumns+` FROM debts WHERE id = $1`, id).Scan(
		&d.ID, &d.Name, &d.Amount, &d.DueDay, &d.Type, &d.MinimumPay, &d.TotalDebt, &d.Notes, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get debt: %w", err)
	}
	return &d, nil
}

// List lista las deudas por día de vencimiento.
func (r *DebtRepo) List() ([]*entity.Debt, error) {
	rows, err := r.q.Query(context.Background(), `SELECT `+debtColumns+` FROM debts ORDER BY due_day`)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Debt
	for rows.Next() {
		var d entity.Debt
		if err := rows.Scan(&d.ID, &d.Name, &d.Amount, &d.DueDay, &d.Type, &d.MinimumPay, &d.TotalDebt, &d.Notes, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan debt: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// CreatePayment inserta un abono.
func (r *DebtRepo) CreatePayment(payment *entity.DebtPayment) error {
	query := `
		INSERT INTO debt_payments (id, debt_id, amount, paid_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.DebtID, payment.Amount, payment.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("insert debt payment: %w", err)
	}
	return nil
}

// ListPayments lista abonos con el nombre de la deuda, el más nuevo primero.
func (r *DebtRepo) ListPayments(limit, offset int) ([]*entity.DebtPayment, error) {
	query := `
		SELECT p.id, p.debt_id, COALESCE(d.name, ''), p.amount, p.paid_at
		FROM debt_payments p
		LEFT JOIN debts d ON d.id = p.debt_id
		ORDER BY p.paid_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list debt payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.DebtPayment
	for rows.Next() {
		var p entity.DebtPayment
		if err := rows.Scan(&p.ID, &p.DebtID, &p.DebtName, &p.Amount, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("scan debt payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
