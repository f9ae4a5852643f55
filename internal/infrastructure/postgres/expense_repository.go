package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del registro de gastos sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create inserta un gasto.
func (r *ExpenseRepo) Create(expense *entity.ExpenseEntry) error {
	query := `
		INSERT INTO expense_log (id, category, description, amount, payment_method, incurred_on)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Category, expense.Description, expense.Amount, expense.PaymentMethod, expense.IncurredOn,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// List lista gastos, el más reciente primero.
func (r *ExpenseRepo) List(limit, offset int) ([]*entity.ExpenseEntry, error) {
	query := `
		SELECT id, category, description, amount, payment_method, incurred_on
		FROM expense_log ORDER BY incurred_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseEntry
	for rows.Next() {
		var e entity.ExpenseEntry
		if err := rows.Scan(&e.ID, &e.Category, &e.Description, &e.Amount, &e.PaymentMethod, &e.IncurredOn); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
