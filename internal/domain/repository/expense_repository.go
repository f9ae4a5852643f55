package repository

import "github.com/jhoicas/Comanda-api/internal/domain/entity"

// ExpenseRepository define el puerto de persistencia del registro de gastos.
type ExpenseRepository interface {
	Create(expense *entity.ExpenseEntry) error
	List(limit, offset int) ([]*entity.ExpenseEntry, error)
}
