package repository

import "github.com/jhoicas/Comanda-api/internal/domain/entity"

// DebtRepository define el puerto de persistencia de deudas y sus abonos.
type DebtRepository interface {
	Create(debt *entity.Debt) error
	// GetByID devuelve (nil, nil) cuando no hay coincidencia.
	GetByID(id string) (*entity.Debt, error)
	// List devuelve las deudas ordenadas por día de vencimiento.
	List() ([]*entity.Debt, error)
	CreatePayment(payment *entity.DebtPayment) error
	// ListPayments lista abonos, el más reciente primero, con el nombre de
	// la deuda resuelto por join.
	ListPayments(limit, offset int) ([]*entity.DebtPayment, error)
}
