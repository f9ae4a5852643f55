package repository

import "github.com/jhoicas/Comanda-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para los
// movimientos de stock. Solo inserta y lista: el libro es append-only.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error)
	// ListRecent lista movimientos de todos los ítems, el más nuevo primero,
	// con el nombre del ítem resuelto por join.
	ListRecent(limit, offset int) ([]*entity.StockMovement, error)
}
