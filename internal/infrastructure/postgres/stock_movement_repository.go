package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository sobre
// PostgreSQL. El libro es append-only: no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta un movimiento.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, item_id, change, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ItemID, movement.Change, movement.Reason, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByItem lista los movimientos de un ítem, el más nuevo primero.
func (r *StockMovementRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, item_id, change, reason, created_at
		FROM stock_movements WHERE item_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Change, &m.Reason, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListRecent lista movimientos de todos los ítems con el nombre resuelto.
func (r *StockMovementRepo) ListRecent(limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.item_id, m.change, m.reason, m.created_at, COALESCE(i.name, '')
		FROM stock_movements m
		LEFT JOIN items i ON i.id = m.item_id
		ORDER BY m.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Change, &m.Reason, &m.CreatedAt, &m.ItemName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
