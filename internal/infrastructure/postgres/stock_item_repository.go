package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

const itemColumns = `id, code, name, unit, stock_qty, cost_per_unit, reorder_point, created_at, updated_at`

// StockItemRepo implementación del puerto StockItemRepository sobre
// PostgreSQL (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

// Create persiste un ítem nuevo.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO items (id, code, name, unit, stock_qty, cost_per_unit, reorder_point, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Unit, item.StockQty,
		item.CostPerUnit, item.ReorderPoint, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por id, (nil, nil) si no existe.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	return r.getBy(`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
}

// GetByCode obtiene un ítem por código, (nil, nil) si no existe.
func (r *StockItemRepo) GetByCode(code string) (*entity.StockItem, error) {
	return r.getBy(`SELECT `+itemColumns+` FROM items WHERE code = $1`, code)
}

func (r *StockItemRepo) getBy(query string, arg any) (*entity.StockItem, error) {
	var i entity.StockItem
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&i.ID, &i.Code, &i.Name, &i.Unit, &i.StockQty, &i.CostPerUnit, &i.ReorderPoint, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &i, nil
}

// Update actualiza los campos descriptivos. La cantidad no se toca aquí.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE items SET code = $2, name = $3, unit = $4, cost_per_unit = $5, reorder_point = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Unit, item.CostPerUnit, item.ReorderPoint, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// ApplyDelta suma delta a la cantidad en una sola sentencia atómica del
// motor: ajustes concurrentes sobre el mismo ítem no pierden actualizaciones.
func (r *StockItemRepo) ApplyDelta(id string, delta decimal.Decimal) (*entity.StockItem, error) {
	query := `
		UPDATE items SET stock_qty = stock_qty + $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + itemColumns
	var i entity.StockItem
	err := r.q.QueryRow(context.Background(), query, id, delta).Scan(
		&i.ID, &i.Code, &i.Name, &i.Unit, &i.StockQty, &i.CostPerUnit, &i.ReorderPoint, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("apply stock delta: %w", err)
	}
	return &i, nil
}

// List lista los ítems ordenados por nombre.
func (r *StockItemRepo) List() ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(), `SELECT `+itemColumns+` FROM items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		var i entity.StockItem
		if err := rows.Scan(&i.ID, &i.Code, &i.Name, &i.Unit, &i.StockQty, &i.CostPerUnit, &i.ReorderPoint, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
