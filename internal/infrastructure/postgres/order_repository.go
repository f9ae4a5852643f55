package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, order_number, payment_method, payment_status, fulfillment_status, total, cash_received, change, notes, paid_at, served_at, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx). Las órdenes nunca se eliminan.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la orden y todas sus líneas. Devuelve domain.ErrDuplicate
// ante choque del número de orden para que el motor regenere y reintente.
func (r *OrderRepo) Create(order *entity.Order) error {
	ctx := context.Background()
	query := `
		INSERT INTO orders (id, order_number, payment_method, payment_status, fulfillment_status, total, cash_received, change, notes, paid_at, served_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.OrderNumber, order.PaymentMethod, order.PaymentStatus, order.FulfillmentStatus,
		order.Total, order.CashReceived, order.Change, order.Notes, order.PaidAt, order.ServedAt,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	for _, line := range order.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_lines (id, order_id, product_id, qty, unit_price, line_total)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			line.ID, line.OrderID, line.ProductID, line.Qty, line.UnitPrice, line.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la orden con sus líneas, (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	ctx := context.Background()
	var o entity.Order
	err := r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id).Scan(
		&o.ID, &o.OrderNumber, &o.PaymentMethod, &o.PaymentStatus, &o.FulfillmentStatus,
		&o.Total, &o.CashReceived, &o.Change, &o.Notes, &o.PaidAt, &o.ServedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	lines, err := r.linesFor(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

// UpdateStatus persiste una transición de estado. paid_at y served_at usan
// COALESCE sobre el valor ya persistido: una vez fijados no se mueven, con
// lo que los reintentos duplicados son inocuos a nivel de sentencia. El
// guard sobre updated_at evita que dos transiciones concurrentes se pisen
// los campos de efectivo: la que pierde recibe ErrConflict y relee.
func (r *OrderRepo) UpdateStatus(order *entity.Order, expectedUpdatedAt time.Time) error {
	ctx := context.Background()
	query := `
		UPDATE orders SET
			payment_method = $2,
			payment_status = $3,
			fulfillment_status = $4,
			cash_received = $5,
			change = $6,
			paid_at = COALESCE(paid_at, $7),
			served_at = COALESCE(served_at, $8),
			updated_at = $9
		WHERE id = $1 AND updated_at = $10`
	cmd, err := r.q.Exec(ctx, query,
		order.ID, order.PaymentMethod, order.PaymentStatus, order.FulfillmentStatus,
		order.CashReceived, order.Change, order.PaidAt, order.ServedAt, order.UpdatedAt,
		expectedUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, order.ID).Scan(&exists); err != nil {
			return fmt.Errorf("check order: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrConflict
	}
	return nil
}

// List lista órdenes con sus líneas, la más nueva primero.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.PaymentMethod, &o.PaymentStatus, &o.FulfillmentStatus,
			&o.Total, &o.CashReceived, &o.Change, &o.Notes, &o.PaidAt, &o.ServedAt, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		lines, err := r.linesFor(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Lines = lines
	}
	return list, nil
}

func (r *OrderRepo) linesFor(ctx context.Context, orderID string) ([]entity.OrderLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, product_id, qty, unit_price, line_total
		FROM order_lines WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Qty, &l.UnitPrice, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
