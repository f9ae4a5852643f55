package repository

import (
	"time"

	"github.com/jhoicas/Comanda-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y OrderLine.
// Las órdenes nunca se eliminan.
type OrderRepository interface {
	// Create inserta la orden y todas sus líneas. Devuelve domain.ErrDuplicate
	// si el número de orden ya existe (el caller regenera y reintenta).
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// UpdateStatus persiste una transición de estado con bloqueo optimista:
	// solo escribe si updated_at sigue siendo expectedUpdatedAt; si otro
	// escritor se adelantó devuelve domain.ErrConflict (el caller relee y
	// reaplica). PaidAt y ServedAt se escriben con COALESCE: si la columna
	// ya tiene valor se conserva, así los reintentos de red son idempotentes
	// a nivel de sentencia.
	UpdateStatus(order *entity.Order, expectedUpdatedAt time.Time) error
	List(limit, offset int) ([]*entity.Order, error)
}
