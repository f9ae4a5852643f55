package inventory

import (
	"context"

	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El cambio de cantidad y su fila de auditoría
// comparten un solo dominio de fallo: o ambos quedan, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
