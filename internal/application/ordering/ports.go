package ordering

import (
	"context"

	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// TxRunner abre una transacción para crear una orden: el snapshot de precios
// y el insert de orden+líneas ocurren en la misma tx, de modo que un cambio
// de precio concurrente no puede producir una línea distinta de lo cobrado.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
