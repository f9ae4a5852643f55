package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Comanda-api/internal/application/importer"
	"github.com/jhoicas/Comanda-api/internal/application/inventory"
	"github.com/jhoicas/Comanda-api/internal/application/ordering"
	"github.com/jhoicas/Comanda-api/internal/application/recipes"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// Un solo runner satisface los puertos transaccionales de cada módulo.
var (
	_ inventory.TxRunner = (*TxRunner)(nil)
	_ importer.TxRunner  = (*TxRunner)(nil)
	_ ordering.TxRunner  = (*TxRunner)(nil)
	_ recipes.TxRunner   = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con
// repositorios atados a esa tx; Commit si fn retorna nil, Rollback si no.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run transacción para el libro de stock y la importación por fila.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockItemRepository(tx), NewStockMovementRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrder transacción para crear una orden (snapshot de precios + insert).
func (r *TxRunner) RunOrder(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewOrderRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRecipe transacción para guardar receta (cabecera + líneas).
func (r *TxRunner) RunRecipe(ctx context.Context, fn func(recipeRepo repository.RecipeRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRecipeRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
