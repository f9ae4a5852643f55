package recipes

import (
	"context"

	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// TxRunner abre una transacción para guardar una receta: el upsert de la
// cabecera y el reemplazo de líneas comparten un solo dominio de fallo.
type TxRunner interface {
	RunRecipe(ctx context.Context, fn func(recipeRepo repository.RecipeRepository) error) error
}
