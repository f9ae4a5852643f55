package repository

import "github.com/jhoicas/Comanda-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para Recipe y sus líneas.
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	Update(recipe *entity.Recipe) error
	// ReplaceLines borra las líneas actuales de la receta e inserta las nuevas.
	ReplaceLines(recipeID string, lines []entity.RecipeLine) error
	// GetByProduct devuelve la receta del producto con sus líneas, o (nil, nil).
	GetByProduct(productID string) (*entity.Recipe, error)
	List() ([]*entity.Recipe, error)
}
