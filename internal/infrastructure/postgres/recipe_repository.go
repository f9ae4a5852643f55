package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

const recipeColumns = `id, product_id, name, notes, yield_qty, yield_unit, created_at, updated_at`

// RecipeRepo implementación del puerto RecipeRepository sobre PostgreSQL
// (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste la cabecera de la receta.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	query := `
		INSERT INTO recipes (id, product_id, name, notes, yield_qty, yield_unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.ProductID, recipe.Name, recipe.Notes, recipe.YieldQty, recipe.YieldUnit,
		recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}
	return nil
}

// Update actualiza la cabecera de la receta.
func (r *RecipeRepo) Update(recipe *entity.Recipe) error {
	query := `
		UPDATE recipes SET name = $2, notes = $3, yield_qty = $4, yield_unit = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.Name, recipe.Notes, recipe.YieldQty, recipe.YieldUnit, recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}

// ReplaceLines borra las líneas actuales e inserta las nuevas.
func (r *RecipeRepo) ReplaceLines(recipeID string, lines []entity.RecipeLine) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM recipe_lines WHERE recipe_id = $1`, recipeID); err != nil {
		return fmt.Errorf("delete recipe lines: %w", err)
	}
	for _, line := range lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO recipe_lines (id, recipe_id, item_id, qty)
			VALUES ($1, $2, $3, $4)`,
			line.ID, line.RecipeID, line.ItemID, line.Qty,
		)
		if err != nil {
			return fmt.Errorf("insert recipe line: %w", err)
		}
	}
	return nil
}

// GetByProduct obtiene la receta del producto con líneas, (nil, nil) si no hay.
func (r *RecipeRepo) GetByProduct(productID string) (*entity.Recipe, error) {
	ctx := context.Background()
	var rec entity.Recipe
	err := r.q.QueryRow(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE product_id = $1`, productID).Scan(
		&rec.ID, &rec.ProductID, &rec.Name, &rec.Notes, &rec.YieldQty, &rec.YieldUnit, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	lines, err := r.linesFor(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.Lines = lines
	return &rec, nil
}

// List lista todas las recetas con sus líneas.
func (r *RecipeRepo) List() ([]*entity.Recipe, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Name, &rec.Notes, &rec.YieldQty, &rec.YieldUnit, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, rec := range list {
		lines, err := r.linesFor(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		rec.Lines = lines
	}
	return list, nil
}

func (r *RecipeRepo) linesFor(ctx context.Context, recipeID string) ([]entity.RecipeLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, recipe_id, item_id, qty
		FROM recipe_lines WHERE recipe_id = $1 ORDER BY id`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list recipe lines: %w", err)
	}
	defer rows.Close()
	var lines []entity.RecipeLine
	for rows.Next() {
		var l entity.RecipeLine
		if err := rows.Scan(&l.ID, &l.RecipeID, &l.ItemID, &l.Qty); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
