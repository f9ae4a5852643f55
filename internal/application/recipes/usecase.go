package recipes

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/costing"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// UseCase guarda recetas y proyecta su costo unitario bajo demanda.
// El costo nunca se cachea: cada lectura recalcula contra el almacén para
// que un cambio de costo de insumo se refleje de inmediato (sin tocar
// jamás los totales de órdenes históricas, que están congelados).
type UseCase struct {
	txRunner    TxRunner
	recipeRepo  repository.RecipeRepository
	productRepo repository.ProductRepository
	itemRepo    repository.StockItemRepository
	newID       func() string
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, recipeRepo repository.RecipeRepository, productRepo repository.ProductRepository, itemRepo repository.StockItemRepository, newID func() string) *UseCase {
	return &UseCase{txRunner: txRunner, recipeRepo: recipeRepo, productRepo: productRepo, itemRepo: itemRepo, newID: newID}
}

// Save crea o reemplaza la receta del producto (a lo sumo una activa por
// producto). Cabecera y líneas se escriben en la misma transacción.
func (uc *UseCase) Save(ctx context.Context, productID string, in dto.SaveRecipeRequest) (*dto.RecipeResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.YieldQty.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if l.ItemID == "" || l.Qty.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	yieldUnit := in.YieldUnit
	if yieldUnit == "" {
		yieldUnit = "unit"
	}
	name := in.Name
	if name == "" {
		name = fmt.Sprintf("Receta de %s", product.Name)
	}

	var saved *entity.Recipe
	err = uc.txRunner.RunRecipe(ctx, func(recipeRepo repository.RecipeRepository) error {
		now := time.Now()
		recipe, err := recipeRepo.GetByProduct(productID)
		if err != nil {
			return err
		}
		if recipe == nil {
			recipe = &entity.Recipe{ID: uc.newID(), ProductID: productID, CreatedAt: now}
			recipe.Name = name
			recipe.Notes = in.Notes
			recipe.YieldQty = in.YieldQty
			recipe.YieldUnit = yieldUnit
			recipe.UpdatedAt = now
			if err := recipeRepo.Create(recipe); err != nil {
				return err
			}
		} else {
			recipe.Name = name
			recipe.Notes = in.Notes
			recipe.YieldQty = in.YieldQty
			recipe.YieldUnit = yieldUnit
			recipe.UpdatedAt = now
			if err := recipeRepo.Update(recipe); err != nil {
				return err
			}
		}
		lines := make([]entity.RecipeLine, 0, len(in.Lines))
		for _, l := range in.Lines {
			lines = append(lines, entity.RecipeLine{
				ID:       uc.newID(),
				RecipeID: recipe.ID,
				ItemID:   l.ItemID,
				Qty:      l.Qty,
			})
		}
		if err := recipeRepo.ReplaceLines(recipe.ID, lines); err != nil {
			return err
		}
		recipe.Lines = lines
		saved = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toRecipeResponse(saved), nil
}

// GetByProduct devuelve la receta del producto con sus líneas enriquecidas.
func (uc *UseCase) GetByProduct(productID string) (*dto.RecipeResponse, error) {
	recipe, err := uc.recipeRepo.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toRecipeResponse(recipe), nil
}

// List lista todas las recetas.
func (uc *UseCase) List() ([]dto.RecipeResponse, error) {
	all, err := uc.recipeRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeResponse, 0, len(all))
	for _, r := range all {
		out = append(out, *uc.toRecipeResponse(r))
	}
	return out, nil
}

// UnitCost calcula el costo por unidad producida de la receta del producto.
// Si un ítem referenciado ya no existe aporta 0 y el resultado se marca
// parcial: el caller decide si lo muestra, no se falla.
func (uc *UseCase) UnitCost(productID string) (*dto.UnitCostResponse, error) {
	recipe, err := uc.recipeRepo.GetByProduct(productID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrNotFound
	}
	lines := make([]costing.LineCost, 0, len(recipe.Lines))
	for _, l := range recipe.Lines {
		item, err := uc.itemRepo.GetByID(l.ItemID)
		if err != nil {
			return nil, err
		}
		lc := costing.LineCost{Qty: l.Qty}
		if item != nil {
			lc.CostPerUnit = item.CostPerUnit
			lc.Known = true
		}
		lines = append(lines, lc)
	}
	batch, _ := costing.BatchCost(lines)
	unit, partial := costing.UnitCost(lines, recipe.YieldQty)
	return &dto.UnitCostResponse{
		ProductID: productID,
		BatchCost: batch,
		UnitCost:  unit,
		YieldQty:  recipe.YieldQty,
		Partial:   partial,
	}, nil
}

func (uc *UseCase) toRecipeResponse(r *entity.Recipe) *dto.RecipeResponse {
	lines := make([]dto.RecipeLineResponse, 0, len(r.Lines))
	for _, l := range r.Lines {
		line := dto.RecipeLineResponse{ItemID: l.ItemID, Qty: l.Qty}
		if item, err := uc.itemRepo.GetByID(l.ItemID); err == nil && item != nil {
			line.ItemName = item.Name
			line.Unit = item.Unit
			line.CostPerUnit = item.CostPerUnit
		}
		lines = append(lines, line)
	}
	return &dto.RecipeResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		Name:      r.Name,
		Notes:     r.Notes,
		YieldQty:  r.YieldQty,
		YieldUnit: r.YieldUnit,
		Lines:     lines,
	}
}
