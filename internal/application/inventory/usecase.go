package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// UseCase es el libro de stock: ajustes atómicos con auditoría y CRUD de
// ítems. Un ajuste nunca bloquea a otro sobre ítems distintos.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.StockItemRepository
	movRepo  repository.StockMovementRepository
	newID    func() string
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, itemRepo repository.StockItemRepository, movRepo repository.StockMovementRepository, newID func() string) *UseCase {
	return &UseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo, newID: newID}
}

// Adjust aplica un delta con signo a la cantidad del ítem y registra un
// movimiento, ambos en una transacción. El incremento es una sola sentencia
// atómica del almacén: ajustes concurrentes sobre el mismo ítem no pierden
// actualizaciones. La cantidad puede quedar negativa: la sobreventa se
// señala, no se bloquea.
func (uc *UseCase) Adjust(ctx context.Context, itemID string, delta decimal.Decimal, reason string) (*dto.ItemResponse, error) {
	if itemID == "" || delta.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.StockItem
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		item, err := itemRepo.ApplyDelta(itemID, delta)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		mov := &entity.StockMovement{
			ID:        uc.newID(),
			ItemID:    itemID,
			Change:    delta,
			Reason:    reason,
			CreatedAt: time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// CreateItem da de alta un ítem. Si no viene código se genera desde el nombre.
func (uc *UseCase) CreateItem(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.StockQty.LessThan(decimal.Zero) || in.CostPerUnit.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	code := in.Code
	if code == "" {
		code = GenerateItemCode(in.Name)
	} else if existing, _ := uc.itemRepo.GetByCode(code); existing != nil {
		return nil, domain.ErrDuplicate
	}
	unit := in.Unit
	if unit == "" {
		unit = "unit"
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:           uc.newID(),
		Code:         code,
		Name:         in.Name,
		Unit:         unit,
		StockQty:     in.StockQty,
		CostPerUnit:  in.CostPerUnit,
		ReorderPoint: in.ReorderPoint,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// UpdateItem actualiza los campos descriptivos del ítem. La cantidad en stock
// solo cambia vía Adjust.
func (uc *UseCase) UpdateItem(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil && *in.Code != item.Code {
		other, _ := uc.itemRepo.GetByCode(*in.Code)
		if other != nil && other.ID != item.ID {
			return nil, domain.ErrDuplicate
		}
		item.Code = *in.Code
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = *in.Name
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.CostPerUnit != nil {
		if in.CostPerUnit.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.CostPerUnit = *in.CostPerUnit
	}
	if in.ReorderPoint != nil {
		item.ReorderPoint = *in.ReorderPoint
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista los ítems del almacén (proyección de solo lectura).
func (uc *UseCase) List() ([]dto.ItemResponse, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// MovementsForItem lista la auditoría de un ítem, la más nueva primero.
func (uc *UseCase) MovementsForItem(itemID string, page dto.PageRequest) ([]dto.MovementResponse, error) {
	page.DefaultPage()
	movs, err := uc.movRepo.ListByItem(itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movs), nil
}

// Movements lista movimientos recientes de todos los ítems.
func (uc *UseCase) Movements(page dto.PageRequest) ([]dto.MovementResponse, error) {
	page.DefaultPage()
	movs, err := uc.movRepo.ListRecent(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movs), nil
}

func toItemResponse(i *entity.StockItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:           i.ID,
		Code:         i.Code,
		Name:         i.Name,
		Unit:         i.Unit,
		StockQty:     i.StockQty,
		CostPerUnit:  i.CostPerUnit,
		ReorderPoint: i.ReorderPoint,
		LowStock:     i.BelowReorderPoint(),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func toMovementResponses(movs []*entity.StockMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			ItemID:    m.ItemID,
			ItemName:  m.ItemName,
			Change:    m.Change,
			Reason:    m.Reason,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}
