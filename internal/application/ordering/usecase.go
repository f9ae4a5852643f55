package ordering

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// Intentos máximos de regeneración del número de orden ante choque 23505.
const maxOrderNumberAttempts = 5

// Intentos máximos de una transición de estado ante escritores concurrentes.
const maxStatusUpdateAttempts = 3

// UseCase es el motor de órdenes: creación con snapshot de precios y la
// máquina de estados de pago/entrega. Una orden nace completa en una
// operación y solo muta a través de UpdateStatus; nunca se elimina.
type UseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	newID     func() string
	now       func() time.Time
}

// NewUseCase construye el motor de órdenes.
func NewUseCase(txRunner TxRunner, orderRepo repository.OrderRepository, newID func() string, now func() time.Time) *UseCase {
	if now == nil {
		now = time.Now
	}
	return &UseCase{txRunner: txRunner, orderRepo: orderRepo, newID: newID, now: now}
}

// Create crea una orden completa: resuelve productos, congela precios,
// deriva campos de efectivo y persiste orden+líneas como unidad atómica.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if l.ProductID == "" || l.Qty.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = entity.PaymentMethodCash
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = entity.PaymentStatusPaid
	}
	if in.FulfillmentStatus == "" {
		in.FulfillmentStatus = entity.FulfillmentWaiting
	}
	if !entity.ValidPaymentStatus(in.PaymentStatus) || !entity.ValidFulfillmentStatus(in.FulfillmentStatus) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Order
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		now := uc.now()
		order := &entity.Order{
			ID:                uc.newID(),
			OrderNumber:       NewOrderNumber(now),
			PaymentMethod:     in.PaymentMethod,
			PaymentStatus:     in.PaymentStatus,
			FulfillmentStatus: in.FulfillmentStatus,
			Notes:             in.Notes,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		err := uc.txRunner.RunOrder(ctx, func(
			productRepo repository.ProductRepository,
			orderRepo repository.OrderRepository,
		) error {
			// Snapshot de precios dentro de la tx: un cambio de precio
			// concurrente no puede colarse entre la lectura y el insert.
			total := decimal.Zero
			lines := make([]entity.OrderLine, 0, len(in.Lines))
			for _, l := range in.Lines {
				product, err := productRepo.GetByID(l.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					return domain.ErrNotFound
				}
				lineTotal := product.Price.Mul(l.Qty)
				lines = append(lines, entity.OrderLine{
					ID:        uc.newID(),
					OrderID:   order.ID,
					ProductID: l.ProductID,
					Qty:       l.Qty,
					UnitPrice: product.Price,
					LineTotal: lineTotal,
				})
				total = total.Add(lineTotal)
			}
			order.Total = total
			order.Lines = lines
			order.CashReceived, order.Change = DeriveCashFields(total, in.PaymentStatus, in.PaymentMethod, in.CashReceived, in.Change)
			if in.PaymentStatus == entity.PaymentStatusPaid {
				paidAt := now
				order.PaidAt = &paidAt
			}
			return orderRepo.Create(order)
		})
		if err == nil {
			created = order
			break
		}
		if errors.Is(err, domain.ErrDuplicate) {
			// Choque de número de orden: regenerar y reintentar la tx completa.
			continue
		}
		return nil, err
	}
	if created == nil {
		return nil, domain.ErrConflict
	}
	return toOrderResponse(created), nil
}

// UpdateStatus aplica una transición de estado. Es idempotente ante
// reintentos: paidAt/servedAt se fijan solo la primera vez (COALESCE en el
// almacén), y los campos de efectivo solo cambian si vienen explícitos.
// Contra escritores concurrentes el ciclo leer-modificar-escribir va con
// bloqueo optimista: si el guard falla se relee y se reaplica la transición.
func (uc *UseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if !entity.ValidFulfillmentStatus(in.FulfillmentStatus) {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentStatus != nil && !entity.ValidPaymentStatus(*in.PaymentStatus) {
		return nil, domain.ErrInvalidInput
	}
	for attempt := 0; attempt < maxStatusUpdateAttempts; attempt++ {
		order, err := uc.orderRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, domain.ErrNotFound
		}

		now := uc.now()
		expectedUpdatedAt := order.UpdatedAt
		order.FulfillmentStatus = in.FulfillmentStatus
		if in.PaymentStatus != nil {
			order.PaymentStatus = *in.PaymentStatus
		}
		if in.PaymentMethod != nil {
			order.PaymentMethod = *in.PaymentMethod
		}
		if in.CashReceived != nil {
			order.CashReceived = in.CashReceived
		}
		if in.Change != nil {
			order.Change = in.Change
		}
		// Candidatos de marca de tiempo; el repositorio conserva el valor ya
		// persistido si la columna no está vacía (reinvocar "finished" no
		// mueve servedAt ni produce efectos secundarios).
		if in.ServedAt != nil {
			order.ServedAt = in.ServedAt
		} else if in.FulfillmentStatus == entity.FulfillmentFinished && order.ServedAt == nil {
			order.ServedAt = &now
		}
		if in.PaidAt != nil {
			order.PaidAt = in.PaidAt
		} else if in.PaymentStatus != nil && *in.PaymentStatus == entity.PaymentStatusPaid && order.PaidAt == nil {
			order.PaidAt = &now
		}
		order.UpdatedAt = now

		err = uc.orderRepo.UpdateStatus(order, expectedUpdatedAt)
		if errors.Is(err, domain.ErrConflict) {
			// Otro escritor ganó: releer el estado fresco y reaplicar.
			continue
		}
		if err != nil {
			return nil, err
		}
		// Releer para devolver lo que quedó persistido (COALESCE incluido).
		updated, err := uc.orderRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, domain.ErrNotFound
		}
		return toOrderResponse(updated), nil
	}
	return nil, domain.ErrConflict
}

// GetByID obtiene una orden con sus líneas.
func (uc *UseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List lista órdenes, la más nueva primero.
func (uc *UseCase) List(page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.orderRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.OrderListResponse{
		Items: make([]dto.OrderResponse, 0, len(orders)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, o := range orders {
		out.Items = append(out.Items, *toOrderResponse(o))
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Qty:       l.Qty,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		})
	}
	return &dto.OrderResponse{
		ID:                o.ID,
		OrderNumber:       o.OrderNumber,
		PaymentMethod:     o.PaymentMethod,
		PaymentStatus:     o.PaymentStatus,
		FulfillmentStatus: o.FulfillmentStatus,
		Total:             o.Total,
		CashReceived:      o.CashReceived,
		Change:            o.Change,
		Notes:             o.Notes,
		PaidAt:            o.PaidAt,
		ServedAt:          o.ServedAt,
		CreatedAt:         o.CreatedAt,
		Lines:             lines,
	}
}
