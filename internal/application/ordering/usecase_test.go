package ordering

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// --- fakes en memoria ---

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders         map[string]*entity.Order
	createCalls    int
	failDuplicates int    // las primeras n llamadas a Create devuelven ErrDuplicate
	beforeUpdate   func() // hook para simular un escritor concurrente
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.createCalls++
	if r.failDuplicates > 0 {
		r.failDuplicates--
		return domain.ErrDuplicate
	}
	for _, existing := range r.orders {
		if existing.OrderNumber == o.OrderNumber {
			return domain.ErrDuplicate
		}
	}
	cp := *o
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

// UpdateStatus emula la sentencia del almacén: COALESCE en las marcas de
// tiempo ya persistidas y guard optimista sobre updated_at.
func (r *fakeOrderRepo) UpdateStatus(o *entity.Order, expectedUpdatedAt time.Time) error {
	if r.beforeUpdate != nil {
		r.beforeUpdate()
	}
	stored, ok := r.orders[o.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if !stored.UpdatedAt.Equal(expectedUpdatedAt) {
		return domain.ErrConflict
	}
	stored.PaymentMethod = o.PaymentMethod
	stored.PaymentStatus = o.PaymentStatus
	stored.FulfillmentStatus = o.FulfillmentStatus
	stored.CashReceived = o.CashReceived
	stored.Change = o.Change
	if stored.PaidAt == nil {
		stored.PaidAt = o.PaidAt
	}
	if stored.ServedAt == nil {
		stored.ServedAt = o.ServedAt
	}
	stored.UpdatedAt = o.UpdatedAt
	return nil
}

func (r *fakeOrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

type fakeTxRunner struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func (t *fakeTxRunner) RunOrder(ctx context.Context, fn func(repository.ProductRepository, repository.OrderRepository) error) error {
	return fn(t.productRepo, t.orderRepo)
}

func product(id, name, price string) *entity.Product {
	return &entity.Product{ID: id, SKU: "SKU-" + id, Name: name, Category: "General", Price: dec(price), Active: true}
}

func newTestUseCase(products *fakeProductRepo, orders *fakeOrderRepo) *UseCase {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return NewUseCase(&fakeTxRunner{productRepo: products, orderRepo: orders}, orders, uuid.NewString, now)
}

// --- tests ---

func TestCreateCongelaPreciosYTotales(t *testing.T) {
	products := newFakeProductRepo(product("p1", "Latte", "50"), product("p2", "Torta", "100"))
	orders := newFakeOrderRepo()
	uc := newTestUseCase(products, orders)

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.OrderLineInput{
			{ProductID: "p1", Qty: dec("2")},
			{ProductID: "p2", Qty: dec("1")},
		},
	})

	require.NoError(t, err)
	assert.True(t, dec("200").Equal(out.Total), "total = 2*50 + 1*100")
	require.Len(t, out.Lines, 2)
	sum := decimal.Zero
	for _, l := range out.Lines {
		assert.True(t, l.UnitPrice.Mul(l.Qty).Equal(l.LineTotal), "lineTotal = qty * unitPrice")
		sum = sum.Add(l.LineTotal)
	}
	assert.True(t, sum.Equal(out.Total), "la suma de líneas es el total de la orden")
}

func TestCreateDefaultsPagoEfectivo(t *testing.T) {
	products := newFakeProductRepo(product("p1", "Latte", "200"))
	orders := newFakeOrderRepo()
	uc := newTestUseCase(products, orders)

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.OrderLineInput{{ProductID: "p1", Qty: dec("1")}},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMethodCash, out.PaymentMethod)
	assert.Equal(t, entity.PaymentStatusPaid, out.PaymentStatus)
	assert.Equal(t, entity.FulfillmentWaiting, out.FulfillmentStatus)
	require.NotNil(t, out.CashReceived)
	require.NotNil(t, out.Change)
	assert.True(t, dec("200").Equal(*out.CashReceived))
	assert.True(t, out.Change.IsZero())
	assert.NotNil(t, out.PaidAt, "orden creada pagada lleva paidAt")
}

func TestCreateCambioDePrecioNoAfectaOrdenesPrevias(t *testing.T) {
	latte := product("p1", "Latte", "50")
	products := newFakeProductRepo(latte)
	orders := newFakeOrderRepo()
	uc := newTestUseCase(products, orders)

	before, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.OrderLineInput{{ProductID: "p1", Qty: dec("1")}},
	})
	require.NoError(t, err)

	latte.Price = dec("80")

	after, err := uc.GetByID(before.ID)
	require.NoError(t, err)
	assert.True(t, dec("50").Equal(after.Total), "el total histórico queda congelado")
}

func TestCreateSinLineas(t *testing.T) {
	uc := newTestUseCase(newFakeProductRepo(), newFakeOrderRepo())

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateCantidadInvalida(t *testing.T) {
	uc := newTestUseCase(newFakeProductRepo(product("p1", "Latte", "50")), newFakeOrderRepo())

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.OrderLineInput{{ProductID: "p1", Qty: decimal.Zero}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateProductoInexistente(t *testing.T) {
	uc := newTestUseCase(newFakeProductRepo(), newFakeOrderRepo())

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.OrderLineInput{{ProductID: "nope", Qty: dec("1")}},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateReintentaNumeroDuplicado(t *testing.T) {
	products := newFakeProductRepo(product("p1", "Latte", "50"))
	orders := newFakeOrderRepo()
	orders.failDuplicates = 2
	uc := newTestUseCase(products, orders)

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.OrderLineInput{{ProductID: "p1", Qty: dec("1")}},
	})

	require.NoError(t, err, "un choque de número de orden no falla la orden")
	assert.Equal(t, 3, orders.createCalls, "dos reintentos y un éxito")
	assert.NotEmpty(t, out.OrderNumber)
}

func TestCreateAgotaReintentos(t *testing.T) {
	products := newFakeProductRepo(product("p1", "Latte", "50"))
	orders := newFakeOrderRepo()
	orders.failDuplicates = maxOrderNumberAttempts
	uc := newTestUseCase(products, orders)

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.OrderLineInput{{ProductID: "p1", Qty: dec("1")}},
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatusMarcaServedAtUnaVez(t *testing.T) {
	products := newFakeProductRepo(product("p1", "Latte", "50"))
	orders := newFakeOrderRepo()
	uc := newTestUseCase(products, orders)

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.OrderLineInput{{ProductID: "p1", Qty: dec("1")}},
	})
	require.NoError(t, err)

	first, err := uc.UpdateStatus(context.Background(), created.ID, dto.UpdateOrderStatusRequest{
		FulfillmentStatus: entity.FulfillmentFinished,
	})
	require.NoError(t, err)
	require.NotNil(t, first.ServedAt)

	// Reintento de red: repetir la misma transición no mueve la marca.
	second, err := uc.UpdateStatus(context.Background(), created.ID, dto.UpdateOrderStatusRequest{
		FulfillmentStatus: entity.FulfillmentFinished,
	})
	require.NoError(t, err)
	require.NotNil(t, second.ServedAt)
	assert.True(t, first.ServedAt.Equal(*second.ServedAt), "servedAt se fija solo la primera vez")
}

func TestUpdateStatusPagoPosterior(t *testing.T) {
	products := newFakeProductRepo(product("p1", "Latte", "50"))
	orders := newFakeOrderRepo()
	uc := newTestUseCase(products, orders)

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines:         []dto.OrderLineInput{{ProductID: "p1", Qty: dec("1")}},
		PaymentStatus: entity.PaymentStatusUnpaid,
	})
	require.NoError(t, err)
	assert.Nil(t, created.PaidAt, "orden no pagada nace sin paidAt")

	paid := entity.PaymentStatusPaid
	out, err := uc.UpdateStatus(context.Background(), created.ID, dto.UpdateOrderStatusRequest{
		FulfillmentStatus: entity.FulfillmentWaiting,
		PaymentStatus:     &paid,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, out.PaymentStatus)
	assert.NotNil(t, out.PaidAt, "la transición a pagado fija paidAt")
}

func TestUpdateStatusOrdenInexistente(t *testing.T) {
	uc := newTestUseCase(newFakeProductRepo(), newFakeOrderRepo())

	_, err := uc.UpdateStatus(context.Background(), "nope", dto.UpdateOrderStatusRequest{
		FulfillmentStatus: entity.FulfillmentFinished,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatusNoPierdeEscrituraConcurrente(t *testing.T) {
	products := newFakeProductRepo(product("p1", "Latte", "50"))
	orders := newFakeOrderRepo()
	uc := newTestUseCase(products, orders)

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines:         []dto.OrderLineInput{{ProductID: "p1", Qty: dec("1")}},
		PaymentStatus: entity.PaymentStatusUnpaid,
	})
	require.NoError(t, err)

	// Entre la lectura y la escritura, otro caller fija cashReceived.
	recibidoAjeno := dec("100")
	orders.beforeUpdate = func() {
		orders.beforeUpdate = nil
		stored := orders.orders[created.ID]
		stored.CashReceived = &recibidoAjeno
		stored.UpdatedAt = stored.UpdatedAt.Add(time.Minute)
	}

	cambio := dec("50")
	out, err := uc.UpdateStatus(context.Background(), created.ID, dto.UpdateOrderStatusRequest{
		FulfillmentStatus: entity.FulfillmentWaiting,
		Change:            &cambio,
	})

	require.NoError(t, err, "el guard fallido se resuelve releyendo y reaplicando")
	require.NotNil(t, out.CashReceived)
	assert.True(t, recibidoAjeno.Equal(*out.CashReceived), "la escritura concurrente no se pisa")
	require.NotNil(t, out.Change)
	assert.True(t, cambio.Equal(*out.Change), "la transición propia también queda")
}

func TestUpdateStatusEstadoInvalido(t *testing.T) {
	uc := newTestUseCase(newFakeProductRepo(), newFakeOrderRepo())

	_, err := uc.UpdateStatus(context.Background(), "x", dto.UpdateOrderStatusRequest{
		FulfillmentStatus: "burned",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
