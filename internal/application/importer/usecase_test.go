package importer

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// --- fakes en memoria ---

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error              { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)  { return r.products[id], nil }
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

type fakeItemRepo struct {
	items map[string]*entity.StockItem
}

func (r *fakeItemRepo) Create(i *entity.StockItem) error             { r.items[i.ID] = i; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.StockItem, error) { return r.items[id], nil }
func (r *fakeItemRepo) GetByCode(code string) (*entity.StockItem, error) {
	for _, i := range r.items {
		if i.Code == code {
			return i, nil
		}
	}
	return nil, nil
}
func (r *fakeItemRepo) Update(i *entity.StockItem) error { r.items[i.ID] = i; return nil }
func (r *fakeItemRepo) ApplyDelta(id string, delta decimal.Decimal) (*entity.StockItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	item.StockQty = item.StockQty.Add(delta)
	cp := *item
	return &cp, nil
}
func (r *fakeItemRepo) List() ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, i)
	}
	return out, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByItem(string, int, int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *fakeMovementRepo) ListRecent(int, int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

type fakeTxRunner struct {
	itemRepo    *fakeItemRepo
	movRepo     *fakeMovementRepo
	productRepo *fakeProductRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.StockItemRepository, repository.StockMovementRepository, repository.ProductRepository) error) error {
	return fn(t.itemRepo, t.movRepo, t.productRepo)
}

type fixture struct {
	uc       *UseCase
	products *fakeProductRepo
	items    *fakeItemRepo
	movs     *fakeMovementRepo
}

func newFixture() *fixture {
	products := &fakeProductRepo{products: make(map[string]*entity.Product)}
	items := &fakeItemRepo{items: make(map[string]*entity.StockItem)}
	movs := &fakeMovementRepo{}
	tx := &fakeTxRunner{itemRepo: items, movRepo: movs, productRepo: products}
	return &fixture{
		uc:       NewUseCase(tx, products, items, uuid.NewString),
		products: products,
		items:    items,
		movs:     movs,
	}
}

func (f *fixture) productByName(name string) *entity.Product {
	for _, p := range f.products.products {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (f *fixture) itemByName(name string) *entity.StockItem {
	for _, i := range f.items.items {
		if i.Name == name {
			return i
		}
	}
	return nil
}

// --- tests ---

func TestImportInsertaProductoEItemEmparejados(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Import(context.Background(), "name,category,price,unit,stockQty\nLatte,Bebidas,120,cup,10\n")

	require.NoError(t, err)
	assert.Equal(t, 1, out.InsertedProducts)
	assert.Equal(t, 1, out.InsertedItems)
	assert.Equal(t, 0, out.SkippedRows)

	p := f.productByName("Latte")
	require.NotNil(t, p)
	assert.Equal(t, "Bebidas", p.Category)
	assert.True(t, dec("120").Equal(p.Price))
	assert.True(t, p.Active, "activo por defecto")
	assert.NotEmpty(t, p.SKU, "SKU generado cuando la columna falta")

	i := f.itemByName("Latte")
	require.NotNil(t, i)
	assert.Equal(t, "cup", i.Unit)
	assert.True(t, dec("10").Equal(i.StockQty))
}

func TestImportDefaultsCategoriaYUnidad(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Import(context.Background(), "name,price\nLatte,120\n")

	require.NoError(t, err)
	assert.Equal(t, "General", f.productByName("Latte").Category)
	assert.Equal(t, "unit", f.itemByName("Latte").Unit)
}

func TestImportAceptaAliasDeEncabezado(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Import(context.Background(), "Product Name,Sell Price,Qty,Group\nLatte,120,5,Bebidas\n")

	require.NoError(t, err)
	assert.Equal(t, 1, out.InsertedProducts, "los alias de columna deben resolverse")
	p := f.productByName("Latte")
	require.NotNil(t, p)
	assert.Equal(t, "Bebidas", p.Category)
	assert.True(t, dec("5").Equal(f.itemByName("Latte").StockQty))
}

func TestImportSegundaPasadaActualiza(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Import(context.Background(), "name,price,stockQty\nLatte,120,10\n")
	require.NoError(t, err)

	out, err := f.uc.Import(context.Background(), "name,price,stockQty\nLatte,150,4\n")

	require.NoError(t, err)
	assert.Equal(t, 0, out.InsertedProducts)
	assert.Equal(t, 1, out.UpdatedProducts, "misma identidad nombre+categoría: actualiza")
	assert.Equal(t, 1, out.UpdatedItems)
	assert.True(t, dec("150").Equal(f.productByName("Latte").Price))
	assert.True(t, dec("4").Equal(f.itemByName("Latte").StockQty))
}

func TestImportReconciliaCantidadPorMovimiento(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Import(context.Background(), "name,price,stockQty\nLatte,120,10\n")
	require.NoError(t, err)
	require.Empty(t, f.movs.movements, "el alta inicial no genera movimiento")

	_, err = f.uc.Import(context.Background(), "name,price,stockQty\nLatte,120,4\n")
	require.NoError(t, err)

	require.Len(t, f.movs.movements, 1, "la diferencia de cantidad entra por el libro")
	mov := f.movs.movements[0]
	assert.True(t, dec("-6").Equal(mov.Change), "delta = 4 - 10")
	assert.Equal(t, "import", mov.Reason)
}

func TestImportIdentidadPorSKUInsensibleAMayusculas(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Import(context.Background(), "name,sku,price\nLatte,CAFE-01,120\n")
	require.NoError(t, err)

	out, err := f.uc.Import(context.Background(), "name,sku,price\nLatte doble,cafe-01,150\n")

	require.NoError(t, err)
	assert.Equal(t, 1, out.UpdatedProducts, "SKU coincide con folding de mayúsculas")
	assert.Len(t, f.products.products, 1)
	p := f.productByName("Latte doble")
	require.NotNil(t, p, "la fila actualiza el nombre del producto existente")
}

func TestImportSaltaFilasMalformadas(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Import(context.Background(), "name,price\n,120\nLatte,doce\nTorta,80\n")

	require.NoError(t, err, "una fila mala no aborta el lote")
	assert.Equal(t, 2, out.SkippedRows, "nombre vacío y precio ilegible")
	assert.Equal(t, 1, out.InsertedProducts)
	assert.NotNil(t, f.productByName("Torta"))
}

func TestImportVacioEsError(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Import(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyImport)

	_, err = f.uc.Import(context.Background(), "name,price\n")
	assert.ErrorIs(t, err, domain.ErrEmptyImport, "solo encabezado no es un lote válido")
}

func TestImportCancelacionEntreFilas(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := f.uc.Import(ctx, "name,price\nLatte,120\n")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, out, "se devuelven los contadores de lo ya aplicado")
	assert.Equal(t, 0, out.InsertedProducts)
}
