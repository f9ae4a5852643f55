package catalog

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

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

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return domain.ErrDuplicate
		}
	}
	r.products[p.ID] = p
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }
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

func existingProduct(id, sku, name string) *entity.Product {
	return &entity.Product{
		ID: id, SKU: sku, Name: name, Category: "General",
		Price: dec("10"), Active: true,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
}

func TestCreateGeneraSKUDesdeNombre(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo(), uuid.NewString)

	out, err := uc.Create(dto.CreateProductRequest{Name: "Latte Grande", Price: dec("120")})

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^LATTEG-[0-9A-F]{6}$`), out.SKU)
	assert.Equal(t, "General", out.Category, "categoría por defecto")
	assert.True(t, out.Active, "los productos nacen visibles")
}

func TestCreateSKUExplicitoDuplicado(t *testing.T) {
	repo := newFakeProductRepo(existingProduct("p1", "CAFE-01", "Café"))
	uc := NewUseCase(repo, uuid.NewString)

	_, err := uc.Create(dto.CreateProductRequest{SKU: "CAFE-01", Name: "Otro café", Price: dec("5")})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateNombreVacio(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo(), uuid.NewString)

	_, err := uc.Create(dto.CreateProductRequest{Price: dec("5")})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreatePrecioNegativo(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo(), uuid.NewString)

	_, err := uc.Create(dto.CreateProductRequest{Name: "Latte", Price: dec("-1")})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateParcial(t *testing.T) {
	repo := newFakeProductRepo(existingProduct("p1", "CAFE-01", "Café"))
	uc := NewUseCase(repo, uuid.NewString)

	price := dec("15")
	out, err := uc.Update("p1", dto.UpdateProductRequest{Price: &price})

	require.NoError(t, err)
	assert.True(t, dec("15").Equal(out.Price))
	assert.Equal(t, "Café", out.Name, "los campos ausentes no cambian")
	assert.Equal(t, "CAFE-01", out.SKU)
}

func TestUpdateProductoInexistente(t *testing.T) {
	uc := NewUseCase(newFakeProductRepo(), uuid.NewString)

	name := "Nuevo"
	_, err := uc.Update("nope", dto.UpdateProductRequest{Name: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSKUDeOtroProducto(t *testing.T) {
	repo := newFakeProductRepo(
		existingProduct("p1", "CAFE-01", "Café"),
		existingProduct("p2", "TORTA-01", "Torta"),
	)
	uc := NewUseCase(repo, uuid.NewString)

	sku := "CAFE-01"
	_, err := uc.Update("p2", dto.UpdateProductRequest{SKU: &sku})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSetActiveOcultaDelCatalogo(t *testing.T) {
	repo := newFakeProductRepo(existingProduct("p1", "CAFE-01", "Café"))
	uc := NewUseCase(repo, uuid.NewString)

	out, err := uc.SetActive("p1", false)

	require.NoError(t, err)
	assert.False(t, out.Active)
	// El producto sigue existiendo: ocultar no es borrar.
	got, err := uc.GetByID("p1")
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestGenerateSKUNombreSinLetras(t *testing.T) {
	sku := GenerateSKU("***")

	assert.Regexp(t, regexp.MustCompile(`^PRD-[0-9A-F]{6}$`), sku)
}
