package catalog

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// UseCase casos de uso del catálogo de productos. Los productos nunca se
// eliminan: SetActive en false los oculta del punto de venta.
type UseCase struct {
	repo  repository.ProductRepository
	newID func() string
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ProductRepository, newID func() string) *UseCase {
	return &UseCase{repo: repo, newID: newID}
}

// Create crea un producto. Si no viene SKU se genera uno a partir del nombre.
func (uc *UseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	sku := in.SKU
	if sku == "" {
		sku = GenerateSKU(in.Name)
	} else if existing, _ := uc.repo.GetBySKU(sku); existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := in.Category
	if category == "" {
		category = "General"
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uc.newID(),
		SKU:       sku,
		Name:      in.Name,
		Category:  category,
		Price:     in.Price,
		ImageURL:  in.ImageURL,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) && in.SKU == "" {
			// SKU generado colisionó: un reintento con sufijo nuevo basta.
			product.SKU = GenerateSKU(in.Name)
			if err2 := uc.repo.Create(product); err2 != nil {
				return nil, err2
			}
			return toProductResponse(product), nil
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica una actualización parcial. Devuelve ErrNotFound si el id no
// resuelve y ErrDuplicate si el nuevo SKU ya pertenece a otro producto.
func (uc *UseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil && *in.SKU != product.SKU {
		other, _ := uc.repo.GetBySKU(*in.SKU)
		if other != nil && other.ID != product.ID {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// SetActive muestra u oculta un producto del catálogo (borrado suave).
func (uc *UseCase) SetActive(id string, active bool) (*dto.ProductResponse, error) {
	return uc.Update(id, dto.UpdateProductRequest{Active: &active})
}

// GetByID obtiene un producto por id, o ErrNotFound.
func (uc *UseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista el catálogo completo.
func (uc *UseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
