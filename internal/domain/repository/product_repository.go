package repository

import "github.com/jhoicas/Comanda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get devuelven (nil, nil) cuando no hay coincidencia.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
}
