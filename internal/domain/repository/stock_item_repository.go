package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/domain/entity"
)

// StockItemRepository define el puerto de persistencia para StockItem (DIP).
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	GetByCode(code string) (*entity.StockItem, error)
	// Update actualiza los campos descriptivos (nombre, unidad, costo, punto
	// de reorden). La cantidad en stock NO se toca aquí: solo vía ApplyDelta.
	Update(item *entity.StockItem) error
	// ApplyDelta suma delta a la cantidad con un incremento atómico en el
	// almacén (nunca leer-calcular-escribir en la aplicación) y devuelve el
	// ítem actualizado, o (nil, nil) si el id no existe.
	ApplyDelta(id string, delta decimal.Decimal) (*entity.StockItem, error)
	List() ([]*entity.StockItem, error)
}
