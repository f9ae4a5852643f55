package importer

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/application/catalog"
	"github.com/jhoicas/Comanda-api/internal/application/dto"
	"github.com/jhoicas/Comanda-api/internal/application/inventory"
	"github.com/jhoicas/Comanda-api/internal/domain"
	"github.com/jhoicas/Comanda-api/internal/domain/entity"
	"github.com/jhoicas/Comanda-api/internal/domain/repository"
)

// TxRunner ejecuta el upsert de una fila (producto + ítem emparejados)
// dentro de una transacción corta. Transacciones por fila, nunca una sola
// gigante: una importación larga no debe matar de hambre a las órdenes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// UseCase reconcilia datos tabulares externos contra catálogo y almacén por
// coincidencia de identidad: id explícito, luego SKU, luego nombre+categoría
// (los ítems se resuelven solo por nombre, es un espacio de nombres aparte).
// El lote es best-effort por fila: una fila malformada se salta, no aborta.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	itemRepo    repository.StockItemRepository
	newID       func() string
}

// NewUseCase construye el reconciliador.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository, itemRepo repository.StockItemRepository, newID func() string) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, itemRepo: itemRepo, newID: newID}
}

// índices de identidad precargados; se mantienen al día durante el lote para
// que una fila vea los inserts de las anteriores.
type identityIndex struct {
	productsByID      map[string]*entity.Product
	productsBySKU     map[string]*entity.Product
	productsByNameCat map[string]*entity.Product
	itemsByName       map[string]*entity.StockItem
}

func (ix *identityIndex) addProduct(p *entity.Product) {
	ix.productsByID[p.ID] = p
	ix.productsBySKU[foldKey(p.SKU)] = p
	ix.productsByNameCat[foldKey(p.Name)+"\x00"+foldKey(p.Category)] = p
}

func (ix *identityIndex) addItem(i *entity.StockItem) {
	ix.itemsByName[foldKey(i.Name)] = i
}

// Import procesa el texto tabular fila a fila. Requiere encabezado y al
// menos una fila de datos. Cada fila commitea su propia transacción; una
// cancelación de contexto corta entre filas, nunca dentro de una, y se
// devuelven los contadores de lo ya aplicado junto con el error.
func (uc *UseCase) Import(ctx context.Context, csvText string) (*dto.ImportResult, error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.ErrEmptyImport
	}
	cols := resolveHeader(header)

	index, err := uc.loadIndex()
	if err != nil {
		return nil, err
	}

	result := &dto.ImportResult{}
	rows := 0
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Fila ilegible: se salta, el lote sigue.
			result.SkippedRows++
			continue
		}
		rows++
		uc.importRow(ctx, record, cols, index, result)
	}
	if rows == 0 {
		return nil, domain.ErrEmptyImport
	}
	return result, nil
}

// importRow hace a lo sumo un upsert de producto y uno de ítem, en una tx.
func (uc *UseCase) importRow(ctx context.Context, record []string, cols map[string]int, index *identityIndex, result *dto.ImportResult) {
	name := cell(record, cols, fieldName)
	if name == "" {
		result.SkippedRows++
		return
	}
	price, ok := parseAmount(cell(record, cols, fieldPrice))
	if !ok {
		result.SkippedRows++
		return
	}
	stockQty, ok := parseAmount(cell(record, cols, fieldStockQty))
	if !ok {
		result.SkippedRows++
		return
	}
	costPerUnit, ok := parseAmount(cell(record, cols, fieldCost))
	if !ok {
		result.SkippedRows++
		return
	}
	category := cell(record, cols, fieldCategory)
	if category == "" {
		category = "General"
	}
	unit := cell(record, cols, fieldUnit)
	if unit == "" {
		unit = "unit"
	}
	active := parseActive(cell(record, cols, fieldActive))
	imageURL := cell(record, cols, fieldImageURL)
	rowID := cell(record, cols, fieldID)
	rowSKU := cell(record, cols, fieldSKU)

	product, productInserted := uc.resolveProduct(index, rowID, rowSKU, name, category)
	item, itemInserted := index.itemsByName[foldKey(name)], false
	if item == nil {
		itemInserted = true
	}

	now := time.Now()
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StockItemRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if productInserted {
			sku := rowSKU
			if sku == "" {
				sku = catalog.GenerateSKU(name)
			}
			product = &entity.Product{
				ID:        uc.newID(),
				SKU:       sku,
				Name:      name,
				Category:  category,
				Price:     price,
				ImageURL:  imageURL,
				Active:    active,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := productRepo.Create(product); err != nil {
				return err
			}
		} else {
			product.Name = name
			product.Category = category
			product.Price = price
			if imageURL != "" {
				product.ImageURL = imageURL
			}
			product.Active = active
			product.UpdatedAt = now
			if err := productRepo.Update(product); err != nil {
				return err
			}
		}

		if itemInserted {
			item = &entity.StockItem{
				ID:          uc.newID(),
				Code:        inventory.GenerateItemCode(name),
				Name:        name,
				Unit:        unit,
				StockQty:    stockQty,
				CostPerUnit: costPerUnit,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			return itemRepo.Create(item)
		}
		// Ítem existente: la cantidad se reconcilia vía el libro de
		// movimientos, nunca por asignación directa, para no romper la
		// invariante stock = base + Σ movimientos.
		delta := stockQty.Sub(item.StockQty)
		if !delta.IsZero() {
			updated, err := itemRepo.ApplyDelta(item.ID, delta)
			if err != nil {
				return err
			}
			if updated != nil {
				item.StockQty = updated.StockQty
			}
			mov := &entity.StockMovement{
				ID:        uc.newID(),
				ItemID:    item.ID,
				Change:    delta,
				Reason:    "import",
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		item.Unit = unit
		item.CostPerUnit = costPerUnit
		item.UpdatedAt = now
		return itemRepo.Update(item)
	})
	if err != nil {
		// La fila entera se revierte (producto e ítem emparejados); el lote
		// continúa con la siguiente.
		result.SkippedRows++
		return
	}

	if productInserted {
		result.InsertedProducts++
	} else {
		result.UpdatedProducts++
	}
	if itemInserted {
		result.InsertedItems++
	} else {
		result.UpdatedItems++
	}
	index.addProduct(product)
	index.addItem(item)
}

// resolveProduct aplica la prioridad de identidad: id explícito, SKU exacto,
// clave compuesta nombre+categoría. La primera coincidencia gana.
func (uc *UseCase) resolveProduct(index *identityIndex, rowID, rowSKU, name, category string) (*entity.Product, bool) {
	if rowID != "" {
		if p, ok := index.productsByID[rowID]; ok {
			return p, false
		}
	}
	if rowSKU != "" {
		if p, ok := index.productsBySKU[foldKey(rowSKU)]; ok {
			return p, false
		}
	}
	if p, ok := index.productsByNameCat[foldKey(name)+"\x00"+foldKey(category)]; ok {
		return p, false
	}
	return nil, true
}

func (uc *UseCase) loadIndex() (*identityIndex, error) {
	index := &identityIndex{
		productsByID:      make(map[string]*entity.Product),
		productsBySKU:     make(map[string]*entity.Product),
		productsByNameCat: make(map[string]*entity.Product),
		itemsByName:       make(map[string]*entity.StockItem),
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		index.addProduct(p)
	}
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	for _, i := range items {
		index.addItem(i)
	}
	return index, nil
}

// parseAmount interpreta un monto. Columna ausente o celda vacía valen 0
// (default); una celda presente pero ilegible invalida la fila.
func parseAmount(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parseActive interpreta la bandera de visibilidad; ausente es true.
func parseActive(s string) bool {
	switch strings.ToLower(s) {
	case "", "true", "1", "yes", "y", "si", "sí":
		return true
	default:
		return false
	}
}
