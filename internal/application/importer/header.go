package importer

import (
	"strings"

	"golang.org/x/text/cases"
)

// Campos lógicos que puede traer el archivo de importación.
const (
	fieldID       = "id"
	fieldSKU      = "sku"
	fieldName     = "name"
	fieldCategory = "category"
	fieldPrice    = "price"
	fieldUnit     = "unit"
	fieldStockQty = "stockQty"
	fieldCost     = "costPerUnit"
	fieldImageURL = "imageUrl"
	fieldActive   = "active"
)

// Alias aceptados por campo lógico (ya normalizados con foldKey). Las
// columnas llegan de planillas de terceros, por eso se acepta variación.
var headerAliases = map[string][]string{
	fieldID:       {"id", "productid"},
	fieldSKU:      {"sku", "code", "barcode"},
	fieldName:     {"name", "productname", "product", "title", "menu"},
	fieldCategory: {"category", "cat", "group", "type"},
	fieldPrice:    {"price", "sellprice", "unitprice", "sellingprice"},
	fieldUnit:     {"unit", "uom"},
	fieldStockQty: {"stockqty", "stock", "qty", "quantity"},
	fieldCost:     {"costperunit", "cost", "unitcost"},
	fieldImageURL: {"imageurl", "image", "img", "picture"},
	fieldActive:   {"active", "enabled", "visible"},
}

var fold = cases.Fold()

// foldKey normaliza un encabezado o clave de identidad: sin espacios ni
// separadores y con case folding Unicode (los nombres no son solo ASCII).
func foldKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(" ", "", "\t", "", "_", "", "-", "").Replace(s)
	return fold.String(s)
}

// resolveHeader mapea campo lógico -> índice de columna. Columnas sin alias
// conocido se ignoran; campos sin columna quedan ausentes y toman defaults.
func resolveHeader(record []string) map[string]int {
	byAlias := make(map[string]string)
	for field, aliases := range headerAliases {
		for _, a := range aliases {
			byAlias[a] = field
		}
	}
	cols := make(map[string]int, len(headerAliases))
	for idx, raw := range record {
		if field, ok := byAlias[foldKey(raw)]; ok {
			if _, taken := cols[field]; !taken {
				cols[field] = idx
			}
		}
	}
	return cols
}

// cell devuelve el valor recortado de la columna del campo, o "" si la
// columna no existe o la fila es corta.
func cell(record []string, cols map[string]int, field string) string {
	idx, ok := cols[field]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
