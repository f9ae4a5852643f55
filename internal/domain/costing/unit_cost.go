package costing

import "github.com/shopspring/decimal"

// LineCost es el costo de una línea de receta ya resuelto contra el almacén.
// Known es false cuando el ítem referenciado ya no existe: su aporte es 0 y
// el resultado completo se marca como parcial en vez de fallar.
type LineCost struct {
	Qty         decimal.Decimal
	CostPerUnit decimal.Decimal
	Known       bool
}

// BatchCost suma el costo del lote completo: Σ qty * costo unitario del ítem.
func BatchCost(lines []LineCost) (total decimal.Decimal, partial bool) {
	total = decimal.Zero
	for _, l := range lines {
		if !l.Known {
			partial = true
			continue
		}
		total = total.Add(l.Qty.Mul(l.CostPerUnit))
	}
	return total, partial
}

// UnitCost calcula el costo por unidad producida: costo del lote / rendimiento.
// Con rendimiento <= 0 se devuelve el costo crudo del lote (rendimiento 1).
// Es un cálculo puro: no hay caché, el caller recalcula en cada lectura para
// que los cambios de costo del almacén se reflejen de inmediato.
func UnitCost(lines []LineCost, yieldQty decimal.Decimal) (cost decimal.Decimal, partial bool) {
	batch, partial := BatchCost(lines)
	if yieldQty.LessThanOrEqual(decimal.Zero) {
		return batch, partial
	}
	return batch.Div(yieldQty), partial
}
