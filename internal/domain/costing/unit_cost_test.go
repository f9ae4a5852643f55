package costing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(qty, cost string) LineCost {
	return LineCost{
		Qty:         decimal.RequireFromString(qty),
		CostPerUnit: decimal.RequireFromString(cost),
		Known:       true,
	}
}

func TestBatchCost(t *testing.T) {
	lines := []LineCost{line("2", "10.50"), line("0.5", "8")}

	total, partial := BatchCost(lines)

	assert.True(t, decimal.RequireFromString("25").Equal(total), "costo del lote: 2*10.50 + 0.5*8")
	assert.False(t, partial, "todas las líneas son conocidas")
}

func TestBatchCostLineaDesconocida(t *testing.T) {
	lines := []LineCost{line("2", "10"), {Qty: decimal.NewFromInt(3), Known: false}}

	total, partial := BatchCost(lines)

	assert.True(t, decimal.NewFromInt(20).Equal(total), "la línea desconocida aporta 0")
	assert.True(t, partial, "el resultado debe marcarse parcial")
}

func TestUnitCost(t *testing.T) {
	lines := []LineCost{line("10", "3")}

	cost, partial := UnitCost(lines, decimal.NewFromInt(4))

	assert.True(t, decimal.RequireFromString("7.5").Equal(cost), "30 / 4 unidades")
	assert.False(t, partial)
}

func TestUnitCostRendimientoCero(t *testing.T) {
	lines := []LineCost{line("10", "3")}

	cost, _ := UnitCost(lines, decimal.Zero)

	assert.True(t, decimal.NewFromInt(30).Equal(cost), "con rendimiento <= 0 se devuelve el costo crudo del lote")
}

func TestUnitCostSinLineas(t *testing.T) {
	cost, partial := UnitCost(nil, decimal.NewFromInt(5))

	assert.True(t, cost.IsZero())
	assert.False(t, partial)
}
