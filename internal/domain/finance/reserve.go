package finance

import "github.com/shopspring/decimal"

// Umbrales y montos de la reserva diaria (tabla de cuatro tramos).
var (
	reserveTiers = []struct {
		below   decimal.Decimal
		reserve decimal.Decimal
	}{
		{decimal.NewFromInt(3000), decimal.NewFromInt(600)},
		{decimal.NewFromInt(4500), decimal.NewFromInt(1000)},
		{decimal.NewFromInt(6000), decimal.NewFromInt(1200)},
	}
	reserveTop = decimal.NewFromInt(1500)
)

// DailyReserveFor devuelve la reserva sugerida para el ingreso de un día.
func DailyReserveFor(income decimal.Decimal) decimal.Decimal {
	for _, t := range reserveTiers {
		if income.LessThan(t.below) {
			return t.reserve
		}
	}
	return reserveTop
}
