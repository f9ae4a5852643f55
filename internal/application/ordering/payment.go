package ordering

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comanda-api/internal/domain/entity"
)

// DeriveCashFields resuelve cashReceived y change al crear una orden según la
// tabla (estado de pago, método). Los valores explícitos del caller siempre
// ganan; la derivación solo llena los ausentes.
//
//	paid   + cash     -> cashReceived = total; change = max(0, recibido - total)
//	paid   + no-cash  -> cashReceived = total; change = 0
//	unpaid + *        -> ambos quedan nulos hasta un update posterior
func DeriveCashFields(total decimal.Decimal, paymentStatus, paymentMethod string, cashReceived, change *decimal.Decimal) (*decimal.Decimal, *decimal.Decimal) {
	if paymentStatus != entity.PaymentStatusPaid {
		return cashReceived, change
	}
	if cashReceived == nil {
		v := total
		cashReceived = &v
	}
	if change == nil {
		var v decimal.Decimal
		if paymentMethod == entity.PaymentMethodCash {
			v = decimal.Max(decimal.Zero, cashReceived.Sub(total))
		} else {
			v = decimal.Zero
		}
		change = &v
	}
	return cashReceived, change
}
