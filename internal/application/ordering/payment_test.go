package ordering

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comanda-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDeriveCashFieldsPagadoEfectivoSinDatos(t *testing.T) {
	received, change := DeriveCashFields(dec("200"), entity.PaymentStatusPaid, entity.PaymentMethodCash, nil, nil)

	require.NotNil(t, received)
	require.NotNil(t, change)
	assert.True(t, dec("200").Equal(*received), "cashReceived por defecto es el total")
	assert.True(t, change.IsZero(), "pago exacto: cambio 0")
}

func TestDeriveCashFieldsPagadoEfectivoConRecibido(t *testing.T) {
	recibido := dec("500")

	received, change := DeriveCashFields(dec("200"), entity.PaymentStatusPaid, entity.PaymentMethodCash, &recibido, nil)

	require.NotNil(t, change)
	assert.True(t, dec("500").Equal(*received), "el valor explícito del caller gana")
	assert.True(t, dec("300").Equal(*change), "cambio = recibido - total")
}

func TestDeriveCashFieldsRecibidoMenorAlTotal(t *testing.T) {
	recibido := dec("150")

	_, change := DeriveCashFields(dec("200"), entity.PaymentStatusPaid, entity.PaymentMethodCash, &recibido, nil)

	require.NotNil(t, change)
	assert.True(t, change.IsZero(), "el cambio nunca es negativo")
}

func TestDeriveCashFieldsPagadoQR(t *testing.T) {
	received, change := DeriveCashFields(dec("200"), entity.PaymentStatusPaid, entity.PaymentMethodQR, nil, nil)

	require.NotNil(t, received)
	require.NotNil(t, change)
	assert.True(t, dec("200").Equal(*received))
	assert.True(t, change.IsZero(), "método no-efectivo: cambio siempre 0")
}

func TestDeriveCashFieldsNoPagado(t *testing.T) {
	received, change := DeriveCashFields(dec("200"), entity.PaymentStatusUnpaid, entity.PaymentMethodCash, nil, nil)

	assert.Nil(t, received, "sin pago no se derivan campos de efectivo")
	assert.Nil(t, change)
}

func TestNewOrderNumberFormato(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	number := NewOrderNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^PP-202503141509-[0-9A-F]{4}$`), number)
}

func TestNewOrderNumberUsaUTC(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2025, 3, 14, 23, 30, 0, 0, loc)

	number := NewOrderNumber(now)

	assert.Contains(t, number, "-202503150430-", "la marca de tiempo se normaliza a UTC")
}
