package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDailyReserveFor(t *testing.T) {
	cases := []struct {
		income  string
		reserve int64
	}{
		{"0", 600},
		{"2999.99", 600},
		{"3000", 1000},
		{"4499", 1000},
		{"4500", 1200},
		{"5999.50", 1200},
		{"6000", 1500},
		{"12000", 1500},
	}
	for _, tc := range cases {
		got := DailyReserveFor(decimal.RequireFromString(tc.income))
		assert.True(t, decimal.NewFromInt(tc.reserve).Equal(got),
			"ingreso %s debe caer en el tramo %d, devolvió %s", tc.income, tc.reserve, got)
	}
}
