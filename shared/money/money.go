// Package money configures decimal amounts used for rates.
package money

import (
	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept for stored amounts.
const Scale = 2

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Round rounds an amount half away from zero to Scale digits.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(Scale)
}

func FromInt(value int64) decimal.Decimal {
	return decimal.NewFromInt(value)
}

// Ptr is a convenience for optional amounts in request payloads.
func Ptr(amount decimal.Decimal) *decimal.Decimal {
	return &amount
}
