package number

import (
	"github.com/shopspring/decimal"
)

// Decimal parse, invalid input is zero
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Ceil round up at precision
func Ceil(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Ceil().Shift(-precision)
}

// Floor round down at precision
func Floor(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Floor().Shift(-precision)
}

// Percent formats a ratio as a percentage, 0.0665 is "6.65%"
func Percent(d decimal.Decimal, precision int32) string {
	return d.Shift(2).Round(precision).String() + "%"
}
