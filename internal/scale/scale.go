// Package scale converts raw integer token amounts between decimal systems
// and renders USD values. All arithmetic is exact decimal; truncation (not
// rounding) is used whenever a decimal result becomes a raw integer balance,
// matching on-chain integer semantics.
package scale

import (
	"github.com/shopspring/decimal"
)

// Factor returns 10^decimals as an exact decimal
func Factor(decimals int32) decimal.Decimal {
	return decimal.New(1, decimals)
}

// ToUSD converts a raw integer token amount to its USD value:
// raw / 10^decimals * priceUSD. The power-of-ten division is an exponent
// shift, not a Div, so no precision is lost at any token decimal count.
func ToUSD(raw decimal.Decimal, decimals int32, priceUSD decimal.Decimal) decimal.Decimal {
	return raw.Shift(-decimals).Mul(priceUSD)
}

// TruncateInt truncates a decimal to an integer raw amount
func TruncateInt(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(0)
}
