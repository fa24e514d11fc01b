package scale_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bambooloan/lending-indexer/internal/scale"
)

func TestFactor(t *testing.T) {
	assert.True(t, scale.Factor(0).Equal(decimal.NewFromInt(1)))
	assert.True(t, scale.Factor(6).Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, scale.Factor(18).Equal(decimal.RequireFromString("1000000000000000000")))
}

func TestToUSD(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		decimals int32
		price    string
		want     string
	}{
		{
			name:     "one whole token at two dollars",
			raw:      "1000000",
			decimals: 6,
			price:    "2",
			want:     "2",
		},
		{
			name:     "fractional amount",
			raw:      "1500000",
			decimals: 6,
			price:    "2",
			want:     "3",
		},
		{
			name:     "zero price",
			raw:      "1000000",
			decimals: 6,
			price:    "0",
			want:     "0",
		},
		{
			name:     "sub-unit amount keeps precision",
			raw:      "1",
			decimals: 6,
			price:    "3",
			want:     "0.000003",
		},
		{
			name:     "one whole 18-decimal token",
			raw:      "1000000000000000000",
			decimals: 18,
			price:    "2",
			want:     "2",
		},
		{
			name:     "single raw unit of an 18-decimal token does not vanish",
			raw:      "1",
			decimals: 18,
			price:    "1000000000000000000",
			want:     "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scale.ToUSD(
				decimal.RequireFromString(tt.raw),
				tt.decimals,
				decimal.RequireFromString(tt.price),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

// Converting many small amounts one by one must total exactly the conversion
// of the whole amount; the arithmetic is exact decimal, never float.
func TestToUSDAdditive(t *testing.T) {
	price := decimal.RequireFromString("1.37")
	unit := decimal.NewFromInt(1)

	sum := decimal.Zero
	for i := 0; i < 10_000; i++ {
		sum = sum.Add(scale.ToUSD(unit, 6, price))
	}

	whole := scale.ToUSD(decimal.NewFromInt(10_000), 6, price)
	assert.True(t, sum.Equal(whole), "sum %s != whole %s", sum, whole)
}

// 18-decimal amounts need more fractional digits than shopspring's default
// division precision; each 1-raw-unit conversion must survive intact.
func TestToUSDAdditive18Decimals(t *testing.T) {
	price := decimal.NewFromInt(2)
	unit := decimal.NewFromInt(1)

	sum := decimal.Zero
	for i := 0; i < 10_000; i++ {
		sum = sum.Add(scale.ToUSD(unit, 18, price))
	}

	whole := scale.ToUSD(decimal.NewFromInt(10_000), 18, price)
	assert.True(t, sum.Equal(whole), "sum %s != whole %s", sum, whole)
	assert.True(t, sum.Equal(decimal.RequireFromString("0.00000000000002")), "sum %s", sum)
}

func TestTruncateInt(t *testing.T) {
	assert.True(t, scale.TruncateInt(decimal.RequireFromString("1.999")).Equal(decimal.NewFromInt(1)))
	assert.True(t, scale.TruncateInt(decimal.RequireFromString("-1.999")).Equal(decimal.NewFromInt(-1)))
	assert.True(t, scale.TruncateInt(decimal.NewFromInt(7)).Equal(decimal.NewFromInt(7)))
}
