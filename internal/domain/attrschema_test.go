package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bambooloan/lending-indexer/internal/domain"
)

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  domain.AttrSchema
		event   *domain.ChainEvent
		wantErr error
	}{
		{
			name:   "deposit valid",
			schema: domain.SchemaDeposit,
			event: newEvent(
				domain.Attribute{Key: "asset", Value: "uxprt"},
				domain.Attribute{Key: "to", Value: "alice"},
				domain.Attribute{Key: "amount", Value: "1000000"},
			),
		},
		{
			name:   "deposit missing actor",
			schema: domain.SchemaDeposit,
			event: newEvent(
				domain.Attribute{Key: "asset", Value: "uxprt"},
				domain.Attribute{Key: "amount", Value: "1000000"},
			),
			wantErr: domain.ErrMissingAttribute,
		},
		{
			name:   "deposit malformed amount",
			schema: domain.SchemaDeposit,
			event: newEvent(
				domain.Attribute{Key: "asset", Value: "uxprt"},
				domain.Attribute{Key: "to", Value: "alice"},
				domain.Attribute{Key: "amount", Value: "1,000,000"},
			),
			wantErr: domain.ErrMalformedAttribute,
		},
		{
			name:   "accrual missing index",
			schema: domain.SchemaAccrueInterest,
			event: newEvent(
				domain.Attribute{Key: "asset", Value: "uxprt"},
				domain.Attribute{Key: "liquidity_index", Value: "1.01"},
				domain.Attribute{Key: "liquidity_rate", Value: "0.0001"},
				domain.Attribute{Key: "borrow_rate", Value: "0.0002"},
			),
			wantErr: domain.ErrMissingAttribute,
		},
		{
			name:   "accrual valid",
			schema: domain.SchemaAccrueInterest,
			event: newEvent(
				domain.Attribute{Key: "asset", Value: "uxprt"},
				domain.Attribute{Key: "liquidity_index", Value: "1.01"},
				domain.Attribute{Key: "borrow_index", Value: "1.02"},
				domain.Attribute{Key: "liquidity_rate", Value: "0.0001"},
				domain.Attribute{Key: "borrow_rate", Value: "0.0002"},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate(tt.event)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseFeedPairs(t *testing.T) {
	ev := newEvent(
		domain.Attribute{Key: "action", Value: "feed_price"},
		domain.Attribute{Key: "asset", Value: "market-a"},
		domain.Attribute{Key: "price", Value: "1.25"},
		domain.Attribute{Key: "asset", Value: "market-b"},
		domain.Attribute{Key: "price", Value: "0.004"},
	)

	pairs, err := domain.ParseFeedPairs(ev)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "market-a", pairs[0].Asset)
	assert.True(t, pairs[0].Price.Equal(decimal.RequireFromString("1.25")))
	assert.Equal(t, "market-b", pairs[1].Asset)
	assert.True(t, pairs[1].Price.Equal(decimal.RequireFromString("0.004")))
}

func TestParseFeedPairsNoPairs(t *testing.T) {
	pairs, err := domain.ParseFeedPairs(newEvent(domain.Attribute{Key: "action", Value: "feed_price"}))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestParseFeedPairsDanglingAsset(t *testing.T) {
	_, err := domain.ParseFeedPairs(newEvent(
		domain.Attribute{Key: "asset", Value: "market-a"},
	))
	assert.ErrorIs(t, err, domain.ErrMissingAttribute)

	_, err = domain.ParseFeedPairs(newEvent(
		domain.Attribute{Key: "asset", Value: "market-a"},
		domain.Attribute{Key: "other", Value: "x"},
		domain.Attribute{Key: "price", Value: "1.25"},
	))
	assert.ErrorIs(t, err, domain.ErrMissingAttribute)
}

func TestParseFeedPairsMalformedPrice(t *testing.T) {
	_, err := domain.ParseFeedPairs(newEvent(
		domain.Attribute{Key: "asset", Value: "market-a"},
		domain.Attribute{Key: "price", Value: "one dollar"},
	))
	assert.ErrorIs(t, err, domain.ErrMalformedAttribute)
}
