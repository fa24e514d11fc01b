package domain

import (
	"github.com/shopspring/decimal"
)

// AttrSchema declares the attributes a handler expects for one event action.
// Handlers validate the whole schema before touching any state so a
// malformed event is rejected up front instead of failing halfway through.
type AttrSchema struct {
	// Required lists attribute keys that must be present
	Required []string
	// Numeric lists attribute keys whose values must parse as decimals.
	// Keys listed here are implicitly required.
	Numeric []string
}

// Attribute schemas per contract action, matching the on-chain emission.
var (
	SchemaMarketListed = AttrSchema{Required: []string{"asset"}}

	SchemaDeposit = AttrSchema{
		Required: []string{"asset", "to"},
		Numeric:  []string{"amount"},
	}

	SchemaWithdraw = AttrSchema{
		Required: []string{"asset", "user"},
		Numeric:  []string{"burn_amount"},
	}

	SchemaBorrow = AttrSchema{
		Required: []string{"asset", "sender"},
		Numeric:  []string{"amount"},
	}

	SchemaRepay = AttrSchema{
		Required: []string{"asset", "sender"},
		Numeric:  []string{"amount"},
	}

	SchemaAccrueInterest = AttrSchema{
		Required: []string{"asset"},
		Numeric:  []string{"liquidity_index", "borrow_index", "liquidity_rate", "borrow_rate"},
	}

	SchemaSetPriceOracle = AttrSchema{Required: []string{"price_oracle"}}
)

// Validate checks an event against a schema. It returns the first
// missing-attribute or malformed-attribute error encountered.
func (s AttrSchema) Validate(e *ChainEvent) error {
	for _, key := range s.Required {
		if _, ok := e.Attr(key); !ok {
			return MissingAttributeError(key)
		}
	}
	for _, key := range s.Numeric {
		v, ok := e.Attr(key)
		if !ok {
			return MissingAttributeError(key)
		}
		if _, err := decimal.NewFromString(v); err != nil {
			return MalformedAttributeError(key, v)
		}
	}
	return nil
}

// FeedPair is one (asset, price) pair from an oracle feed event
type FeedPair struct {
	Asset string
	Price decimal.Decimal
}

// ParseFeedPairs extracts the (asset, price) pairs from an oracle feed
// event. The oracle emits the pairs as consecutive attributes; an "asset"
// attribute not immediately followed by a "price" attribute, or a price
// that does not parse, is a malformed event.
func ParseFeedPairs(e *ChainEvent) ([]FeedPair, error) {
	var pairs []FeedPair
	for i := 0; i < len(e.Attributes); i++ {
		if e.Attributes[i].Key != "asset" {
			continue
		}
		if i+1 >= len(e.Attributes) || e.Attributes[i+1].Key != "price" {
			return nil, MissingAttributeError("price")
		}
		price, err := decimal.NewFromString(e.Attributes[i+1].Value)
		if err != nil {
			return nil, MalformedAttributeError("price", e.Attributes[i+1].Value)
		}
		pairs = append(pairs, FeedPair{Asset: e.Attributes[i].Value, Price: price})
		i++
	}
	return pairs, nil
}
