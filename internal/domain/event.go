package domain

import (
	"github.com/shopspring/decimal"
)

// Attribute is a single key/value pair attached to a chain event
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// BlockHeader carries the block context of a chain event
type BlockHeader struct {
	Hash   string `json:"hash"`
	Height uint64 `json:"height"`
	// Time is the block timestamp in unix seconds
	Time int64 `json:"time"`
}

// ChainEvent is a decoded contract event as published by the upstream
// decoding layer. This is the standard format consumed from NATS.
type ChainEvent struct {
	// Type is the raw event type (e.g. "wasm", "wasm-feed_price")
	Type string `json:"type"`
	// Attributes is the ordered attribute list as emitted on-chain
	Attributes []Attribute `json:"attributes"`
	Block      BlockHeader `json:"block"`
	// TxHash identifies the enclosing transaction
	TxHash string `json:"tx_hash"`
}

// Attr returns the value of the first attribute with the given key.
// Lookup is a first-match scan, matching on-chain attribute semantics.
func (e *ChainEvent) Attr(key string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// RequireAttr returns the value for key or ErrMissingAttribute
func (e *ChainEvent) RequireAttr(key string) (string, error) {
	v, ok := e.Attr(key)
	if !ok {
		return "", MissingAttributeError(key)
	}
	return v, nil
}

// RequireDecimalAttr returns the value for key parsed as an exact decimal
func (e *ChainEvent) RequireDecimalAttr(key string) (decimal.Decimal, error) {
	v, err := e.RequireAttr(key)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, MalformedAttributeError(key, v)
	}
	return d, nil
}

// Action returns the contract action attribute, empty when absent
func (e *ChainEvent) Action() EventAction {
	v, _ := e.Attr("action")
	return EventAction(v)
}
