package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketAction represents the market_actions table - one immutable row per
// deposit, withdraw, borrow or repay event. Keyed by
// {txHash}-{height}-{actionType} so replaying the same event is a no-op.
type MarketAction struct {
	// ID is the deterministic composite action id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Type is DEPOSIT, WITHDRAW, BORROW or REPAY
	Type string `gorm:"column:type;not null;type:text;index"`
	// TxHash is the enclosing transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// ProtocolID / MarketID reference the protocol and market acted on
	ProtocolID string `gorm:"column:protocol_id;not null;type:text"`
	MarketID   string `gorm:"column:market_id;not null;type:text;index"`
	// AssetID is the underlying token address
	AssetID string `gorm:"column:asset_id;not null;type:text"`
	// Account is the acting address
	Account string `gorm:"column:account;not null;type:text;index"`
	// Amount is the raw token amount (integer raw units)
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(78,0)"`
	// AmountUSD is the USD value at the market's price when processed
	AmountUSD decimal.Decimal `gorm:"column:amount_usd;not null;type:numeric(38,18)"`

	BlockNumber uint64 `gorm:"column:block_number;not null"`
	Timestamp   int64  `gorm:"column:timestamp;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MarketAction model
func (MarketAction) TableName() string {
	return "market_actions"
}
