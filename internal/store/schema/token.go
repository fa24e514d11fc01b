package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Token represents the tokens table. Two rows exist per market: the
// underlying asset and the derivative (receipt) token.
type Token struct {
	// ID is the token address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the token display name
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is the token ticker symbol
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// Decimals is the token's decimal precision
	Decimals int32 `gorm:"column:decimals;not null"`
	// LastPriceUSD is the most recent known USD price
	LastPriceUSD decimal.Decimal `gorm:"column:last_price_usd;not null;type:numeric(38,18)"`
	// LastPriceBlockNumber is the block at which LastPriceUSD was recorded
	LastPriceBlockNumber uint64 `gorm:"column:last_price_block_number;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
