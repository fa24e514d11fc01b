package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeedPrice represents the feed_prices table - the latest price the oracle
// pushed for an asset, keyed by the asset's derivative (market) id. Upserted
// on every oracle event, independent of whether the Market exists yet.
type FeedPrice struct {
	// ID is the derivative-token address of the priced asset
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ProtocolID references the owning protocol
	ProtocolID string `gorm:"column:protocol_id;not null;type:text"`
	// TokenPriceUSD is the pushed USD price
	TokenPriceUSD decimal.Decimal `gorm:"column:token_price_usd;not null;type:numeric(38,18)"`
	// BlockNumber / Timestamp record when the price was pushed
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	Timestamp   int64  `gorm:"column:timestamp;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the FeedPrice model
func (FeedPrice) TableName() string {
	return "feed_prices"
}
