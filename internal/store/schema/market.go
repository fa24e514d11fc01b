package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Market represents the markets table - one listed lending pool, keyed by
// its derivative-token address. Created exactly once per asset.
type Market struct {
	// ID is the derivative-token address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the market display name
	Name string `gorm:"column:name;not null;type:text"`
	// ProtocolID references the owning protocol
	ProtocolID string `gorm:"column:protocol_id;not null;type:text;index"`
	// InputTokenID is the underlying asset token address
	InputTokenID string `gorm:"column:input_token_id;not null;type:text"`
	// OutputTokenID is the derivative token address
	OutputTokenID string `gorm:"column:output_token_id;not null;type:text"`

	// RateIDs holds exactly two current rate ids after listing:
	// index 0 = supply (lender) rate, index 1 = borrow rate
	RateIDs datatypes.JSONSlice[string] `gorm:"column:rate_ids;type:jsonb"`

	IsActive           bool `gorm:"column:is_active;not null"`
	CanUseAsCollateral bool `gorm:"column:can_use_as_collateral;not null"`
	CanBorrowFrom      bool `gorm:"column:can_borrow_from;not null"`

	MaximumLTV           decimal.Decimal `gorm:"column:maximum_ltv;not null;type:numeric(38,18)"`
	LiquidationThreshold decimal.Decimal `gorm:"column:liquidation_threshold;not null;type:numeric(38,18)"`
	LiquidationPenalty   decimal.Decimal `gorm:"column:liquidation_penalty;not null;type:numeric(38,18)"`
	// ReserveFactor is the protocol's share of accrued interest, in [0,1]
	ReserveFactor decimal.Decimal `gorm:"column:reserve_factor;not null;type:numeric(38,18)"`

	// InputTokenBalance is the raw underlying balance (integer raw units)
	InputTokenBalance decimal.Decimal `gorm:"column:input_token_balance;not null;type:numeric(78,0)"`
	// InputTokenPriceUSD is the current underlying price
	InputTokenPriceUSD decimal.Decimal `gorm:"column:input_token_price_usd;not null;type:numeric(38,18)"`
	// OutputTokenSupply is the raw derivative-token supply (integer raw units)
	OutputTokenSupply   decimal.Decimal `gorm:"column:output_token_supply;not null;type:numeric(78,0)"`
	OutputTokenPriceUSD decimal.Decimal `gorm:"column:output_token_price_usd;not null;type:numeric(38,18)"`

	// ExchangeRate converts derivative units to underlying units (supply side)
	ExchangeRate decimal.Decimal `gorm:"column:exchange_rate;not null;type:numeric(38,18)"`
	// BorrowExchangeRate converts derivative units to underlying units (borrow side)
	BorrowExchangeRate decimal.Decimal `gorm:"column:borrow_exchange_rate;not null;type:numeric(38,18)"`

	// BorrowBalance is the protocol-internal borrow counter in raw derivative
	// units. Incremented by borrows, reconciled by interest accrual; repays
	// intentionally do not touch it.
	BorrowBalance decimal.Decimal `gorm:"column:borrow_balance;not null;type:numeric(78,0)"`

	TotalValueLockedUSD              decimal.Decimal `gorm:"column:total_value_locked_usd;not null;type:numeric(38,18)"`
	TotalDepositBalanceUSD           decimal.Decimal `gorm:"column:total_deposit_balance_usd;not null;type:numeric(38,18)"`
	TotalBorrowBalanceUSD            decimal.Decimal `gorm:"column:total_borrow_balance_usd;not null;type:numeric(38,18)"`
	CumulativeDepositUSD             decimal.Decimal `gorm:"column:cumulative_deposit_usd;not null;type:numeric(38,18)"`
	CumulativeBorrowUSD              decimal.Decimal `gorm:"column:cumulative_borrow_usd;not null;type:numeric(38,18)"`
	CumulativeLiquidateUSD           decimal.Decimal `gorm:"column:cumulative_liquidate_usd;not null;type:numeric(38,18)"`
	CumulativeTotalRevenueUSD        decimal.Decimal `gorm:"column:cumulative_total_revenue_usd;not null;type:numeric(38,18)"`
	CumulativeProtocolSideRevenueUSD decimal.Decimal `gorm:"column:cumulative_protocol_side_revenue_usd;not null;type:numeric(38,18)"`
	CumulativeSupplySideRevenueUSD   decimal.Decimal `gorm:"column:cumulative_supply_side_revenue_usd;not null;type:numeric(38,18)"`

	// CreatedTimestamp / CreatedBlockNumber record the listing event
	CreatedTimestamp   int64  `gorm:"column:created_timestamp;not null"`
	CreatedBlockNumber uint64 `gorm:"column:created_block_number;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Market model
func (Market) TableName() string {
	return "markets"
}
