package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// MarketHourlySnapshot represents the market_hourly_snapshots table, keyed
// {marketID}-{hourBucket}. Created by the bucket's first event and updated in
// place until the next bucket opens; flow fields are additive deltas, balance
// fields mirror the market's latest values.
type MarketHourlySnapshot struct {
	// ID is {marketID}-{hourBucket}
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ProtocolID / MarketID reference the snapshot subject
	ProtocolID string `gorm:"column:protocol_id;not null;type:text"`
	MarketID   string `gorm:"column:market_id;not null;type:text;index"`

	// RateIDs references the bucket's immutable RateSnapshot clones
	RateIDs datatypes.JSONSlice[string] `gorm:"column:rate_ids;type:jsonb"`

	TotalValueLockedUSD              decimal.Decimal `gorm:"column:total_value_locked_usd;not null;type:numeric(38,18)"`
	TotalDepositBalanceUSD           decimal.Decimal `gorm:"column:total_deposit_balance_usd;not null;type:numeric(38,18)"`
	TotalBorrowBalanceUSD            decimal.Decimal `gorm:"column:total_borrow_balance_usd;not null;type:numeric(38,18)"`
	CumulativeDepositUSD             decimal.Decimal `gorm:"column:cumulative_deposit_usd;not null;type:numeric(38,18)"`
	CumulativeBorrowUSD              decimal.Decimal `gorm:"column:cumulative_borrow_usd;not null;type:numeric(38,18)"`
	CumulativeLiquidateUSD           decimal.Decimal `gorm:"column:cumulative_liquidate_usd;not null;type:numeric(38,18)"`
	CumulativeTotalRevenueUSD        decimal.Decimal `gorm:"column:cumulative_total_revenue_usd;not null;type:numeric(38,18)"`
	CumulativeProtocolSideRevenueUSD decimal.Decimal `gorm:"column:cumulative_protocol_side_revenue_usd;not null;type:numeric(38,18)"`
	CumulativeSupplySideRevenueUSD   decimal.Decimal `gorm:"column:cumulative_supply_side_revenue_usd;not null;type:numeric(38,18)"`

	// Hourly flow fields: additive per-event deltas within the bucket
	HourlyDepositUSD             decimal.Decimal `gorm:"column:hourly_deposit_usd;not null;type:numeric(38,18)"`
	HourlyBorrowUSD              decimal.Decimal `gorm:"column:hourly_borrow_usd;not null;type:numeric(38,18)"`
	HourlyWithdrawUSD            decimal.Decimal `gorm:"column:hourly_withdraw_usd;not null;type:numeric(38,18)"`
	HourlyRepayUSD               decimal.Decimal `gorm:"column:hourly_repay_usd;not null;type:numeric(38,18)"`
	HourlyLiquidateUSD           decimal.Decimal `gorm:"column:hourly_liquidate_usd;not null;type:numeric(38,18)"`
	HourlyTotalRevenueUSD        decimal.Decimal `gorm:"column:hourly_total_revenue_usd;not null;type:numeric(38,18)"`
	HourlyProtocolSideRevenueUSD decimal.Decimal `gorm:"column:hourly_protocol_side_revenue_usd;not null;type:numeric(38,18)"`
	HourlySupplySideRevenueUSD   decimal.Decimal `gorm:"column:hourly_supply_side_revenue_usd;not null;type:numeric(38,18)"`

	InputTokenBalance   decimal.Decimal `gorm:"column:input_token_balance;not null;type:numeric(78,0)"`
	InputTokenPriceUSD  decimal.Decimal `gorm:"column:input_token_price_usd;not null;type:numeric(38,18)"`
	OutputTokenSupply   decimal.Decimal `gorm:"column:output_token_supply;not null;type:numeric(78,0)"`
	OutputTokenPriceUSD decimal.Decimal `gorm:"column:output_token_price_usd;not null;type:numeric(38,18)"`
	ExchangeRate        decimal.Decimal `gorm:"column:exchange_rate;not null;type:numeric(38,18)"`

	BlockNumber uint64 `gorm:"column:block_number;not null"`
	Timestamp   int64  `gorm:"column:timestamp;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MarketHourlySnapshot model
func (MarketHourlySnapshot) TableName() string {
	return "market_hourly_snapshots"
}

// MarketDailySnapshot represents the market_daily_snapshots table, keyed
// {marketID}-{dayBucket}. Same lifecycle as the hourly snapshot.
type MarketDailySnapshot struct {
	// ID is {marketID}-{dayBucket}
	ID         string `gorm:"column:id;primaryKey;type:text"`
	ProtocolID string `gorm:"column:protocol_id;not null;type:text"`
	MarketID   string `gorm:"column:market_id;not null;type:text;index"`

	// RateIDs references the bucket's immutable RateSnapshot clones
	RateIDs datatypes.JSONSlice[string] `gorm:"column:rate_ids;type:jsonb"`

	TotalValueLockedUSD              decimal.Decimal `gorm:"column:total_value_locked_usd;not null;type:numeric(38,18)"`
	TotalDepositBalanceUSD           decimal.Decimal `gorm:"column:total_deposit_balance_usd;not null;type:numeric(38,18)"`
	TotalBorrowBalanceUSD            decimal.Decimal `gorm:"column:total_borrow_balance_usd;not null;type:numeric(38,18)"`
	CumulativeDepositUSD             decimal.Decimal `gorm:"column:cumulative_deposit_usd;not null;type:numeric(38,18)"`
	CumulativeBorrowUSD              decimal.Decimal `gorm:"column:cumulative_borrow_usd;not null;type:numeric(38,18)"`
	CumulativeLiquidateUSD           decimal.Decimal `gorm:"column:cumulative_liquidate_usd;not null;type:numeric(38,18)"`
	CumulativeTotalRevenueUSD        decimal.Decimal `gorm:"column:cumulative_total_revenue_usd;not null;type:numeric(38,18)"`
	CumulativeProtocolSideRevenueUSD decimal.Decimal `gorm:"column:cumulative_protocol_side_revenue_usd;not null;type:numeric(38,18)"`
	CumulativeSupplySideRevenueUSD   decimal.Decimal `gorm:"column:cumulative_supply_side_revenue_usd;not null;type:numeric(38,18)"`

	// Daily flow fields: additive per-event deltas within the bucket
	DailyDepositUSD             decimal.Decimal `gorm:"column:daily_deposit_usd;not null;type:numeric(38,18)"`
	DailyBorrowUSD              decimal.Decimal `gorm:"column:daily_borrow_usd;not null;type:numeric(38,18)"`
	DailyWithdrawUSD            decimal.Decimal `gorm:"column:daily_withdraw_usd;not null;type:numeric(38,18)"`
	DailyRepayUSD               decimal.Decimal `gorm:"column:daily_repay_usd;not null;type:numeric(38,18)"`
	DailyLiquidateUSD           decimal.Decimal `gorm:"column:daily_liquidate_usd;not null;type:numeric(38,18)"`
	DailyTotalRevenueUSD        decimal.Decimal `gorm:"column:daily_total_revenue_usd;not null;type:numeric(38,18)"`
	DailyProtocolSideRevenueUSD decimal.Decimal `gorm:"column:daily_protocol_side_revenue_usd;not null;type:numeric(38,18)"`
	DailySupplySideRevenueUSD   decimal.Decimal `gorm:"column:daily_supply_side_revenue_usd;not null;type:numeric(38,18)"`

	InputTokenBalance   decimal.Decimal `gorm:"column:input_token_balance;not null;type:numeric(78,0)"`
	InputTokenPriceUSD  decimal.Decimal `gorm:"column:input_token_price_usd;not null;type:numeric(38,18)"`
	OutputTokenSupply   decimal.Decimal `gorm:"column:output_token_supply;not null;type:numeric(78,0)"`
	OutputTokenPriceUSD decimal.Decimal `gorm:"column:output_token_price_usd;not null;type:numeric(38,18)"`
	ExchangeRate        decimal.Decimal `gorm:"column:exchange_rate;not null;type:numeric(38,18)"`

	BlockNumber uint64 `gorm:"column:block_number;not null"`
	Timestamp   int64  `gorm:"column:timestamp;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MarketDailySnapshot model
func (MarketDailySnapshot) TableName() string {
	return "market_daily_snapshots"
}
