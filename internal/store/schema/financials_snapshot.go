package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialsSnapshot represents the financials_snapshots table - the daily
// protocol-wide financial snapshot, keyed by day bucket. Daily flow fields
// are fully re-derived on every write by summing the per-market daily
// snapshots, never accumulated incrementally.
type FinancialsSnapshot struct {
	// ID is the day bucket index
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ProtocolID references the owning protocol
	ProtocolID string `gorm:"column:protocol_id;not null;type:text"`

	TotalValueLockedUSD              decimal.Decimal `gorm:"column:total_value_locked_usd;not null;type:numeric(38,18)"`
	TotalDepositBalanceUSD           decimal.Decimal `gorm:"column:total_deposit_balance_usd;not null;type:numeric(38,18)"`
	TotalBorrowBalanceUSD            decimal.Decimal `gorm:"column:total_borrow_balance_usd;not null;type:numeric(38,18)"`
	CumulativeDepositUSD             decimal.Decimal `gorm:"column:cumulative_deposit_usd;not null;type:numeric(38,18)"`
	CumulativeBorrowUSD              decimal.Decimal `gorm:"column:cumulative_borrow_usd;not null;type:numeric(38,18)"`
	CumulativeLiquidateUSD           decimal.Decimal `gorm:"column:cumulative_liquidate_usd;not null;type:numeric(38,18)"`
	CumulativeTotalRevenueUSD        decimal.Decimal `gorm:"column:cumulative_total_revenue_usd;not null;type:numeric(38,18)"`
	CumulativeProtocolSideRevenueUSD decimal.Decimal `gorm:"column:cumulative_protocol_side_revenue_usd;not null;type:numeric(38,18)"`
	CumulativeSupplySideRevenueUSD   decimal.Decimal `gorm:"column:cumulative_supply_side_revenue_usd;not null;type:numeric(38,18)"`

	DailyDepositUSD             decimal.Decimal `gorm:"column:daily_deposit_usd;not null;type:numeric(38,18)"`
	DailyBorrowUSD              decimal.Decimal `gorm:"column:daily_borrow_usd;not null;type:numeric(38,18)"`
	DailyWithdrawUSD            decimal.Decimal `gorm:"column:daily_withdraw_usd;not null;type:numeric(38,18)"`
	DailyRepayUSD               decimal.Decimal `gorm:"column:daily_repay_usd;not null;type:numeric(38,18)"`
	DailyLiquidateUSD           decimal.Decimal `gorm:"column:daily_liquidate_usd;not null;type:numeric(38,18)"`
	DailyTotalRevenueUSD        decimal.Decimal `gorm:"column:daily_total_revenue_usd;not null;type:numeric(38,18)"`
	DailyProtocolSideRevenueUSD decimal.Decimal `gorm:"column:daily_protocol_side_revenue_usd;not null;type:numeric(38,18)"`
	DailySupplySideRevenueUSD   decimal.Decimal `gorm:"column:daily_supply_side_revenue_usd;not null;type:numeric(38,18)"`

	BlockNumber uint64 `gorm:"column:block_number;not null"`
	Timestamp   int64  `gorm:"column:timestamp;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the FinancialsSnapshot model
func (FinancialsSnapshot) TableName() string {
	return "financials_snapshots"
}
