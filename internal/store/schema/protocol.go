package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Protocol represents the protocols table - the singleton lending protocol
// record, keyed by the market contract address. Never deleted.
type Protocol struct {
	// ID is the lending market contract address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the protocol display name
	Name string `gorm:"column:name;not null;type:text"`
	// Slug is the protocol url-safe identifier
	Slug string `gorm:"column:slug;not null;type:text"`
	// SchemaVersion / SubgraphVersion / MethodologyVersion are metadata version strings
	SchemaVersion      string `gorm:"column:schema_version;not null;type:text"`
	SubgraphVersion    string `gorm:"column:subgraph_version;not null;type:text"`
	MethodologyVersion string `gorm:"column:methodology_version;not null;type:text"`
	// Network is the chain network identifier
	Network string `gorm:"column:network;not null;type:text"`
	// Type / LendingType / RiskType classify the protocol
	Type        string `gorm:"column:type;not null;type:text"`
	LendingType string `gorm:"column:lending_type;not null;type:text"`
	RiskType    string `gorm:"column:risk_type;not null;type:text"`

	// CumulativeUniqueUsers counts distinct actor addresses ever seen
	CumulativeUniqueUsers int32 `gorm:"column:cumulative_unique_users;not null"`
	// TotalPoolCount counts listed markets
	TotalPoolCount int32 `gorm:"column:total_pool_count;not null"`

	TotalValueLockedUSD              decimal.Decimal `gorm:"column:total_value_locked_usd;not null;type:numeric(38,18)"`
	TotalDepositBalanceUSD           decimal.Decimal `gorm:"column:total_deposit_balance_usd;not null;type:numeric(38,18)"`
	TotalBorrowBalanceUSD            decimal.Decimal `gorm:"column:total_borrow_balance_usd;not null;type:numeric(38,18)"`
	CumulativeDepositUSD             decimal.Decimal `gorm:"column:cumulative_deposit_usd;not null;type:numeric(38,18)"`
	CumulativeBorrowUSD              decimal.Decimal `gorm:"column:cumulative_borrow_usd;not null;type:numeric(38,18)"`
	CumulativeLiquidateUSD           decimal.Decimal `gorm:"column:cumulative_liquidate_usd;not null;type:numeric(38,18)"`
	CumulativeTotalRevenueUSD        decimal.Decimal `gorm:"column:cumulative_total_revenue_usd;not null;type:numeric(38,18)"`
	CumulativeProtocolSideRevenueUSD decimal.Decimal `gorm:"column:cumulative_protocol_side_revenue_usd;not null;type:numeric(38,18)"`
	CumulativeSupplySideRevenueUSD   decimal.Decimal `gorm:"column:cumulative_supply_side_revenue_usd;not null;type:numeric(38,18)"`

	// LiquidationIncentive is the bonus paid to liquidators, in [0,1]
	LiquidationIncentive decimal.Decimal `gorm:"column:liquidation_incentive;not null;type:numeric(38,18)"`
	// PriceOracle is the active oracle contract address
	PriceOracle string `gorm:"column:price_oracle;not null;type:text"`

	// MarketIDs is the insertion-ordered roster of listed market ids
	MarketIDs datatypes.JSONSlice[string] `gorm:"column:market_ids;type:jsonb"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Protocol model
func (Protocol) TableName() string {
	return "protocols"
}
