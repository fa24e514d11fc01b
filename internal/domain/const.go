package domain

// Network represents the chain network identifier
type Network string

const (
	NetworkMainnet Network = "core-1"
	NetworkTestnet Network = "test-core-1"
)

// IsValidNetwork checks if a network is one this indexer knows how to run against
func IsValidNetwork(n Network) bool {
	return n == NetworkMainnet || n == NetworkTestnet
}

// EventAction is the contract-level action carried by a chain event
type EventAction string

const (
	ActionInitAsset      EventAction = "init_asset"
	ActionDeposit        EventAction = "deposit"
	ActionRedeem         EventAction = "redeem"
	ActionBorrow         EventAction = "borrow"
	ActionRepay          EventAction = "repay"
	ActionAccrueInterest EventAction = "accrue_interest"
	ActionFeedPrice      EventAction = "feed_price"
	ActionSetPriceOracle EventAction = "update_price_oracle"
)

// ActionType classifies a persisted market action entity
type ActionType string

const (
	ActionTypeDeposit   ActionType = "DEPOSIT"
	ActionTypeWithdraw  ActionType = "WITHDRAW"
	ActionTypeBorrow    ActionType = "BORROW"
	ActionTypeRepay     ActionType = "REPAY"
	ActionTypeLiquidate ActionType = "LIQUIDATE"
)

// InterestRateSide distinguishes the lender and borrower rate of a market
type InterestRateSide string

const (
	RateSideLender   InterestRateSide = "LENDER"
	RateSideBorrower InterestRateSide = "BORROWER"
)

// InterestRateType is the rate model; only variable rates exist on-chain today
type InterestRateType string

const (
	RateTypeVariable InterestRateType = "VARIABLE"
	RateTypeStable   InterestRateType = "STABLE"
	RateTypeFixed    InterestRateType = "FIXED"
)

// Granularity is the time-bucket width of a snapshot or activity sentinel
type Granularity string

const (
	GranularityHourly Granularity = "HOURLY"
	GranularityDaily  Granularity = "DAILY"
)

// Protocol classification enums, fixed for this deployment
const (
	ProtocolTypeLending = "LENDING"
	LendingTypePooled   = "POOLED"
	RiskTypeGlobal      = "GLOBAL"
)

// Time constants used for bucketing and rate annualization
const (
	SecondsPerHour int64 = 60 * 60
	SecondsPerDay  int64 = 60 * 60 * 24
	DaysPerYear    int64 = 365
)
