package schema

import (
	"time"
)

// UsageHourlySnapshot represents the usage_hourly_snapshots table - per-hour
// protocol activity counters, keyed HOURLY-{hourBucket}.
type UsageHourlySnapshot struct {
	// ID is the usage snapshot key
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ProtocolID references the owning protocol
	ProtocolID string `gorm:"column:protocol_id;not null;type:text"`

	// HourlyActiveUsers counts accounts first seen in this bucket
	HourlyActiveUsers int32 `gorm:"column:hourly_active_users;not null"`
	// CumulativeUniqueUsers mirrors the protocol's global counter at write time
	CumulativeUniqueUsers int32 `gorm:"column:cumulative_unique_users;not null"`

	HourlyTransactionCount int32 `gorm:"column:hourly_transaction_count;not null"`
	HourlyDepositCount     int32 `gorm:"column:hourly_deposit_count;not null"`
	HourlyWithdrawCount    int32 `gorm:"column:hourly_withdraw_count;not null"`
	HourlyBorrowCount      int32 `gorm:"column:hourly_borrow_count;not null"`
	HourlyRepayCount       int32 `gorm:"column:hourly_repay_count;not null"`
	HourlyLiquidateCount   int32 `gorm:"column:hourly_liquidate_count;not null"`

	BlockNumber uint64 `gorm:"column:block_number;not null"`
	Timestamp   int64  `gorm:"column:timestamp;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UsageHourlySnapshot model
func (UsageHourlySnapshot) TableName() string {
	return "usage_hourly_snapshots"
}

// UsageDailySnapshot represents the usage_daily_snapshots table, keyed
// DAILY-{dayBucket}.
type UsageDailySnapshot struct {
	// ID is the usage snapshot key
	ID         string `gorm:"column:id;primaryKey;type:text"`
	ProtocolID string `gorm:"column:protocol_id;not null;type:text"`

	DailyActiveUsers      int32 `gorm:"column:daily_active_users;not null"`
	CumulativeUniqueUsers int32 `gorm:"column:cumulative_unique_users;not null"`
	// TotalPoolCount mirrors the protocol's market count at write time
	TotalPoolCount int32 `gorm:"column:total_pool_count;not null"`

	DailyTransactionCount int32 `gorm:"column:daily_transaction_count;not null"`
	DailyDepositCount     int32 `gorm:"column:daily_deposit_count;not null"`
	DailyWithdrawCount    int32 `gorm:"column:daily_withdraw_count;not null"`
	DailyBorrowCount      int32 `gorm:"column:daily_borrow_count;not null"`
	DailyRepayCount       int32 `gorm:"column:daily_repay_count;not null"`
	DailyLiquidateCount   int32 `gorm:"column:daily_liquidate_count;not null"`

	BlockNumber uint64 `gorm:"column:block_number;not null"`
	Timestamp   int64  `gorm:"column:timestamp;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the UsageDailySnapshot model
func (UsageDailySnapshot) TableName() string {
	return "usage_daily_snapshots"
}
