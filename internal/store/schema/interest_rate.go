package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestRate represents the interest_rates table - a market's current
// annualized rate for one side. Mutable: overwritten in place on every
// interest accrual.
type InterestRate struct {
	// ID is {SIDE}-{TYPE}-{marketID}
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Side is LENDER or BORROWER
	Side string `gorm:"column:side;not null;type:text"`
	// Type is the rate model, VARIABLE for all current markets
	Type string `gorm:"column:type;not null;type:text"`
	// Rate is the annualized percentage rate
	Rate decimal.Decimal `gorm:"column:rate;not null;type:numeric(38,18)"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the InterestRate model
func (InterestRate) TableName() string {
	return "interest_rates"
}

// RateSnapshot represents the rate_snapshots table - an immutable per-bucket
// clone of an InterestRate. A separate type from InterestRate so snapshot
// rows can never be mutated through the live-rate code path.
type RateSnapshot struct {
	// ID is {rateID}-{bucket}
	ID string `gorm:"column:id;primaryKey;type:text"`
	// RateID references the live rate this row was cloned from
	RateID string `gorm:"column:rate_id;not null;type:text;index"`
	Side   string `gorm:"column:side;not null;type:text"`
	Type   string `gorm:"column:type;not null;type:text"`
	// Rate is the annualized percentage rate at snapshot time
	Rate decimal.Decimal `gorm:"column:rate;not null;type:numeric(38,18)"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RateSnapshot model
func (RateSnapshot) TableName() string {
	return "rate_snapshots"
}
