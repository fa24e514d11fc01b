package schema

import (
	"time"
)

// Account represents the accounts table - one row per distinct actor address
// ever seen, used as the unique-user ledger. Created once, never updated.
type Account struct {
	// ID is the actor address
	ID string `gorm:"column:id;primaryKey;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}

// ActiveAccount represents the active_accounts table - existence alone marks
// an account active within one time bucket. Keyed
// {GRANULARITY}-{account}-{bucket}; created at most once per bucket.
type ActiveAccount struct {
	// ID is the composite activity key
	ID string `gorm:"column:id;primaryKey;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ActiveAccount model
func (ActiveAccount) TableName() string {
	return "active_accounts"
}
