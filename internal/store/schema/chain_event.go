package schema

import (
	"time"
)

// ChainEvent represents the chain_events table - the append-only audit row
// written for every dispatched event before any handler runs. Never updated.
type ChainEvent struct {
	// ID is {blockHash}-{height}-{eventType}
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Type is the raw event type
	Type string `gorm:"column:type;not null;type:text"`
	// Action is the contract action attribute, empty when absent
	Action string `gorm:"column:action;type:text"`
	// ContractAddress is the emitting contract, empty when absent
	ContractAddress string `gorm:"column:contract_address;type:text"`
	// TxHash is the enclosing transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text"`

	BlockNumber uint64 `gorm:"column:block_number;not null"`
	Timestamp   int64  `gorm:"column:timestamp;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ChainEvent model
func (ChainEvent) TableName() string {
	return "chain_events"
}
