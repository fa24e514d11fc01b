package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// BlockBufferID is the fixed id of the singleton ring-buffer row
const BlockBufferID = "CIRCULAR_BUFFER"

// BlockBufferSize is the number of block samples the ring holds
const BlockBufferSize = 144

// BlockBufferSentinel marks a slot that has never been written
const BlockBufferSentinel int64 = -1

// BlockBuffer represents the block_buffers table - the singleton rolling
// window of recently observed block numbers used to estimate the chain's
// blocks-per-day rate. Both cursors advance mod BufferSize; once the ring is
// full the window-start cursor evicts the oldest sample in lockstep with the
// write cursor.
type BlockBuffer struct {
	// ID is always BlockBufferID
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Blocks holds the ring slots; BlockBufferSentinel marks unwritten slots
	Blocks datatypes.JSONSlice[int64] `gorm:"column:blocks;type:jsonb"`
	// NextIndex is the write cursor
	NextIndex int32 `gorm:"column:next_index;not null"`
	// WindowStartIndex is the eviction cursor
	WindowStartIndex int32 `gorm:"column:window_start_index;not null"`
	// BufferSize is the slot count, fixed at creation
	BufferSize int32 `gorm:"column:buffer_size;not null"`
	// BlocksPerDay is the current blocks-per-day estimate
	BlocksPerDay decimal.Decimal `gorm:"column:blocks_per_day;not null;type:numeric(38,18)"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the BlockBuffer model
func (BlockBuffer) TableName() string {
	return "block_buffers"
}
