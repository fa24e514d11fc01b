package engine

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/bambooloan/lending-indexer/internal/deployment"
	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

// getOrCreateBlockBuffer returns the singleton block-number ring buffer,
// creating it lazily with every slot at the sentinel and the blocks-per-day
// estimate seeded from the network's bootstrap block time.
func (e *Engine) getOrCreateBlockBuffer(ctx context.Context) (*schema.BlockBuffer, error) {
	buf, err := e.store.GetBlockBuffer(ctx, schema.BlockBufferID)
	if err != nil {
		return nil, err
	}
	if buf != nil {
		return buf, nil
	}

	blocks := make([]int64, schema.BlockBufferSize)
	for i := range blocks {
		blocks[i] = schema.BlockBufferSentinel
	}
	buf = &schema.BlockBuffer{
		ID:               schema.BlockBufferID,
		Blocks:           datatypes.NewJSONSlice(blocks),
		NextIndex:        0,
		WindowStartIndex: 0,
		BufferSize:       schema.BlockBufferSize,
		BlocksPerDay:     deployment.StartingBlocksPerDay(e.dep.Network),
	}
	if err := e.store.SaveBlockBuffer(ctx, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// observeBlock records one block number in the ring. The write cursor
// advances mod the buffer size; once the ring is full the window-start
// cursor evicts the oldest sample in lockstep. Returns the buffer so the
// caller can read the current blocks-per-day estimate.
func (e *Engine) observeBlock(ctx context.Context, height uint64) (*schema.BlockBuffer, error) {
	buf, err := e.getOrCreateBlockBuffer(ctx)
	if err != nil {
		return nil, err
	}

	next := buf.NextIndex
	if buf.Blocks[next] != schema.BlockBufferSentinel {
		buf.WindowStartIndex = (buf.WindowStartIndex + 1) % buf.BufferSize
	}
	buf.Blocks[next] = int64(height)
	buf.NextIndex = (next + 1) % buf.BufferSize

	if err := e.store.SaveBlockBuffer(ctx, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// unitPerYear converts the buffer's blocks-per-day estimate into the
// per-year unit count used to annualize per-block rates
func unitPerYear(buf *schema.BlockBuffer) decimal.Decimal {
	return buf.BlocksPerDay.Mul(decimal.NewFromInt(domain.DaysPerYear))
}
