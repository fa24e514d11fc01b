package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/bambooloan/lending-indexer/internal/store"
	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

func TestMemoryGetAbsent(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	market, err := s.GetMarket(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, market)

	protocol, err := s.GetProtocol(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, protocol)
}

func TestMemorySaveUpserts(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.SaveToken(ctx, &schema.Token{ID: "tok", Symbol: "XPRT", Decimals: 6}))
	require.NoError(t, s.SaveToken(ctx, &schema.Token{ID: "tok", Symbol: "XPRT", Decimals: 6, LastPriceUSD: decimal.NewFromInt(2)}))

	tok, err := s.GetToken(ctx, "tok")
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.True(t, tok.LastPriceUSD.Equal(decimal.NewFromInt(2)))
}

func TestMemoryCreateIgnoresDuplicate(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	first := &schema.MarketAction{ID: "a1", Type: "DEPOSIT", Amount: decimal.NewFromInt(100)}
	require.NoError(t, s.CreateMarketAction(ctx, first))

	// replaying the same action must not overwrite the original row
	replay := &schema.MarketAction{ID: "a1", Type: "DEPOSIT", Amount: decimal.NewFromInt(999)}
	require.NoError(t, s.CreateMarketAction(ctx, replay))

	require.NoError(t, s.CreateChainEvent(ctx, &schema.ChainEvent{ID: "e1"}))
	require.NoError(t, s.CreateChainEvent(ctx, &schema.ChainEvent{ID: "e1"}))

	require.NoError(t, s.CreateAccount(ctx, &schema.Account{ID: "alice"}))
	require.NoError(t, s.CreateAccount(ctx, &schema.Account{ID: "alice"}))

	acct, err := s.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, acct)
}

// Stored state must not be reachable through pointers returned earlier;
// mutating a loaded entity without saving it must leave the store unchanged.
func TestMemoryCloneIsolation(t *testing.T) {
	s := store.NewMemoryStore()
	ctx := context.Background()

	p := &schema.Protocol{ID: "proto", MarketIDs: datatypes.NewJSONSlice([]string{"m1"})}
	require.NoError(t, s.SaveProtocol(ctx, p))

	loaded, err := s.GetProtocol(ctx, "proto")
	require.NoError(t, err)
	loaded.MarketIDs = append(loaded.MarketIDs, "m2")
	loaded.TotalPoolCount = 5

	fresh, err := s.GetProtocol(ctx, "proto")
	require.NoError(t, err)
	assert.Len(t, fresh.MarketIDs, 1)
	assert.Equal(t, int32(0), fresh.TotalPoolCount)

	buf := &schema.BlockBuffer{ID: schema.BlockBufferID, Blocks: datatypes.NewJSONSlice([]int64{1, 2, 3})}
	require.NoError(t, s.SaveBlockBuffer(ctx, buf))
	loadedBuf, err := s.GetBlockBuffer(ctx, schema.BlockBufferID)
	require.NoError(t, err)
	loadedBuf.Blocks[0] = 99

	freshBuf, err := s.GetBlockBuffer(ctx, schema.BlockBufferID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), freshBuf.Blocks[0])
}
