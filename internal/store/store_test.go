package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

// RunStoreTests runs the store contract suite against any Store
// implementation: getters return (nil, nil) when absent, Save upserts,
// Create ignores duplicates.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	ctx := context.Background()

	t.Run("Protocol", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		got, err := s.GetProtocol(ctx, "proto")
		require.NoError(t, err)
		assert.Nil(t, got)

		p := &schema.Protocol{
			ID: "proto", Name: "Bamboo Loan", Slug: "bamboo-loan",
			SchemaVersion: "1.0.0", SubgraphVersion: "1.0.0", MethodologyVersion: "1.0.0",
			Network: "core-1", Type: "LENDING", LendingType: "POOLED", RiskType: "GLOBAL",
			MarketIDs: datatypes.NewJSONSlice([]string{"m1", "m2"}),
		}
		require.NoError(t, s.SaveProtocol(ctx, p))

		got, err = s.GetProtocol(ctx, "proto")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Bamboo Loan", got.Name)
		assert.Equal(t, []string{"m1", "m2"}, []string(got.MarketIDs))

		p.TotalPoolCount = 3
		require.NoError(t, s.SaveProtocol(ctx, p))
		got, err = s.GetProtocol(ctx, "proto")
		require.NoError(t, err)
		assert.Equal(t, int32(3), got.TotalPoolCount)
	})

	t.Run("Market", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		m := &schema.Market{
			ID: "mkt", Name: "Persistence XPRT", ProtocolID: "proto",
			InputTokenID: "uxprt", OutputTokenID: "pxprt",
			RateIDs:       datatypes.NewJSONSlice([]string{"r1", "r2"}),
			ReserveFactor: decimal.RequireFromString("0.25"),
		}
		require.NoError(t, s.SaveMarket(ctx, m))

		got, err := s.GetMarket(ctx, "mkt")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []string{"r1", "r2"}, []string(got.RateIDs))
		assert.True(t, got.ReserveFactor.Equal(decimal.RequireFromString("0.25")))

		m.CumulativeDepositUSD = decimal.RequireFromString("123.456")
		require.NoError(t, s.SaveMarket(ctx, m))
		got, err = s.GetMarket(ctx, "mkt")
		require.NoError(t, err)
		assert.True(t, got.CumulativeDepositUSD.Equal(decimal.RequireFromString("123.456")))
	})

	t.Run("Token", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		require.NoError(t, s.SaveToken(ctx, &schema.Token{ID: "uxprt", Name: "XPRT", Symbol: "XPRT", Decimals: 6}))
		got, err := s.GetToken(ctx, "uxprt")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int32(6), got.Decimals)
	})

	t.Run("InterestRate", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		r := &schema.InterestRate{ID: "LENDER-VARIABLE-mkt", Side: "LENDER", Type: "VARIABLE", Rate: decimal.Zero}
		require.NoError(t, s.SaveInterestRate(ctx, r))

		r.Rate = decimal.RequireFromString("4.2")
		require.NoError(t, s.SaveInterestRate(ctx, r))

		got, err := s.GetInterestRate(ctx, "LENDER-VARIABLE-mkt")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Rate.Equal(decimal.RequireFromString("4.2")))

		// rate snapshots are immutable clones; duplicates are silently dropped
		snap := &schema.RateSnapshot{ID: "LENDER-VARIABLE-mkt-19000", RateID: "LENDER-VARIABLE-mkt", Side: "LENDER", Type: "VARIABLE", Rate: decimal.RequireFromString("4.2")}
		require.NoError(t, s.CreateRateSnapshot(ctx, snap))
		require.NoError(t, s.CreateRateSnapshot(ctx, snap))
	})

	t.Run("FeedPrice", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		got, err := s.GetFeedPrice(ctx, "mkt")
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, s.SaveFeedPrice(ctx, &schema.FeedPrice{ID: "mkt", ProtocolID: "proto", TokenPriceUSD: decimal.NewFromInt(2), BlockNumber: 100}))
		require.NoError(t, s.SaveFeedPrice(ctx, &schema.FeedPrice{ID: "mkt", ProtocolID: "proto", TokenPriceUSD: decimal.NewFromInt(3), BlockNumber: 101}))

		got, err = s.GetFeedPrice(ctx, "mkt")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.TokenPriceUSD.Equal(decimal.NewFromInt(3)))
		assert.Equal(t, uint64(101), got.BlockNumber)
	})

	t.Run("MarketActionAndChainEvent", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		a := &schema.MarketAction{ID: "tx1-100-DEPOSIT", Type: "DEPOSIT", TxHash: "tx1", ProtocolID: "proto", MarketID: "mkt", AssetID: "uxprt", Account: "alice", Amount: decimal.NewFromInt(1), AmountUSD: decimal.NewFromInt(2), BlockNumber: 100}
		require.NoError(t, s.CreateMarketAction(ctx, a))
		require.NoError(t, s.CreateMarketAction(ctx, a))

		e := &schema.ChainEvent{ID: "h-100-wasm", Type: "wasm", Action: "deposit", TxHash: "tx1", BlockNumber: 100}
		require.NoError(t, s.CreateChainEvent(ctx, e))
		require.NoError(t, s.CreateChainEvent(ctx, e))
	})

	t.Run("AccountAndActiveAccount", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		got, err := s.GetAccount(ctx, "alice")
		require.NoError(t, err)
		assert.Nil(t, got)

		require.NoError(t, s.CreateAccount(ctx, &schema.Account{ID: "alice"}))
		require.NoError(t, s.CreateAccount(ctx, &schema.Account{ID: "alice"}))

		got, err = s.GetAccount(ctx, "alice")
		require.NoError(t, err)
		assert.NotNil(t, got)

		active, err := s.GetActiveAccount(ctx, "DAILY-alice-19000")
		require.NoError(t, err)
		assert.Nil(t, active)

		require.NoError(t, s.CreateActiveAccount(ctx, &schema.ActiveAccount{ID: "DAILY-alice-19000"}))
		active, err = s.GetActiveAccount(ctx, "DAILY-alice-19000")
		require.NoError(t, err)
		assert.NotNil(t, active)
	})

	t.Run("MarketSnapshots", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		hourly := &schema.MarketHourlySnapshot{ID: "mkt-456000", ProtocolID: "proto", MarketID: "mkt", RateIDs: datatypes.NewJSONSlice([]string{"r1-456000"})}
		require.NoError(t, s.SaveMarketHourlySnapshot(ctx, hourly))
		hourly.HourlyDepositUSD = decimal.NewFromInt(2)
		require.NoError(t, s.SaveMarketHourlySnapshot(ctx, hourly))

		gotHourly, err := s.GetMarketHourlySnapshot(ctx, "mkt-456000")
		require.NoError(t, err)
		require.NotNil(t, gotHourly)
		assert.True(t, gotHourly.HourlyDepositUSD.Equal(decimal.NewFromInt(2)))
		assert.Equal(t, []string{"r1-456000"}, []string(gotHourly.RateIDs))

		daily := &schema.MarketDailySnapshot{ID: "mkt-19000", ProtocolID: "proto", MarketID: "mkt"}
		require.NoError(t, s.SaveMarketDailySnapshot(ctx, daily))
		gotDaily, err := s.GetMarketDailySnapshot(ctx, "mkt-19000")
		require.NoError(t, err)
		assert.NotNil(t, gotDaily)
	})

	t.Run("UsageSnapshots", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		hourly := &schema.UsageHourlySnapshot{ID: "HOURLY-456000", ProtocolID: "proto", HourlyActiveUsers: 1, HourlyTransactionCount: 2}
		require.NoError(t, s.SaveUsageHourlySnapshot(ctx, hourly))
		gotHourly, err := s.GetUsageHourlySnapshot(ctx, "HOURLY-456000")
		require.NoError(t, err)
		require.NotNil(t, gotHourly)
		assert.Equal(t, int32(2), gotHourly.HourlyTransactionCount)

		daily := &schema.UsageDailySnapshot{ID: "DAILY-19000", ProtocolID: "proto", DailyActiveUsers: 1, TotalPoolCount: 1}
		require.NoError(t, s.SaveUsageDailySnapshot(ctx, daily))
		gotDaily, err := s.GetUsageDailySnapshot(ctx, "DAILY-19000")
		require.NoError(t, err)
		require.NotNil(t, gotDaily)
		assert.Equal(t, int32(1), gotDaily.TotalPoolCount)
	})

	t.Run("FinancialsSnapshot", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		snap := &schema.FinancialsSnapshot{ID: "19000", ProtocolID: "proto", DailyDepositUSD: decimal.NewFromInt(2)}
		require.NoError(t, s.SaveFinancialsSnapshot(ctx, snap))
		snap.DailyDepositUSD = decimal.NewFromInt(4)
		require.NoError(t, s.SaveFinancialsSnapshot(ctx, snap))

		got, err := s.GetFinancialsSnapshot(ctx, "19000")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.DailyDepositUSD.Equal(decimal.NewFromInt(4)))
	})

	t.Run("BlockBuffer", func(t *testing.T) {
		s := initDB(t)
		defer cleanupDB(t)

		got, err := s.GetBlockBuffer(ctx, schema.BlockBufferID)
		require.NoError(t, err)
		assert.Nil(t, got)

		blocks := []int64{100, 110, schema.BlockBufferSentinel}
		buf := &schema.BlockBuffer{
			ID: schema.BlockBufferID, Blocks: datatypes.NewJSONSlice(blocks),
			NextIndex: 2, WindowStartIndex: 0, BufferSize: 3,
			BlocksPerDay: decimal.RequireFromString("14644.067796610169"),
		}
		require.NoError(t, s.SaveBlockBuffer(ctx, buf))

		got, err = s.GetBlockBuffer(ctx, schema.BlockBufferID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, blocks, []int64(got.Blocks))
		assert.Equal(t, int32(2), got.NextIndex)
	})
}

// TestMemoryStore runs the contract suite against the in-memory store
func TestMemoryStore(t *testing.T) {
	RunStoreTests(t,
		func(t *testing.T) Store { return NewMemoryStore() },
		func(t *testing.T) {},
	)
}
