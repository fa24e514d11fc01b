package engine_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bambooloan/lending-indexer/internal/deployment"
	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/engine"
	"github.com/bambooloan/lending-indexer/internal/logger"
	"github.com/bambooloan/lending-indexer/internal/mocks"
	"github.com/bambooloan/lending-indexer/internal/scale"
	"github.com/bambooloan/lending-indexer/internal/store"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const (
	testProtocolAddr   = "persistence1market"
	testOracleAddr     = "persistence1oracle"
	testAsset          = "uxprt"
	testDerivativeAddr = "persistence1pxprt"

	// 2023-01-01T00:00:00Z
	testTime int64 = 1672531200
)

func testDeployment() *deployment.Deployment {
	return &deployment.Deployment{
		Network:            domain.NetworkMainnet,
		ProtocolAddress:    testProtocolAddr,
		PriceOracleAddress: testOracleAddr,
		Name:               "Bamboo Loan",
		Slug:               "bamboo-loan",
		SchemaVersion:      "1.0.0",
		SubgraphVersion:    "1.0.0",
		MethodologyVersion: "1.0.0",
		Assets: map[string]deployment.AssetListing{
			testAsset: {
				DerivativeAddress:  testDerivativeAddr,
				Name:               "Persistence XPRT",
				Symbol:             "XPRT",
				Decimals:           6,
				DerivativeDecimals: 6,
				ReserveFactor:      decimal.RequireFromString("0.25"),
			},
		},
	}
}

func newTestEngine(t *testing.T) (*engine.Engine, store.Store) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(testTime, 0)).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()

	st := store.NewMemoryStore()
	return engine.New(st, testDeployment(), clock), st
}

func event(action domain.EventAction, height uint64, ts int64, txHash string, attrs ...domain.Attribute) *domain.ChainEvent {
	all := append([]domain.Attribute{{Key: "action", Value: string(action)}}, attrs...)
	return &domain.ChainEvent{
		Type:       "wasm",
		Attributes: all,
		Block:      domain.BlockHeader{Hash: "blk", Height: height, Time: ts},
		TxHash:     txHash,
	}
}

func listingEvent(height uint64, ts int64) *domain.ChainEvent {
	return event(domain.ActionInitAsset, height, ts, "tx-listing",
		domain.Attribute{Key: "asset", Value: testAsset})
}

func feedEvent(height uint64, ts int64, price string) *domain.ChainEvent {
	return event(domain.ActionFeedPrice, height, ts, "tx-feed",
		domain.Attribute{Key: "asset", Value: testDerivativeAddr},
		domain.Attribute{Key: "price", Value: price})
}

func depositEvent(height uint64, ts int64, txHash, actor, amount string) *domain.ChainEvent {
	return event(domain.ActionDeposit, height, ts, txHash,
		domain.Attribute{Key: "asset", Value: testAsset},
		domain.Attribute{Key: "to", Value: actor},
		domain.Attribute{Key: "amount", Value: amount})
}

func withdrawEvent(height uint64, ts int64, txHash, actor, amount string) *domain.ChainEvent {
	return event(domain.ActionRedeem, height, ts, txHash,
		domain.Attribute{Key: "asset", Value: testAsset},
		domain.Attribute{Key: "user", Value: actor},
		domain.Attribute{Key: "burn_amount", Value: amount})
}

func borrowEvent(height uint64, ts int64, txHash, actor, amount string) *domain.ChainEvent {
	return event(domain.ActionBorrow, height, ts, txHash,
		domain.Attribute{Key: "asset", Value: testAsset},
		domain.Attribute{Key: "sender", Value: actor},
		domain.Attribute{Key: "amount", Value: amount})
}

func repayEvent(height uint64, ts int64, txHash, actor, amount string) *domain.ChainEvent {
	return event(domain.ActionRepay, height, ts, txHash,
		domain.Attribute{Key: "asset", Value: testAsset},
		domain.Attribute{Key: "sender", Value: actor},
		domain.Attribute{Key: "amount", Value: amount})
}

func accrueEvent(height uint64, ts int64, liquidityIndex, borrowIndex, liquidityRate, borrowRate string) *domain.ChainEvent {
	return event(domain.ActionAccrueInterest, height, ts, "tx-accrue",
		domain.Attribute{Key: "asset", Value: testAsset},
		domain.Attribute{Key: "liquidity_index", Value: liquidityIndex},
		domain.Attribute{Key: "borrow_index", Value: borrowIndex},
		domain.Attribute{Key: "liquidity_rate", Value: liquidityRate},
		domain.Attribute{Key: "borrow_rate", Value: borrowRate})
}

func TestMarketListed(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))

	market, err := st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	require.NotNil(t, market)
	assert.Equal(t, "Persistence XPRT", market.Name)
	assert.Equal(t, testAsset, market.InputTokenID)
	assert.Equal(t, testDerivativeAddr, market.OutputTokenID)
	assert.True(t, market.IsActive)
	assert.True(t, market.ReserveFactor.Equal(decimal.RequireFromString("0.25")))
	assert.Equal(t, uint64(100), market.CreatedBlockNumber)
	assert.Equal(t, testTime, market.CreatedTimestamp)
	require.Len(t, market.RateIDs, 2)

	supplyRate, err := st.GetInterestRate(ctx, market.RateIDs[0])
	require.NoError(t, err)
	require.NotNil(t, supplyRate)
	assert.Equal(t, string(domain.RateSideLender), supplyRate.Side)
	assert.True(t, supplyRate.Rate.IsZero())

	borrowRate, err := st.GetInterestRate(ctx, market.RateIDs[1])
	require.NoError(t, err)
	require.NotNil(t, borrowRate)
	assert.Equal(t, string(domain.RateSideBorrower), borrowRate.Side)

	underlying, err := st.GetToken(ctx, testAsset)
	require.NoError(t, err)
	require.NotNil(t, underlying)
	assert.Equal(t, int32(6), underlying.Decimals)

	derivative, err := st.GetToken(ctx, testDerivativeAddr)
	require.NoError(t, err)
	require.NotNil(t, derivative)

	protocol, err := st.GetProtocol(ctx, testProtocolAddr)
	require.NoError(t, err)
	require.NotNil(t, protocol)
	assert.Equal(t, "Bamboo Loan", protocol.Name)
	assert.Equal(t, domain.ProtocolTypeLending, protocol.Type)
	assert.Equal(t, testOracleAddr, protocol.PriceOracle)
	assert.Equal(t, int32(1), protocol.TotalPoolCount)
	assert.Equal(t, []string{testDerivativeAddr}, []string(protocol.MarketIDs))
}

func TestMarketListedReplayIsNoOp(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, listingEvent(101, testTime+6)))

	protocol, err := st.GetProtocol(ctx, testProtocolAddr)
	require.NoError(t, err)
	assert.Equal(t, int32(1), protocol.TotalPoolCount)
	assert.Len(t, protocol.MarketIDs, 1)
}

func TestListingOutOfScopeAssetIgnored(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	ev := event(domain.ActionInitAsset, 100, testTime, "tx-other",
		domain.Attribute{Key: "asset", Value: "uatom"})
	require.NoError(t, e.Process(ctx, ev))

	protocol, err := st.GetProtocol(ctx, testProtocolAddr)
	require.NoError(t, err)
	assert.Nil(t, protocol)
}

func TestOracleFeedBeforeListingSeedsPrice(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	// a protocol must exist for the feed handler to attach prices to
	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))

	// remove the market from scope by feeding a not-yet-listed id
	unlisted := "persistence1other"
	ev := event(domain.ActionFeedPrice, 101, testTime+6, "tx-feed",
		domain.Attribute{Key: "asset", Value: unlisted},
		domain.Attribute{Key: "price", Value: "3.5"})
	require.NoError(t, e.Process(ctx, ev))

	feed, err := st.GetFeedPrice(ctx, unlisted)
	require.NoError(t, err)
	require.NotNil(t, feed)
	assert.True(t, feed.TokenPriceUSD.Equal(decimal.RequireFromString("3.5")))
	assert.Equal(t, uint64(101), feed.BlockNumber)
}

func TestListingPicksUpStoredFeedPrice(t *testing.T) {
	// a second in-scope asset bootstraps the protocol so the feed handler
	// runs before the asset under test is listed
	dep := testDeployment()
	dep.Assets["ubamboo"] = deployment.AssetListing{
		DerivativeAddress: "persistence1pbamboo", Name: "Bamboo", Symbol: "BAM",
		Decimals: 6, DerivativeDecimals: 6, ReserveFactor: decimal.Zero,
	}
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(testTime, 0)).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()
	st := store.NewMemoryStore()
	e := engine.New(st, dep, clock)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, event(domain.ActionInitAsset, 100, testTime, "tx-l1",
		domain.Attribute{Key: "asset", Value: "ubamboo"})))
	require.NoError(t, e.Process(ctx, feedEvent(101, testTime+6, "2")))
	require.NoError(t, e.Process(ctx, listingEvent(102, testTime+12)))

	market, err := st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	require.NotNil(t, market)
	assert.True(t, market.InputTokenPriceUSD.Equal(decimal.NewFromInt(2)))

	underlying, err := st.GetToken(ctx, testAsset)
	require.NoError(t, err)
	assert.True(t, underlying.LastPriceUSD.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, uint64(101), underlying.LastPriceBlockNumber)
}

func TestOracleFeedUpdatesListedMarket(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, feedEvent(101, testTime+6, "1.25")))

	market, err := st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	assert.True(t, market.InputTokenPriceUSD.Equal(decimal.RequireFromString("1.25")))

	feed, err := st.GetFeedPrice(ctx, testDerivativeAddr)
	require.NoError(t, err)
	require.NotNil(t, feed)
	assert.True(t, feed.TokenPriceUSD.Equal(decimal.RequireFromString("1.25")))

	// price propagation writes the daily market snapshot and financials
	snapID := domain.MarketSnapshotKey{MarketID: testDerivativeAddr, Bucket: domain.DayBucket(testTime + 6)}.String()
	daily, err := st.GetMarketDailySnapshot(ctx, snapID)
	require.NoError(t, err)
	require.NotNil(t, daily)
	assert.True(t, daily.InputTokenPriceUSD.Equal(decimal.RequireFromString("1.25")))

	fin, err := st.GetFinancialsSnapshot(ctx, domain.FinancialsKey{Bucket: domain.DayBucket(testTime + 6)}.String())
	require.NoError(t, err)
	assert.NotNil(t, fin)
}

func TestDeposit(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, feedEvent(101, testTime+6, "2")))
	require.NoError(t, e.Process(ctx, depositEvent(102, testTime+12, "tx-d1", "alice", "1000000")))

	market, err := st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	assert.True(t, market.OutputTokenSupply.Equal(decimal.NewFromInt(1_000_000)))
	// 1.000000 XPRT at $2
	assert.True(t, market.CumulativeDepositUSD.Equal(decimal.NewFromInt(2)), "got %s", market.CumulativeDepositUSD)

	daily, err := st.GetMarketDailySnapshot(ctx,
		domain.MarketSnapshotKey{MarketID: testDerivativeAddr, Bucket: domain.DayBucket(testTime + 12)}.String())
	require.NoError(t, err)
	require.NotNil(t, daily)
	assert.True(t, daily.DailyDepositUSD.Equal(decimal.NewFromInt(2)))
	assert.True(t, daily.CumulativeDepositUSD.Equal(decimal.NewFromInt(2)))

	hourly, err := st.GetMarketHourlySnapshot(ctx,
		domain.MarketSnapshotKey{MarketID: testDerivativeAddr, Bucket: domain.HourBucket(testTime + 12)}.String())
	require.NoError(t, err)
	require.NotNil(t, hourly)
	assert.True(t, hourly.HourlyDepositUSD.Equal(decimal.NewFromInt(2)))

	usage, err := st.GetUsageDailySnapshot(ctx,
		domain.UsageSnapshotKey{Granularity: domain.GranularityDaily, Bucket: domain.DayBucket(testTime + 12)}.String())
	require.NoError(t, err)
	require.NotNil(t, usage)
	assert.Equal(t, int32(1), usage.DailyActiveUsers)
	assert.Equal(t, int32(1), usage.DailyDepositCount)
	assert.Equal(t, int32(1), usage.DailyTransactionCount)
	assert.Equal(t, int32(1), usage.CumulativeUniqueUsers)
	assert.Equal(t, int32(1), usage.TotalPoolCount)

	account, err := st.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, account)
}

func TestDepositReplayKeepsActionRow(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, feedEvent(101, testTime+6, "2")))
	require.NoError(t, e.Process(ctx, depositEvent(102, testTime+12, "tx-d1", "alice", "1000000")))
	require.NoError(t, e.Process(ctx, depositEvent(102, testTime+12, "tx-d1", "alice", "1000000")))

	// the action row is insert-only; the market totals do move again because
	// balance deltas are reapplied by a redelivered event
	market, err := st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	assert.True(t, market.OutputTokenSupply.Equal(decimal.NewFromInt(2_000_000)))
}

func TestWithdraw(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, feedEvent(101, testTime+6, "2")))
	require.NoError(t, e.Process(ctx, depositEvent(102, testTime+12, "tx-d1", "alice", "1000000")))
	require.NoError(t, e.Process(ctx, withdrawEvent(103, testTime+18, "tx-w1", "alice", "400000")))

	market, err := st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	assert.True(t, market.OutputTokenSupply.Equal(decimal.NewFromInt(600_000)))

	usage, err := st.GetUsageDailySnapshot(ctx,
		domain.UsageSnapshotKey{Granularity: domain.GranularityDaily, Bucket: domain.DayBucket(testTime)}.String())
	require.NoError(t, err)
	require.NotNil(t, usage)
	// same account twice in one day counts once
	assert.Equal(t, int32(1), usage.DailyActiveUsers)
	assert.Equal(t, int32(2), usage.DailyTransactionCount)
	assert.Equal(t, int32(1), usage.DailyWithdrawCount)
	assert.Equal(t, int32(1), usage.CumulativeUniqueUsers)
}

func TestBorrowWithoutExchangeRateSkipsBalanceDelta(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, feedEvent(101, testTime+6, "2")))
	require.NoError(t, e.Process(ctx, borrowEvent(102, testTime+12, "tx-b1", "bob", "1000000")))

	market, err := st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	assert.True(t, market.BorrowBalance.IsZero())
	assert.True(t, market.CumulativeBorrowUSD.Equal(decimal.NewFromInt(2)))
}

func TestBorrowAndRepay(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, feedEvent(101, testTime+6, "2")))
	require.NoError(t, e.Process(ctx, accrueEvent(102, testTime+12, "1.05", "1.2", "0.5", "1")))
	require.NoError(t, e.Process(ctx, borrowEvent(103, testTime+18, "tx-b1", "bob", "600000")))

	market, err := st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	// 600000 / 1.2 scaled to the derivative token's 6 decimals
	assert.True(t, market.BorrowBalance.Equal(decimal.RequireFromString("500000000000")), "got %s", market.BorrowBalance)
	assert.True(t, market.CumulativeBorrowUSD.Equal(decimal.RequireFromString("1.2")))

	require.NoError(t, e.Process(ctx, repayEvent(104, testTime+24, "tx-r1", "bob", "300000")))

	market, err = st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	// repay reduces the cumulative USD figure only; the raw counter waits
	// for the next accrual to reconcile
	assert.True(t, market.CumulativeBorrowUSD.Equal(decimal.RequireFromString("0.6")), "got %s", market.CumulativeBorrowUSD)
	assert.True(t, market.BorrowBalance.Equal(decimal.RequireFromString("500000000000")))
}

func TestAccrueInterest(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, feedEvent(101, testTime+6, "2")))
	require.NoError(t, e.Process(ctx, accrueEvent(102, testTime+12, "1.05", "1.2", "0.5", "1")))

	market, err := st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	assert.True(t, market.ExchangeRate.Equal(decimal.RequireFromString("1.05")))
	assert.True(t, market.BorrowExchangeRate.Equal(decimal.RequireFromString("1.2")))

	// annualized percentage rates derived from the bootstrap blocks-per-day
	unitPerYear := deployment.StartingBlocksPerDay(domain.NetworkMainnet).Mul(decimal.NewFromInt(domain.DaysPerYear))
	wantSupplyAPY := unitPerYear.Mul(decimal.RequireFromString("0.5")).Mul(decimal.NewFromInt(100))
	wantBorrowAPY := unitPerYear.Mul(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100))

	supplyRate, err := st.GetInterestRate(ctx, market.RateIDs[0])
	require.NoError(t, err)
	assert.True(t, supplyRate.Rate.Equal(wantSupplyAPY), "got %s want %s", supplyRate.Rate, wantSupplyAPY)
	borrowRate, err := st.GetInterestRate(ctx, market.RateIDs[1])
	require.NoError(t, err)
	assert.True(t, borrowRate.Rate.Equal(wantBorrowAPY))

	// revenue split: interest accumulated at the reserve factor of 0.25
	wantInterest := scale.ToUSD(decimal.RequireFromString("0.5"), 6, decimal.NewFromInt(2))
	wantProtocolSide := wantInterest.Mul(decimal.RequireFromString("0.25"))
	wantSupplySide := wantInterest.Sub(wantProtocolSide)
	assert.True(t, market.CumulativeTotalRevenueUSD.Equal(wantInterest))
	assert.True(t, market.CumulativeProtocolSideRevenueUSD.Equal(wantProtocolSide))
	assert.True(t, market.CumulativeSupplySideRevenueUSD.Equal(wantSupplySide))
	assert.True(t, wantProtocolSide.Add(wantSupplySide).Equal(wantInterest))

	// the accrual rolled the revenue figures up into the protocol
	protocol, err := st.GetProtocol(ctx, testProtocolAddr)
	require.NoError(t, err)
	assert.True(t, protocol.CumulativeTotalRevenueUSD.Equal(wantInterest))

	daily, err := st.GetMarketDailySnapshot(ctx,
		domain.MarketSnapshotKey{MarketID: testDerivativeAddr, Bucket: domain.DayBucket(testTime + 12)}.String())
	require.NoError(t, err)
	require.NotNil(t, daily)
	assert.True(t, daily.DailyTotalRevenueUSD.Equal(wantInterest))

	// accrual carries no actor, so no usage snapshot is written
	usage, err := st.GetUsageDailySnapshot(ctx,
		domain.UsageSnapshotKey{Granularity: domain.GranularityDaily, Bucket: domain.DayBucket(testTime + 12)}.String())
	require.NoError(t, err)
	assert.Nil(t, usage)
}

func TestAccrueObservesBlock(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, accrueEvent(102, testTime+12, "1.0", "1.0", "0", "0")))

	buf, err := st.GetBlockBuffer(ctx, "CIRCULAR_BUFFER")
	require.NoError(t, err)
	require.NotNil(t, buf)
	assert.Equal(t, int64(102), buf.Blocks[0])
	assert.Equal(t, int32(1), buf.NextIndex)
	assert.Equal(t, int32(0), buf.WindowStartIndex)
	assert.True(t, buf.BlocksPerDay.Equal(deployment.StartingBlocksPerDay(domain.NetworkMainnet)))
}

func TestFinancialsAccumulateAcrossEvents(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, feedEvent(101, testTime+6, "2")))
	require.NoError(t, e.Process(ctx, depositEvent(102, testTime+12, "tx-d1", "alice", "1000000")))
	require.NoError(t, e.Process(ctx, depositEvent(103, testTime+18, "tx-d2", "bob", "500000")))

	// the financial snapshot re-derives daily flows from the market daily
	// snapshots written by earlier events in the same bucket
	fin, err := st.GetFinancialsSnapshot(ctx, domain.FinancialsKey{Bucket: domain.DayBucket(testTime)}.String())
	require.NoError(t, err)
	require.NotNil(t, fin)
	assert.True(t, fin.DailyDepositUSD.Equal(decimal.NewFromInt(2)), "got %s", fin.DailyDepositUSD)

	usage, err := st.GetUsageDailySnapshot(ctx,
		domain.UsageSnapshotKey{Granularity: domain.GranularityDaily, Bucket: domain.DayBucket(testTime)}.String())
	require.NoError(t, err)
	assert.Equal(t, int32(2), usage.DailyActiveUsers)
	assert.Equal(t, int32(2), usage.CumulativeUniqueUsers)
}

func TestBucketBoundariesOpenNewSnapshots(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, feedEvent(101, testTime+6, "2")))
	require.NoError(t, e.Process(ctx, depositEvent(102, testTime+12, "tx-d1", "alice", "1000000")))

	nextDay := testTime + domain.SecondsPerDay
	require.NoError(t, e.Process(ctx, depositEvent(200, nextDay, "tx-d2", "alice", "1000000")))

	// the first day's flow figure is untouched by the second day's deposit
	firstDay, err := st.GetMarketDailySnapshot(ctx,
		domain.MarketSnapshotKey{MarketID: testDerivativeAddr, Bucket: domain.DayBucket(testTime)}.String())
	require.NoError(t, err)
	assert.True(t, firstDay.DailyDepositUSD.Equal(decimal.NewFromInt(2)))

	secondDay, err := st.GetMarketDailySnapshot(ctx,
		domain.MarketSnapshotKey{MarketID: testDerivativeAddr, Bucket: domain.DayBucket(nextDay)}.String())
	require.NoError(t, err)
	require.NotNil(t, secondDay)
	assert.True(t, secondDay.DailyDepositUSD.Equal(decimal.NewFromInt(2)))
	// cumulative figures carry forward
	assert.True(t, secondDay.CumulativeDepositUSD.Equal(decimal.NewFromInt(4)))

	// alice is active again in the new day
	usage, err := st.GetUsageDailySnapshot(ctx,
		domain.UsageSnapshotKey{Granularity: domain.GranularityDaily, Bucket: domain.DayBucket(nextDay)}.String())
	require.NoError(t, err)
	assert.Equal(t, int32(1), usage.DailyActiveUsers)
	assert.Equal(t, int32(1), usage.CumulativeUniqueUsers)
}

func TestAccrueRefreshesOtherMarketPrices(t *testing.T) {
	dep := testDeployment()
	dep.Assets["ubamboo"] = deployment.AssetListing{
		DerivativeAddress: "persistence1pbamboo", Name: "Bamboo", Symbol: "BAM",
		Decimals: 6, DerivativeDecimals: 6, ReserveFactor: decimal.Zero,
	}
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(testTime, 0)).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()
	st := store.NewMemoryStore()
	e := engine.New(st, dep, clock)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, event(domain.ActionInitAsset, 100, testTime, "tx-l1",
		domain.Attribute{Key: "asset", Value: "ubamboo"})))
	require.NoError(t, e.Process(ctx, listingEvent(101, testTime+6)))
	require.NoError(t, e.Process(ctx, event(domain.ActionFeedPrice, 102, testTime+12, "tx-feed",
		domain.Attribute{Key: "asset", Value: "persistence1pbamboo"},
		domain.Attribute{Key: "price", Value: "3"})))

	// accruing one market refreshes the whole roster's token prices
	require.NoError(t, e.Process(ctx, accrueEvent(110, testTime+60, "1.0", "1.0", "0", "0")))

	bamboo, err := st.GetToken(ctx, "ubamboo")
	require.NoError(t, err)
	require.NotNil(t, bamboo)
	assert.True(t, bamboo.LastPriceUSD.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, uint64(110), bamboo.LastPriceBlockNumber)
}

func TestSetPriceOracle(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, event(domain.ActionSetPriceOracle, 101, testTime+6, "tx-o1",
		domain.Attribute{Key: "price_oracle", Value: "persistence1neworacle"})))

	protocol, err := st.GetProtocol(ctx, testProtocolAddr)
	require.NoError(t, err)
	assert.Equal(t, "persistence1neworacle", protocol.PriceOracle)

	// an oracle-update event without the address is dropped
	require.NoError(t, e.Process(ctx, event(domain.ActionSetPriceOracle, 102, testTime+12, "tx-o2")))
	protocol, err = st.GetProtocol(ctx, testProtocolAddr)
	require.NoError(t, err)
	assert.Equal(t, "persistence1neworacle", protocol.PriceOracle)
}

func TestDepositDriftEighteenDecimals(t *testing.T) {
	dep := testDeployment()
	dep.Assets["aeth"] = deployment.AssetListing{
		DerivativeAddress: "persistence1paeth", Name: "Axelar ETH", Symbol: "ETH",
		Decimals: 18, DerivativeDecimals: 6, ReserveFactor: decimal.Zero,
	}
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(testTime, 0)).AnyTimes()
	clock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()
	st := store.NewMemoryStore()
	e := engine.New(st, dep, clock)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, event(domain.ActionInitAsset, 100, testTime, "tx-l1",
		domain.Attribute{Key: "asset", Value: "aeth"})))
	require.NoError(t, e.Process(ctx, event(domain.ActionFeedPrice, 101, testTime+6, "tx-feed",
		domain.Attribute{Key: "asset", Value: "persistence1paeth"},
		domain.Attribute{Key: "price", Value: "2"})))

	// 10,000 single-raw-unit deposits must total exactly the closed-form
	// conversion; no per-deposit USD value may collapse to zero
	for i := 0; i < 10_000; i++ {
		tx := fmt.Sprintf("tx-d%d", i)
		require.NoError(t, e.Process(ctx, event(domain.ActionDeposit, uint64(102+i), testTime+12, tx,
			domain.Attribute{Key: "asset", Value: "aeth"},
			domain.Attribute{Key: "to", Value: "alice"},
			domain.Attribute{Key: "amount", Value: "1"})))
	}

	market, err := st.GetMarket(ctx, "persistence1paeth")
	require.NoError(t, err)
	want := scale.ToUSD(decimal.NewFromInt(10_000), 18, decimal.NewFromInt(2))
	assert.True(t, market.CumulativeDepositUSD.Equal(want), "got %s want %s", market.CumulativeDepositUSD, want)
	assert.True(t, market.CumulativeDepositUSD.Equal(decimal.RequireFromString("0.00000000000002")))
}

func TestActionBeforeListingIsIgnored(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, depositEvent(100, testTime, "tx-d1", "alice", "1000000")))

	market, err := st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	assert.Nil(t, market)
}

func TestMalformedEventDropped(t *testing.T) {
	e, st := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Process(ctx, listingEvent(100, testTime)))
	require.NoError(t, e.Process(ctx, feedEvent(101, testTime+6, "2")))

	// missing the amount attribute entirely
	broken := event(domain.ActionDeposit, 102, testTime+12, "tx-bad",
		domain.Attribute{Key: "asset", Value: testAsset},
		domain.Attribute{Key: "to", Value: "alice"})
	require.NoError(t, e.Process(ctx, broken))

	market, err := st.GetMarket(ctx, testDerivativeAddr)
	require.NoError(t, err)
	assert.True(t, market.OutputTokenSupply.IsZero())
	assert.True(t, market.CumulativeDepositUSD.IsZero())
}

func TestUnknownActionIgnored(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	ev := event(domain.EventAction("transfer"), 100, testTime, "tx-x",
		domain.Attribute{Key: "asset", Value: testAsset})
	require.NoError(t, e.Process(ctx, ev))
}

func TestStoreFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	st := mocks.NewMockStore(ctrl)
	st.EXPECT().CreateChainEvent(gomock.Any(), gomock.Any()).Return(assert.AnError)

	e := engine.New(st, testDeployment(), clock)
	err := e.Process(context.Background(), listingEvent(100, testTime))
	assert.ErrorIs(t, err, assert.AnError)
}
