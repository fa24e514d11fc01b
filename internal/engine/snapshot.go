package engine

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/logger"
	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

// snapshotMarket mirrors the market's current balances and cumulative totals
// into the hour and day buckets containing the block timestamp. The bucket's
// first event creates the snapshot; later events in the same bucket overwrite
// the mirrored fields in place. Rates are cloned into immutable per-bucket
// rows so a snapshot never references the live mutable rate.
func (e *Engine) snapshotMarket(ctx context.Context, marketID string, blockNumber uint64, blockTimestamp int64) error {
	market, err := e.store.GetMarket(ctx, marketID)
	if err != nil {
		return err
	}
	if market == nil {
		logger.WarnCtx(ctx, "market not found", zap.String("handler", "snapshotMarket"), zap.String("market", marketID))
		return nil
	}

	daily, err := e.getOrCreateMarketDailySnapshot(ctx, market, blockTimestamp)
	if err != nil {
		return err
	}
	daily.TotalValueLockedUSD = market.TotalValueLockedUSD
	daily.CumulativeTotalRevenueUSD = market.CumulativeTotalRevenueUSD
	daily.CumulativeProtocolSideRevenueUSD = market.CumulativeProtocolSideRevenueUSD
	daily.CumulativeSupplySideRevenueUSD = market.CumulativeSupplySideRevenueUSD
	daily.TotalDepositBalanceUSD = market.TotalDepositBalanceUSD
	daily.CumulativeDepositUSD = market.CumulativeDepositUSD
	daily.TotalBorrowBalanceUSD = market.TotalBorrowBalanceUSD
	daily.CumulativeBorrowUSD = market.CumulativeBorrowUSD
	daily.CumulativeLiquidateUSD = market.CumulativeLiquidateUSD
	daily.InputTokenBalance = market.InputTokenBalance
	daily.InputTokenPriceUSD = market.InputTokenPriceUSD
	daily.OutputTokenSupply = market.OutputTokenSupply
	daily.OutputTokenPriceUSD = market.OutputTokenPriceUSD
	daily.ExchangeRate = market.ExchangeRate
	daily.BlockNumber = blockNumber
	daily.Timestamp = blockTimestamp
	dailyRates, err := e.snapshotRates(ctx, market.RateIDs, domain.DayBucket(blockTimestamp))
	if err != nil {
		return err
	}
	daily.RateIDs = datatypes.NewJSONSlice(dailyRates)
	if err := e.store.SaveMarketDailySnapshot(ctx, daily); err != nil {
		return err
	}

	hourly, err := e.getOrCreateMarketHourlySnapshot(ctx, market, blockTimestamp)
	if err != nil {
		return err
	}
	hourly.TotalValueLockedUSD = market.TotalValueLockedUSD
	hourly.CumulativeTotalRevenueUSD = market.CumulativeTotalRevenueUSD
	hourly.CumulativeProtocolSideRevenueUSD = market.CumulativeProtocolSideRevenueUSD
	hourly.CumulativeSupplySideRevenueUSD = market.CumulativeSupplySideRevenueUSD
	hourly.TotalDepositBalanceUSD = market.TotalDepositBalanceUSD
	hourly.CumulativeDepositUSD = market.CumulativeDepositUSD
	hourly.TotalBorrowBalanceUSD = market.TotalBorrowBalanceUSD
	hourly.CumulativeBorrowUSD = market.CumulativeBorrowUSD
	hourly.CumulativeLiquidateUSD = market.CumulativeLiquidateUSD
	hourly.InputTokenBalance = market.InputTokenBalance
	hourly.InputTokenPriceUSD = market.InputTokenPriceUSD
	hourly.OutputTokenSupply = market.OutputTokenSupply
	hourly.OutputTokenPriceUSD = market.OutputTokenPriceUSD
	hourly.ExchangeRate = market.ExchangeRate
	hourly.BlockNumber = blockNumber
	hourly.Timestamp = blockTimestamp
	hourlyRates, err := e.snapshotRates(ctx, market.RateIDs, domain.HourBucket(blockTimestamp))
	if err != nil {
		return err
	}
	hourly.RateIDs = datatypes.NewJSONSlice(hourlyRates)
	return e.store.SaveMarketHourlySnapshot(ctx, hourly)
}

// snapshotRates clones the market's current rate records into immutable
// per-bucket RateSnapshot rows and returns the clone ids
func (e *Engine) snapshotRates(ctx context.Context, rateIDs []string, bucket int64) ([]string, error) {
	var ids []string
	for _, rateID := range rateIDs {
		rate, err := e.store.GetInterestRate(ctx, rateID)
		if err != nil {
			return nil, err
		}
		if rate == nil {
			logger.WarnCtx(ctx, "interest rate not found", zap.String("handler", "snapshotRates"), zap.String("rate", rateID))
			continue
		}
		id := domain.RateSnapshotKey{RateID: rateID, Bucket: bucket}.String()
		if err := e.store.CreateRateSnapshot(ctx, &schema.RateSnapshot{
			ID:     id,
			RateID: rateID,
			Side:   rate.Side,
			Type:   rate.Type,
			Rate:   rate.Rate,
		}); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// updateMarketFlows adds one action's USD amount to the hour and day
// buckets' additive flow field for that action type
func (e *Engine) updateMarketFlows(ctx context.Context, market *schema.Market, blockTimestamp int64, amountUSD decimal.Decimal, action domain.ActionType) error {
	hourly, err := e.getOrCreateMarketHourlySnapshot(ctx, market, blockTimestamp)
	if err != nil {
		return err
	}
	switch action {
	case domain.ActionTypeDeposit:
		hourly.HourlyDepositUSD = hourly.HourlyDepositUSD.Add(amountUSD)
	case domain.ActionTypeBorrow:
		hourly.HourlyBorrowUSD = hourly.HourlyBorrowUSD.Add(amountUSD)
	case domain.ActionTypeLiquidate:
		hourly.HourlyLiquidateUSD = hourly.HourlyLiquidateUSD.Add(amountUSD)
	case domain.ActionTypeWithdraw:
		hourly.HourlyWithdrawUSD = hourly.HourlyWithdrawUSD.Add(amountUSD)
	case domain.ActionTypeRepay:
		hourly.HourlyRepayUSD = hourly.HourlyRepayUSD.Add(amountUSD)
	}
	if err := e.store.SaveMarketHourlySnapshot(ctx, hourly); err != nil {
		return err
	}

	daily, err := e.getOrCreateMarketDailySnapshot(ctx, market, blockTimestamp)
	if err != nil {
		return err
	}
	switch action {
	case domain.ActionTypeDeposit:
		daily.DailyDepositUSD = daily.DailyDepositUSD.Add(amountUSD)
	case domain.ActionTypeBorrow:
		daily.DailyBorrowUSD = daily.DailyBorrowUSD.Add(amountUSD)
	case domain.ActionTypeLiquidate:
		daily.DailyLiquidateUSD = daily.DailyLiquidateUSD.Add(amountUSD)
	case domain.ActionTypeWithdraw:
		daily.DailyWithdrawUSD = daily.DailyWithdrawUSD.Add(amountUSD)
	case domain.ActionTypeRepay:
		daily.DailyRepayUSD = daily.DailyRepayUSD.Add(amountUSD)
	}
	return e.store.SaveMarketDailySnapshot(ctx, daily)
}

func (e *Engine) getOrCreateMarketHourlySnapshot(ctx context.Context, market *schema.Market, blockTimestamp int64) (*schema.MarketHourlySnapshot, error) {
	id := domain.MarketSnapshotKey{MarketID: market.ID, Bucket: domain.HourBucket(blockTimestamp)}.String()
	snapshot, err := e.store.GetMarketHourlySnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		snapshot = &schema.MarketHourlySnapshot{
			ID:         id,
			ProtocolID: market.ProtocolID,
			MarketID:   market.ID,
		}
	}
	return snapshot, nil
}

func (e *Engine) getOrCreateMarketDailySnapshot(ctx context.Context, market *schema.Market, blockTimestamp int64) (*schema.MarketDailySnapshot, error) {
	id := domain.MarketSnapshotKey{MarketID: market.ID, Bucket: domain.DayBucket(blockTimestamp)}.String()
	snapshot, err := e.store.GetMarketDailySnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		snapshot = &schema.MarketDailySnapshot{
			ID:         id,
			ProtocolID: market.ProtocolID,
			MarketID:   market.ID,
		}
	}
	return snapshot, nil
}

// snapshotFinancials writes the daily protocol-wide financial snapshot. The
// cumulative fields mirror the protocol row; the daily flow fields are fully
// re-derived by summing every roster market's current daily snapshot, so the
// figure self-corrects on every write. A market with no daily snapshot yet
// simply had no activity today and contributes zero.
func (e *Engine) snapshotFinancials(ctx context.Context, blockNumber uint64, blockTimestamp int64) error {
	protocol, err := e.store.GetProtocol(ctx, e.dep.ProtocolAddress)
	if err != nil {
		return err
	}
	if protocol == nil {
		logger.WarnCtx(ctx, "protocol not found", zap.String("handler", "snapshotFinancials"), zap.String("protocol", e.dep.ProtocolAddress))
		return nil
	}

	dayBucket := domain.DayBucket(blockTimestamp)
	snapshot := &schema.FinancialsSnapshot{
		ID:         domain.FinancialsKey{Bucket: dayBucket}.String(),
		ProtocolID: protocol.ID,

		TotalValueLockedUSD:              protocol.TotalValueLockedUSD,
		TotalDepositBalanceUSD:           protocol.TotalDepositBalanceUSD,
		TotalBorrowBalanceUSD:            protocol.TotalBorrowBalanceUSD,
		CumulativeDepositUSD:             protocol.CumulativeDepositUSD,
		CumulativeBorrowUSD:              protocol.CumulativeBorrowUSD,
		CumulativeLiquidateUSD:           protocol.CumulativeLiquidateUSD,
		CumulativeTotalRevenueUSD:        protocol.CumulativeTotalRevenueUSD,
		CumulativeProtocolSideRevenueUSD: protocol.CumulativeProtocolSideRevenueUSD,
		CumulativeSupplySideRevenueUSD:   protocol.CumulativeSupplySideRevenueUSD,

		BlockNumber: blockNumber,
		Timestamp:   blockTimestamp,
	}

	for _, marketID := range protocol.MarketIDs {
		market, err := e.store.GetMarket(ctx, marketID)
		if err != nil {
			return err
		}
		if market == nil {
			logger.WarnCtx(ctx, "market not found", zap.String("handler", "snapshotFinancials"), zap.String("market", marketID))
			continue
		}

		dailyID := domain.MarketSnapshotKey{MarketID: marketID, Bucket: dayBucket}.String()
		daily, err := e.store.GetMarketDailySnapshot(ctx, dailyID)
		if err != nil {
			return err
		}
		if daily == nil {
			// no transactions in that market today
			continue
		}
		snapshot.DailyDepositUSD = snapshot.DailyDepositUSD.Add(daily.DailyDepositUSD)
		snapshot.DailyBorrowUSD = snapshot.DailyBorrowUSD.Add(daily.DailyBorrowUSD)
		snapshot.DailyLiquidateUSD = snapshot.DailyLiquidateUSD.Add(daily.DailyLiquidateUSD)
		snapshot.DailyWithdrawUSD = snapshot.DailyWithdrawUSD.Add(daily.DailyWithdrawUSD)
		snapshot.DailyRepayUSD = snapshot.DailyRepayUSD.Add(daily.DailyRepayUSD)
		snapshot.DailyTotalRevenueUSD = snapshot.DailyTotalRevenueUSD.Add(daily.DailyTotalRevenueUSD)
		snapshot.DailyProtocolSideRevenueUSD = snapshot.DailyProtocolSideRevenueUSD.Add(daily.DailyProtocolSideRevenueUSD)
		snapshot.DailySupplySideRevenueUSD = snapshot.DailySupplySideRevenueUSD.Add(daily.DailySupplySideRevenueUSD)
	}

	return e.store.SaveFinancialsSnapshot(ctx, snapshot)
}
