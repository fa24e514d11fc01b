package engine

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/logger"
	"github.com/bambooloan/lending-indexer/internal/scale"
	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

// hundred converts a fraction to a percentage
var hundred = decimal.NewFromInt(100)

// updateMarket recomputes a market's balances, USD totals, interest
// rates and revenue split from the index/rate attributes of an
// interest-accrual event. The recomputed revenue deltas are applied to
// the market's cumulative fields and to the current hour/day snapshot.
func (e *Engine) updateMarket(ctx context.Context, marketID string, ev *domain.ChainEvent, updateMarketPrices bool, unitPerYear decimal.Decimal) error {
	market, err := e.store.GetMarket(ctx, marketID)
	if err != nil {
		return err
	}
	if market == nil {
		logger.WarnCtx(ctx, "market not found", zap.String("handler", "updateMarket"), zap.String("market", marketID))
		return nil
	}

	underlying, err := e.store.GetToken(ctx, market.InputTokenID)
	if err != nil {
		return err
	}
	if underlying == nil {
		logger.WarnCtx(ctx, "underlying token not found", zap.String("handler", "updateMarket"), zap.String("token", market.InputTokenID))
		return nil
	}

	supplyExchangeRate, err := ev.RequireDecimalAttr("liquidity_index")
	if err != nil {
		return err
	}
	borrowExchangeRate, err := ev.RequireDecimalAttr("borrow_index")
	if err != nil {
		return err
	}
	supplyRate, err := ev.RequireDecimalAttr("liquidity_rate")
	if err != nil {
		return err
	}
	borrowRate, err := ev.RequireDecimalAttr("borrow_rate")
	if err != nil {
		return err
	}

	if updateMarketPrices {
		if err := e.updateAllMarketPrices(ctx, ev.Block.Height); err != nil {
			return err
		}
	}

	underlying.LastPriceUSD = market.InputTokenPriceUSD
	underlying.LastPriceBlockNumber = ev.Block.Height
	if err := e.store.SaveToken(ctx, underlying); err != nil {
		return err
	}

	market.ExchangeRate = supplyExchangeRate
	market.BorrowExchangeRate = borrowExchangeRate

	market.OutputTokenSupply = scale.TruncateInt(supplyExchangeRate.Mul(market.InputTokenBalance))
	market.OutputTokenPriceUSD = supplyExchangeRate.Mul(market.InputTokenPriceUSD)

	outputDecimals := underlying.Decimals
	output, err := e.store.GetToken(ctx, market.OutputTokenID)
	if err != nil {
		return err
	}
	if output == nil {
		logger.WarnCtx(ctx, "output token not found", zap.String("handler", "updateMarket"), zap.String("token", market.OutputTokenID))
	} else {
		outputDecimals = output.Decimals
	}

	// inputTokenBalance = outputTokenSupply * exchangeRate, rescaled across
	// the decimal gap between the two tokens. The gap can run either way.
	if underlying.Decimals > outputDecimals {
		market.InputTokenBalance = scale.TruncateInt(
			market.OutputTokenSupply.Mul(market.ExchangeRate).Mul(scale.Factor(underlying.Decimals - outputDecimals)))
	} else {
		market.InputTokenBalance = scale.TruncateInt(
			market.OutputTokenSupply.Mul(market.ExchangeRate).Shift(underlying.Decimals - outputDecimals))
	}

	underlyingSupplyUSD := scale.ToUSD(market.InputTokenBalance, underlying.Decimals, market.InputTokenPriceUSD)
	market.TotalValueLockedUSD = underlyingSupplyUSD
	market.TotalDepositBalanceUSD = underlyingSupplyUSD
	market.TotalBorrowBalanceUSD = scale.ToUSD(market.BorrowBalance, underlying.Decimals, market.InputTokenPriceUSD)

	if err := e.setInterestRate(ctx, market, convertRatePerUnitToAPY(supplyRate, unitPerYear), true); err != nil {
		return err
	}
	if err := e.setInterestRate(ctx, market, convertRatePerUnitToAPY(borrowRate, unitPerYear), false); err != nil {
		return err
	}

	interestAccumulatedUSD := scale.ToUSD(supplyRate, underlying.Decimals, market.InputTokenPriceUSD)
	protocolSideRevenueUSDDelta := interestAccumulatedUSD.Mul(market.ReserveFactor)
	supplySideRevenueUSDDelta := interestAccumulatedUSD.Sub(protocolSideRevenueUSDDelta)

	market.CumulativeTotalRevenueUSD = market.CumulativeTotalRevenueUSD.Add(interestAccumulatedUSD)
	market.CumulativeProtocolSideRevenueUSD = market.CumulativeProtocolSideRevenueUSD.Add(protocolSideRevenueUSDDelta)
	market.CumulativeSupplySideRevenueUSD = market.CumulativeSupplySideRevenueUSD.Add(supplySideRevenueUSDDelta)
	if err := e.store.SaveMarket(ctx, market); err != nil {
		return err
	}

	daily, err := e.getOrCreateMarketDailySnapshot(ctx, market, ev.Block.Time)
	if err != nil {
		return err
	}
	daily.DailyTotalRevenueUSD = daily.DailyTotalRevenueUSD.Add(interestAccumulatedUSD)
	daily.DailyProtocolSideRevenueUSD = daily.DailyProtocolSideRevenueUSD.Add(protocolSideRevenueUSDDelta)
	daily.DailySupplySideRevenueUSD = daily.DailySupplySideRevenueUSD.Add(supplySideRevenueUSDDelta)
	if err := e.store.SaveMarketDailySnapshot(ctx, daily); err != nil {
		return err
	}

	hourly, err := e.getOrCreateMarketHourlySnapshot(ctx, market, ev.Block.Time)
	if err != nil {
		return err
	}
	hourly.HourlyTotalRevenueUSD = hourly.HourlyTotalRevenueUSD.Add(interestAccumulatedUSD)
	hourly.HourlyProtocolSideRevenueUSD = hourly.HourlyProtocolSideRevenueUSD.Add(protocolSideRevenueUSDDelta)
	hourly.HourlySupplySideRevenueUSD = hourly.HourlySupplySideRevenueUSD.Add(supplySideRevenueUSDDelta)
	return e.store.SaveMarketHourlySnapshot(ctx, hourly)
}

// updateAllMarketPrices refreshes every roster market's USD balances at its
// current input token price. A shared oracle price can move several markets
// at once, so the whole roster is walked.
func (e *Engine) updateAllMarketPrices(ctx context.Context, blockNumber uint64) error {
	protocol, err := e.store.GetProtocol(ctx, e.dep.ProtocolAddress)
	if err != nil {
		return err
	}
	if protocol == nil {
		logger.WarnCtx(ctx, "protocol not found", zap.String("handler", "updateAllMarketPrices"), zap.String("protocol", e.dep.ProtocolAddress))
		return nil
	}

	for _, marketID := range protocol.MarketIDs {
		market, err := e.store.GetMarket(ctx, marketID)
		if err != nil {
			return err
		}
		if market == nil {
			logger.WarnCtx(ctx, "market not found", zap.String("handler", "updateAllMarketPrices"), zap.String("market", marketID))
			continue
		}
		underlying, err := e.store.GetToken(ctx, market.InputTokenID)
		if err != nil {
			return err
		}
		if underlying == nil {
			logger.WarnCtx(ctx, "underlying token not found", zap.String("handler", "updateAllMarketPrices"), zap.String("token", market.InputTokenID))
			continue
		}

		price := market.InputTokenPriceUSD

		underlying.LastPriceUSD = price
		underlying.LastPriceBlockNumber = blockNumber
		if err := e.store.SaveToken(ctx, underlying); err != nil {
			return err
		}

		market.TotalDepositBalanceUSD = scale.ToUSD(market.InputTokenBalance, underlying.Decimals, price)
		market.TotalBorrowBalanceUSD = scale.ToUSD(market.BorrowBalance, underlying.Decimals, price)
		market.TotalValueLockedUSD = market.TotalDepositBalanceUSD
		if err := e.store.SaveMarket(ctx, market); err != nil {
			return err
		}
	}
	return nil
}

// convertRatePerUnitToAPY annualizes a per-block rate into a percentage
func convertRatePerUnitToAPY(ratePerUnit, unitPerYear decimal.Decimal) decimal.Decimal {
	return unitPerYear.Mul(ratePerUnit).Mul(hundred)
}

// setInterestRate overwrites one of the market's two current rate records in
// place. Index 0 of the rate list is the supply rate, index 1 the borrow rate.
func (e *Engine) setInterestRate(ctx context.Context, market *schema.Market, rate decimal.Decimal, isSupply bool) error {
	if len(market.RateIDs) < 2 {
		logger.WarnCtx(ctx, "market has less than 2 rates", zap.String("market", market.ID))
		return nil
	}
	rateID := market.RateIDs[1]
	if isSupply {
		rateID = market.RateIDs[0]
	}
	current, err := e.store.GetInterestRate(ctx, rateID)
	if err != nil {
		return err
	}
	if current == nil {
		logger.WarnCtx(ctx, "interest rate not found", zap.String("rate", rateID))
		return nil
	}
	current.Rate = rate
	return e.store.SaveInterestRate(ctx, current)
}
