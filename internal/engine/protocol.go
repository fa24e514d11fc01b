package engine

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bambooloan/lending-indexer/internal/logger"
)

// updateProtocol re-derives the protocol's balance and cumulative roll-up
// fields by summing every roster market. Best effort: a market that fails
// to load is skipped with a warning rather than failing the whole pass.
func (e *Engine) updateProtocol(ctx context.Context) error {
	protocol, err := e.store.GetProtocol(ctx, e.dep.ProtocolAddress)
	if err != nil {
		return err
	}
	if protocol == nil {
		logger.WarnCtx(ctx, "protocol not found", zap.String("handler", "updateProtocol"), zap.String("protocol", e.dep.ProtocolAddress))
		return nil
	}

	totalValueLockedUSD := decimal.Zero
	totalDepositBalanceUSD := decimal.Zero
	totalBorrowBalanceUSD := decimal.Zero
	cumulativeBorrowUSD := decimal.Zero
	cumulativeDepositUSD := decimal.Zero
	cumulativeLiquidateUSD := decimal.Zero
	cumulativeTotalRevenueUSD := decimal.Zero
	cumulativeProtocolSideRevenueUSD := decimal.Zero
	cumulativeSupplySideRevenueUSD := decimal.Zero

	for _, marketID := range protocol.MarketIDs {
		market, err := e.store.GetMarket(ctx, marketID)
		if err != nil {
			return err
		}
		if market == nil {
			logger.WarnCtx(ctx, "market not found", zap.String("handler", "updateProtocol"), zap.String("market", marketID))
			continue
		}
		totalValueLockedUSD = totalValueLockedUSD.Add(market.TotalValueLockedUSD)
		totalDepositBalanceUSD = totalDepositBalanceUSD.Add(market.TotalDepositBalanceUSD)
		totalBorrowBalanceUSD = totalBorrowBalanceUSD.Add(market.TotalBorrowBalanceUSD)
		cumulativeBorrowUSD = cumulativeBorrowUSD.Add(market.CumulativeBorrowUSD)
		cumulativeDepositUSD = cumulativeDepositUSD.Add(market.CumulativeDepositUSD)
		cumulativeLiquidateUSD = cumulativeLiquidateUSD.Add(market.CumulativeLiquidateUSD)
		cumulativeTotalRevenueUSD = cumulativeTotalRevenueUSD.Add(market.CumulativeTotalRevenueUSD)
		cumulativeProtocolSideRevenueUSD = cumulativeProtocolSideRevenueUSD.Add(market.CumulativeProtocolSideRevenueUSD)
		cumulativeSupplySideRevenueUSD = cumulativeSupplySideRevenueUSD.Add(market.CumulativeSupplySideRevenueUSD)
	}

	protocol.TotalValueLockedUSD = totalValueLockedUSD
	protocol.TotalDepositBalanceUSD = totalDepositBalanceUSD
	protocol.TotalBorrowBalanceUSD = totalBorrowBalanceUSD
	protocol.CumulativeBorrowUSD = cumulativeBorrowUSD
	protocol.CumulativeDepositUSD = cumulativeDepositUSD
	protocol.CumulativeLiquidateUSD = cumulativeLiquidateUSD
	protocol.CumulativeTotalRevenueUSD = cumulativeTotalRevenueUSD
	protocol.CumulativeProtocolSideRevenueUSD = cumulativeProtocolSideRevenueUSD
	protocol.CumulativeSupplySideRevenueUSD = cumulativeSupplySideRevenueUSD
	return e.store.SaveProtocol(ctx, protocol)
}
