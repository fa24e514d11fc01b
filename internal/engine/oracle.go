package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/logger"
	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

// handleOracleFeed processes one oracle push, which may price several assets
// at once. Every pair upserts its FeedPrice row whether or not the market is
// listed yet; listing later picks the stored price up. Pairs whose market
// exists additionally propagate the price into the market and re-derive all
// USD balances, the protocol roll-up and the daily financial snapshot.
func (e *Engine) handleOracleFeed(ctx context.Context, ev *domain.ChainEvent) error {
	pairs, err := domain.ParseFeedPairs(ev)
	if err != nil {
		return err
	}

	protocol, err := e.store.GetProtocol(ctx, e.dep.ProtocolAddress)
	if err != nil {
		return err
	}
	if protocol == nil {
		logger.WarnCtx(ctx, "protocol not found", zap.String("handler", "handleOracleFeed"), zap.String("protocol", e.dep.ProtocolAddress))
		return nil
	}

	for _, pair := range pairs {
		// the oracle prices assets by their derivative id
		marketID := pair.Asset

		if err := e.store.SaveFeedPrice(ctx, &schema.FeedPrice{
			ID:            marketID,
			ProtocolID:    protocol.ID,
			TokenPriceUSD: pair.Price,
			BlockNumber:   ev.Block.Height,
			Timestamp:     ev.Block.Time,
		}); err != nil {
			return err
		}

		market, err := e.store.GetMarket(ctx, marketID)
		if err != nil {
			return err
		}
		if market == nil {
			logger.WarnCtx(ctx, "market not found, price stored for later listing",
				zap.String("handler", "handleOracleFeed"),
				zap.String("market", marketID))
			continue
		}

		market.InputTokenPriceUSD = pair.Price
		if err := e.store.SaveMarket(ctx, market); err != nil {
			return err
		}

		if err := e.snapshotMarket(ctx, marketID, ev.Block.Height, ev.Block.Time); err != nil {
			return err
		}
		if err := e.updateAllMarketPrices(ctx, ev.Block.Height); err != nil {
			return err
		}
		if err := e.updateProtocol(ctx); err != nil {
			return err
		}
		if err := e.snapshotFinancials(ctx, ev.Block.Height, ev.Block.Time); err != nil {
			return err
		}
	}
	return nil
}
