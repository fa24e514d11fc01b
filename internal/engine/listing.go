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

// handleMarketListed creates the Market, its two Token records and its two
// InterestRate records on the first listing of an asset. A repeat listing
// event is a no-op: the derivative token already existing is the guard.
func (e *Engine) handleMarketListed(ctx context.Context, ev *domain.ChainEvent) error {
	if err := domain.SchemaMarketListed.Validate(ev); err != nil {
		return err
	}
	asset, _ := ev.Attr("asset")

	listing, ok := e.dep.Listing(asset)
	if !ok {
		// asset intentionally out of scope for this deployment
		return nil
	}

	existing, err := e.store.GetToken(ctx, listing.DerivativeAddress)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	protocol, err := e.getOrCreateProtocol(ctx)
	if err != nil {
		return err
	}

	// this is a new derivative token, a new underlying token, and a new market

	derivative := &schema.Token{
		ID:       listing.DerivativeAddress,
		Name:     listing.Name,
		Symbol:   listing.Symbol,
		Decimals: listing.DerivativeDecimals,
	}
	if err := e.store.SaveToken(ctx, derivative); err != nil {
		return err
	}

	underlying := &schema.Token{
		ID:       asset,
		Name:     listing.Name,
		Symbol:   listing.Symbol,
		Decimals: listing.Decimals,
	}
	if err := e.store.SaveToken(ctx, underlying); err != nil {
		return err
	}

	marketID := listing.DerivativeAddress

	supplyRate := &schema.InterestRate{
		ID:   domain.RateKey{Side: domain.RateSideLender, Type: domain.RateTypeVariable, MarketID: marketID}.String(),
		Side: string(domain.RateSideLender),
		Type: string(domain.RateTypeVariable),
		Rate: decimal.Zero,
	}
	if err := e.store.SaveInterestRate(ctx, supplyRate); err != nil {
		return err
	}
	borrowRate := &schema.InterestRate{
		ID:   domain.RateKey{Side: domain.RateSideBorrower, Type: domain.RateTypeVariable, MarketID: marketID}.String(),
		Side: string(domain.RateSideBorrower),
		Type: string(domain.RateTypeVariable),
		Rate: decimal.Zero,
	}
	if err := e.store.SaveInterestRate(ctx, borrowRate); err != nil {
		return err
	}

	market := &schema.Market{
		ID:            marketID,
		Name:          listing.Name,
		ProtocolID:    protocol.ID,
		InputTokenID:  underlying.ID,
		OutputTokenID: derivative.ID,
		RateIDs:       datatypes.NewJSONSlice([]string{supplyRate.ID, borrowRate.ID}),

		IsActive:           true,
		CanUseAsCollateral: true,
		CanBorrowFrom:      true,

		MaximumLTV:           decimal.Zero,
		LiquidationThreshold: decimal.Zero,
		LiquidationPenalty:   decimal.Zero,
		ReserveFactor:        listing.ReserveFactor,

		InputTokenBalance:   decimal.Zero,
		InputTokenPriceUSD:  decimal.Zero,
		OutputTokenSupply:   decimal.Zero,
		OutputTokenPriceUSD: decimal.Zero,
		ExchangeRate:        decimal.Zero,
		BorrowExchangeRate:  decimal.Zero,
		BorrowBalance:       decimal.Zero,

		TotalValueLockedUSD:              decimal.Zero,
		TotalDepositBalanceUSD:           decimal.Zero,
		TotalBorrowBalanceUSD:            decimal.Zero,
		CumulativeDepositUSD:             decimal.Zero,
		CumulativeBorrowUSD:              decimal.Zero,
		CumulativeLiquidateUSD:           decimal.Zero,
		CumulativeTotalRevenueUSD:        decimal.Zero,
		CumulativeProtocolSideRevenueUSD: decimal.Zero,
		CumulativeSupplySideRevenueUSD:   decimal.Zero,

		CreatedTimestamp:   ev.Block.Time,
		CreatedBlockNumber: ev.Block.Height,
	}

	// the oracle may have fed a price before the listing; seed from it
	feed, err := e.store.GetFeedPrice(ctx, marketID)
	if err != nil {
		return err
	}
	if feed != nil {
		market.InputTokenPriceUSD = feed.TokenPriceUSD
		underlying.LastPriceUSD = feed.TokenPriceUSD
		underlying.LastPriceBlockNumber = feed.BlockNumber
		if err := e.store.SaveToken(ctx, underlying); err != nil {
			return err
		}
	}

	if err := e.store.SaveMarket(ctx, market); err != nil {
		return err
	}

	protocol.MarketIDs = append(protocol.MarketIDs, market.ID)
	protocol.TotalPoolCount++
	if err := e.store.SaveProtocol(ctx, protocol); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "market listed",
		zap.String("market", market.ID),
		zap.String("asset", asset),
		zap.Uint64("height", ev.Block.Height))
	return nil
}
