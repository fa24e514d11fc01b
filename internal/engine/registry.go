package engine

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

// getOrCreateProtocol returns the singleton protocol record, creating it
// with zeroed counters on first access.
func (e *Engine) getOrCreateProtocol(ctx context.Context) (*schema.Protocol, error) {
	protocol, err := e.store.GetProtocol(ctx, e.dep.ProtocolAddress)
	if err != nil {
		return nil, err
	}
	if protocol != nil {
		return protocol, nil
	}

	protocol = &schema.Protocol{
		ID:                 e.dep.ProtocolAddress,
		Name:               e.dep.Name,
		Slug:               e.dep.Slug,
		SchemaVersion:      e.dep.SchemaVersion,
		SubgraphVersion:    e.dep.SubgraphVersion,
		MethodologyVersion: e.dep.MethodologyVersion,
		Network:            string(e.dep.Network),
		Type:               domain.ProtocolTypeLending,
		LendingType:        domain.LendingTypePooled,
		RiskType:           domain.RiskTypeGlobal,

		CumulativeUniqueUsers: 0,
		TotalPoolCount:        0,

		TotalValueLockedUSD:              decimal.Zero,
		TotalDepositBalanceUSD:           decimal.Zero,
		TotalBorrowBalanceUSD:            decimal.Zero,
		CumulativeDepositUSD:             decimal.Zero,
		CumulativeBorrowUSD:              decimal.Zero,
		CumulativeLiquidateUSD:           decimal.Zero,
		CumulativeTotalRevenueUSD:        decimal.Zero,
		CumulativeProtocolSideRevenueUSD: decimal.Zero,
		CumulativeSupplySideRevenueUSD:   decimal.Zero,
		LiquidationIncentive:             decimal.Zero,

		PriceOracle: e.dep.PriceOracleAddress,
		MarketIDs:   nil,
	}
	if err := e.store.SaveProtocol(ctx, protocol); err != nil {
		return nil, err
	}
	return protocol, nil
}

// handleSetPriceOracle swaps the protocol's active price oracle address to
// the one named by an oracle-update event
func (e *Engine) handleSetPriceOracle(ctx context.Context, ev *domain.ChainEvent) error {
	if err := domain.SchemaSetPriceOracle.Validate(ev); err != nil {
		return err
	}
	oracleAddr, _ := ev.Attr("price_oracle")
	return e.SetPriceOracle(ctx, oracleAddr)
}

// SetPriceOracle swaps the protocol's active price oracle address
func (e *Engine) SetPriceOracle(ctx context.Context, oracleAddr string) error {
	protocol, err := e.getOrCreateProtocol(ctx)
	if err != nil {
		return err
	}
	protocol.PriceOracle = oracleAddr
	return e.store.SaveProtocol(ctx, protocol)
}
