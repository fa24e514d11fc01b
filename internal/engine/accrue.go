package engine

import (
	"context"

	"github.com/bambooloan/lending-indexer/internal/domain"
)

// handleAccrueInterest reconciles a market against the on-chain indexes and
// rates carried by an accrual event: ring-buffer block observation, full
// balance/revenue recomputation, protocol roll-up, then the market and
// financial snapshots. Accrual events carry no acting account, so no usage
// snapshot is taken here.
func (e *Engine) handleAccrueInterest(ctx context.Context, ev *domain.ChainEvent) error {
	if err := domain.SchemaAccrueInterest.Validate(ev); err != nil {
		return err
	}
	asset, _ := ev.Attr("asset")

	_, market, _, err := e.resolveMarket(ctx, string(domain.ActionAccrueInterest), asset)
	if err != nil {
		return err
	}
	if market == nil {
		return nil
	}

	buf, err := e.observeBlock(ctx, ev.Block.Height)
	if err != nil {
		return err
	}

	if err := e.updateMarket(ctx, market.ID, ev, true, unitPerYear(buf)); err != nil {
		return err
	}
	if err := e.updateProtocol(ctx); err != nil {
		return err
	}
	if err := e.snapshotMarket(ctx, market.ID, ev.Block.Height, ev.Block.Time); err != nil {
		return err
	}
	return e.snapshotFinancials(ctx, ev.Block.Height, ev.Block.Time)
}
