package engine

import (
	"context"

	"github.com/bambooloan/lending-indexer/internal/domain"
)

// handleWithdraw applies one redemption: the burned derivative amount leaves
// the market's output token supply
func (e *Engine) handleWithdraw(ctx context.Context, ev *domain.ChainEvent) error {
	st, err := e.beginAction(ctx, ev, domain.SchemaWithdraw, "user", "burn_amount", domain.ActionTypeWithdraw)
	if err != nil || st == nil {
		return err
	}

	st.market.OutputTokenSupply = st.market.OutputTokenSupply.Sub(st.amount)
	if err := e.store.SaveMarket(ctx, st.market); err != nil {
		return err
	}

	return e.finishAction(ctx, ev, st, domain.ActionTypeWithdraw)
}
