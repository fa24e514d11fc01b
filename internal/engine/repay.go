package engine

import (
	"context"

	"github.com/bambooloan/lending-indexer/internal/domain"
)

// handleRepay applies one repayment: the USD value leaves the cumulative
// borrow total. The internal borrow-balance counter is left untouched; it is
// reconciled by the next interest-accrual recomputation.
func (e *Engine) handleRepay(ctx context.Context, ev *domain.ChainEvent) error {
	st, err := e.beginAction(ctx, ev, domain.SchemaRepay, "sender", "amount", domain.ActionTypeRepay)
	if err != nil || st == nil {
		return err
	}

	st.market.CumulativeBorrowUSD = st.market.CumulativeBorrowUSD.Sub(st.amountUSD)
	if err := e.store.SaveMarket(ctx, st.market); err != nil {
		return err
	}

	return e.finishAction(ctx, ev, st, domain.ActionTypeRepay)
}
