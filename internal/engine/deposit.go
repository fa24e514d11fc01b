package engine

import (
	"context"

	"github.com/bambooloan/lending-indexer/internal/domain"
)

// handleDeposit applies one deposit: the minted derivative amount joins the
// market's output token supply and the USD value joins the cumulative
// deposit total.
func (e *Engine) handleDeposit(ctx context.Context, ev *domain.ChainEvent) error {
	st, err := e.beginAction(ctx, ev, domain.SchemaDeposit, "to", "amount", domain.ActionTypeDeposit)
	if err != nil || st == nil {
		return err
	}

	st.market.OutputTokenSupply = st.market.OutputTokenSupply.Add(st.amount)
	st.market.CumulativeDepositUSD = st.market.CumulativeDepositUSD.Add(st.amountUSD)
	if err := e.store.SaveMarket(ctx, st.market); err != nil {
		return err
	}

	return e.finishAction(ctx, ev, st, domain.ActionTypeDeposit)
}
