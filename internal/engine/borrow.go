package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/logger"
	"github.com/bambooloan/lending-indexer/internal/scale"
)

// handleBorrow applies one borrow: the borrowed underlying amount is
// converted through the current borrow exchange rate into the market's
// internal borrow-balance counter, and the USD value joins the cumulative
// borrow total.
func (e *Engine) handleBorrow(ctx context.Context, ev *domain.ChainEvent) error {
	st, err := e.beginAction(ctx, ev, domain.SchemaBorrow, "sender", "amount", domain.ActionTypeBorrow)
	if err != nil || st == nil {
		return err
	}

	if st.market.BorrowExchangeRate.IsZero() {
		// no accrual has set the rate yet; the counter delta cannot be
		// computed and is reconciled by the next accrual
		logger.WarnCtx(ctx, "borrow exchange rate not set, skipping borrow balance delta",
			zap.String("market", st.market.ID),
			zap.String("tx_hash", ev.TxHash))
	} else {
		outputDecimals := st.token.Decimals
		output, err := e.store.GetToken(ctx, st.market.OutputTokenID)
		if err != nil {
			return err
		}
		if output != nil {
			outputDecimals = output.Decimals
		}
		delta := scale.TruncateInt(st.amount.Div(st.market.BorrowExchangeRate).Mul(scale.Factor(outputDecimals)))
		st.market.BorrowBalance = st.market.BorrowBalance.Add(delta)
	}

	st.market.CumulativeBorrowUSD = st.market.CumulativeBorrowUSD.Add(st.amountUSD)
	if err := e.store.SaveMarket(ctx, st.market); err != nil {
		return err
	}

	return e.finishAction(ctx, ev, st, domain.ActionTypeBorrow)
}
