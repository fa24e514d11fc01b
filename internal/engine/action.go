package engine

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/scale"
	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

// actionState carries the entities and figures shared by every actor-bearing
// handler between validation and the snapshot chain
type actionState struct {
	protocol  *schema.Protocol
	market    *schema.Market
	token     *schema.Token
	actor     string
	amount    decimal.Decimal
	amountUSD decimal.Decimal
}

// beginAction runs the front half common to deposit, withdraw, borrow and
// repay: schema validation, entity resolution, USD conversion and the
// immutable MarketAction row. A (nil, nil) return means the event cannot be
// applied and the handler should no-op.
func (e *Engine) beginAction(ctx context.Context, ev *domain.ChainEvent, attrSchema domain.AttrSchema, actorKey, amountKey string, action domain.ActionType) (*actionState, error) {
	if err := attrSchema.Validate(ev); err != nil {
		return nil, err
	}
	asset, _ := ev.Attr("asset")
	actor, _ := ev.Attr(actorKey)
	amount, err := ev.RequireDecimalAttr(amountKey)
	if err != nil {
		return nil, err
	}

	protocol, market, token, err := e.resolveMarket(ctx, string(action), asset)
	if err != nil {
		return nil, err
	}
	if market == nil {
		return nil, nil
	}

	amountUSD := scale.ToUSD(amount, token.Decimals, market.InputTokenPriceUSD)

	if err := e.store.CreateMarketAction(ctx, &schema.MarketAction{
		ID:          domain.ActionKey{TxHash: ev.TxHash, Height: ev.Block.Height, Action: action}.String(),
		Type:        string(action),
		TxHash:      ev.TxHash,
		ProtocolID:  protocol.ID,
		MarketID:    market.ID,
		AssetID:     market.InputTokenID,
		Account:     actor,
		Amount:      amount,
		AmountUSD:   amountUSD,
		BlockNumber: ev.Block.Height,
		Timestamp:   ev.Block.Time,
	}); err != nil {
		return nil, err
	}

	return &actionState{
		protocol:  protocol,
		market:    market,
		token:     token,
		actor:     actor,
		amount:    amount,
		amountUSD: amountUSD,
	}, nil
}

// finishAction runs the snapshot chain common to the actor-bearing handlers.
// The order is fixed: later steps read fields the earlier steps just wrote.
func (e *Engine) finishAction(ctx context.Context, ev *domain.ChainEvent, st *actionState, action domain.ActionType) error {
	if err := e.snapshotMarket(ctx, st.market.ID, ev.Block.Height, ev.Block.Time); err != nil {
		return err
	}
	if err := e.snapshotFinancials(ctx, ev.Block.Height, ev.Block.Time); err != nil {
		return err
	}
	if err := e.updateMarketFlows(ctx, st.market, ev.Block.Time, st.amountUSD, action); err != nil {
		return err
	}
	return e.snapshotUsage(ctx, ev.Block.Height, ev.Block.Time, st.actor, action)
}
