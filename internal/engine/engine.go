// Package engine implements the incremental financial-state aggregation
// engine: given one decoded chain event and the persisted state, it computes
// the new state deterministically and idempotently, and materializes the
// hourly/daily snapshot series derived from it.
package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bambooloan/lending-indexer/internal/adapter"
	"github.com/bambooloan/lending-indexer/internal/deployment"
	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/logger"
	"github.com/bambooloan/lending-indexer/internal/store"
	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

// Engine processes chain events strictly one at a time. It holds no entity
// state across events: every handler re-loads what it needs through the
// store and re-saves it before returning.
type Engine struct {
	store store.Store
	dep   *deployment.Deployment
	clock adapter.Clock
}

// New creates an engine bound to a store and a deployment table
func New(st store.Store, dep *deployment.Deployment, clock adapter.Clock) *Engine {
	return &Engine{store: st, dep: dep, clock: clock}
}

// Process dispatches one event to its action handler. The returned error is
// always an infrastructure (store) failure the caller may retry; domain
// errors - malformed attributes, missing entities, out-of-scope assets -
// are contained here so the stream always continues with the next event.
func (e *Engine) Process(ctx context.Context, ev *domain.ChainEvent) error {
	if err := e.recordEvent(ctx, ev); err != nil {
		return fmt.Errorf("failed to record audit event: %w", err)
	}

	started := e.clock.Now()
	action := ev.Action()
	var err error
	switch action {
	case domain.ActionInitAsset:
		err = e.handleMarketListed(ctx, ev)
	case domain.ActionDeposit:
		err = e.handleDeposit(ctx, ev)
	case domain.ActionRedeem:
		err = e.handleWithdraw(ctx, ev)
	case domain.ActionBorrow:
		err = e.handleBorrow(ctx, ev)
	case domain.ActionRepay:
		err = e.handleRepay(ctx, ev)
	case domain.ActionAccrueInterest:
		err = e.handleAccrueInterest(ctx, ev)
	case domain.ActionFeedPrice:
		err = e.handleOracleFeed(ctx, ev)
	case domain.ActionSetPriceOracle:
		err = e.handleSetPriceOracle(ctx, ev)
	default:
		// not an action this engine tracks
		return nil
	}

	if err != nil {
		if errors.Is(err, domain.ErrMissingAttribute) || errors.Is(err, domain.ErrMalformedAttribute) {
			// proceeding would produce silently wrong figures; drop this
			// event and keep the stream going
			logger.ErrorCtx(ctx, err,
				zap.String("action", string(action)),
				zap.Uint64("height", ev.Block.Height),
				zap.String("tx_hash", ev.TxHash))
			return nil
		}
		return fmt.Errorf("failed to handle %s: %w", action, err)
	}

	logger.DebugCtx(ctx, "event applied",
		zap.String("action", string(action)),
		zap.Uint64("height", ev.Block.Height),
		zap.Duration("took", e.clock.Since(started)))
	return nil
}

// recordEvent writes the append-only audit row for a dispatched event
func (e *Engine) recordEvent(ctx context.Context, ev *domain.ChainEvent) error {
	contract, _ := ev.Attr("_contract_address")
	key := domain.EventKey{BlockHash: ev.Block.Hash, Height: ev.Block.Height, EventType: ev.Type}
	return e.store.CreateChainEvent(ctx, &schema.ChainEvent{
		ID:              key.String(),
		Type:            ev.Type,
		Action:          string(ev.Action()),
		ContractAddress: contract,
		TxHash:          ev.TxHash,
		BlockNumber:     ev.Block.Height,
		Timestamp:       ev.Block.Time,
	})
}

// resolveMarket loads the protocol, market and underlying token referenced
// by an actor event. A nil market with a nil error means the event cannot be
// applied (out-of-scope asset or entities not yet indexed) and the handler
// should no-op.
func (e *Engine) resolveMarket(ctx context.Context, handler, asset string) (*schema.Protocol, *schema.Market, *schema.Token, error) {
	marketID, ok := e.dep.DerivativeID(asset)
	if !ok {
		// asset intentionally out of scope for this deployment
		return nil, nil, nil, nil
	}

	protocol, err := e.store.GetProtocol(ctx, e.dep.ProtocolAddress)
	if err != nil {
		return nil, nil, nil, err
	}
	if protocol == nil {
		logger.WarnCtx(ctx, "protocol not found", zap.String("handler", handler), zap.String("protocol", e.dep.ProtocolAddress))
		return nil, nil, nil, nil
	}

	market, err := e.store.GetMarket(ctx, marketID)
	if err != nil {
		return nil, nil, nil, err
	}
	if market == nil {
		logger.WarnCtx(ctx, "market not found", zap.String("handler", handler), zap.String("market", marketID))
		return nil, nil, nil, nil
	}

	token, err := e.store.GetToken(ctx, market.InputTokenID)
	if err != nil {
		return nil, nil, nil, err
	}
	if token == nil {
		logger.WarnCtx(ctx, "underlying token not found", zap.String("handler", handler), zap.String("token", market.InputTokenID))
		return nil, nil, nil, nil
	}

	return protocol, market, token, nil
}
