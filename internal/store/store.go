package store

import (
	"context"

	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

// Store defines the interface for database operations. Getters return
// (nil, nil) when the entity does not exist. Save methods upsert; Create
// methods are insert-only and treat a duplicate key as a no-op, which is
// what makes event replay idempotent for immutable entities.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetProtocol retrieves the protocol record by contract address
	GetProtocol(ctx context.Context, id string) (*schema.Protocol, error)
	// SaveProtocol upserts the protocol record
	SaveProtocol(ctx context.Context, p *schema.Protocol) error

	// GetMarket retrieves a market by derivative-token address
	GetMarket(ctx context.Context, id string) (*schema.Market, error)
	// SaveMarket upserts a market
	SaveMarket(ctx context.Context, m *schema.Market) error

	// GetToken retrieves a token by address
	GetToken(ctx context.Context, id string) (*schema.Token, error)
	// SaveToken upserts a token
	SaveToken(ctx context.Context, t *schema.Token) error

	// GetInterestRate retrieves a current rate record
	GetInterestRate(ctx context.Context, id string) (*schema.InterestRate, error)
	// SaveInterestRate upserts a current rate record
	SaveInterestRate(ctx context.Context, r *schema.InterestRate) error
	// CreateRateSnapshot inserts an immutable rate clone; duplicate id is a no-op
	CreateRateSnapshot(ctx context.Context, r *schema.RateSnapshot) error

	// GetFeedPrice retrieves the latest oracle price for a market id
	GetFeedPrice(ctx context.Context, id string) (*schema.FeedPrice, error)
	// SaveFeedPrice upserts an oracle price
	SaveFeedPrice(ctx context.Context, f *schema.FeedPrice) error

	// CreateMarketAction inserts an action entity; duplicate id is a no-op
	CreateMarketAction(ctx context.Context, a *schema.MarketAction) error
	// CreateChainEvent appends an audit event row; duplicate id is a no-op
	CreateChainEvent(ctx context.Context, e *schema.ChainEvent) error

	// GetAccount retrieves an account by address
	GetAccount(ctx context.Context, id string) (*schema.Account, error)
	// CreateAccount inserts an account; duplicate id is a no-op
	CreateAccount(ctx context.Context, a *schema.Account) error
	// GetActiveAccount retrieves a bucket-activity sentinel
	GetActiveAccount(ctx context.Context, id string) (*schema.ActiveAccount, error)
	// CreateActiveAccount inserts a bucket-activity sentinel; duplicate id is a no-op
	CreateActiveAccount(ctx context.Context, a *schema.ActiveAccount) error

	// GetMarketHourlySnapshot retrieves an hourly market snapshot
	GetMarketHourlySnapshot(ctx context.Context, id string) (*schema.MarketHourlySnapshot, error)
	// SaveMarketHourlySnapshot upserts an hourly market snapshot
	SaveMarketHourlySnapshot(ctx context.Context, s *schema.MarketHourlySnapshot) error
	// GetMarketDailySnapshot retrieves a daily market snapshot
	GetMarketDailySnapshot(ctx context.Context, id string) (*schema.MarketDailySnapshot, error)
	// SaveMarketDailySnapshot upserts a daily market snapshot
	SaveMarketDailySnapshot(ctx context.Context, s *schema.MarketDailySnapshot) error

	// GetUsageHourlySnapshot retrieves an hourly usage snapshot
	GetUsageHourlySnapshot(ctx context.Context, id string) (*schema.UsageHourlySnapshot, error)
	// SaveUsageHourlySnapshot upserts an hourly usage snapshot
	SaveUsageHourlySnapshot(ctx context.Context, s *schema.UsageHourlySnapshot) error
	// GetUsageDailySnapshot retrieves a daily usage snapshot
	GetUsageDailySnapshot(ctx context.Context, id string) (*schema.UsageDailySnapshot, error)
	// SaveUsageDailySnapshot upserts a daily usage snapshot
	SaveUsageDailySnapshot(ctx context.Context, s *schema.UsageDailySnapshot) error

	// GetFinancialsSnapshot retrieves the daily protocol financial snapshot
	GetFinancialsSnapshot(ctx context.Context, id string) (*schema.FinancialsSnapshot, error)
	// SaveFinancialsSnapshot upserts the daily protocol financial snapshot
	SaveFinancialsSnapshot(ctx context.Context, s *schema.FinancialsSnapshot) error

	// GetBlockBuffer retrieves the singleton block-rate ring buffer
	GetBlockBuffer(ctx context.Context, id string) (*schema.BlockBuffer, error)
	// SaveBlockBuffer upserts the singleton block-rate ring buffer
	SaveBlockBuffer(ctx context.Context, b *schema.BlockBuffer) error
}
