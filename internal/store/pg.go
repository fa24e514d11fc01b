package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults: 20 open, 5 idle,
// 5m lifetime, 10m idle time.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// pgGet loads one row by primary key, mapping gorm.ErrRecordNotFound to (nil, nil)
func pgGet[T any](ctx context.Context, db *gorm.DB, id string, what string) (*T, error) {
	var rec T
	err := db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	return &rec, nil
}

// pgSave upserts a row on its primary key
func pgSave[T any](ctx context.Context, db *gorm.DB, rec *T, what string) error {
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", what, err)
	}
	return nil
}

// pgCreate inserts a row, ignoring duplicate-key conflicts
func pgCreate[T any](ctx context.Context, db *gorm.DB, rec *T, what string) error {
	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(rec).Error
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", what, err)
	}
	return nil
}

func (s *pgStore) GetProtocol(ctx context.Context, id string) (*schema.Protocol, error) {
	return pgGet[schema.Protocol](ctx, s.db, id, "protocol")
}

func (s *pgStore) SaveProtocol(ctx context.Context, p *schema.Protocol) error {
	return pgSave(ctx, s.db, p, "protocol")
}

func (s *pgStore) GetMarket(ctx context.Context, id string) (*schema.Market, error) {
	return pgGet[schema.Market](ctx, s.db, id, "market")
}

func (s *pgStore) SaveMarket(ctx context.Context, m *schema.Market) error {
	return pgSave(ctx, s.db, m, "market")
}

func (s *pgStore) GetToken(ctx context.Context, id string) (*schema.Token, error) {
	return pgGet[schema.Token](ctx, s.db, id, "token")
}

func (s *pgStore) SaveToken(ctx context.Context, t *schema.Token) error {
	return pgSave(ctx, s.db, t, "token")
}

func (s *pgStore) GetInterestRate(ctx context.Context, id string) (*schema.InterestRate, error) {
	return pgGet[schema.InterestRate](ctx, s.db, id, "interest rate")
}

func (s *pgStore) SaveInterestRate(ctx context.Context, r *schema.InterestRate) error {
	return pgSave(ctx, s.db, r, "interest rate")
}

func (s *pgStore) CreateRateSnapshot(ctx context.Context, r *schema.RateSnapshot) error {
	return pgCreate(ctx, s.db, r, "rate snapshot")
}

func (s *pgStore) GetFeedPrice(ctx context.Context, id string) (*schema.FeedPrice, error) {
	return pgGet[schema.FeedPrice](ctx, s.db, id, "feed price")
}

func (s *pgStore) SaveFeedPrice(ctx context.Context, f *schema.FeedPrice) error {
	return pgSave(ctx, s.db, f, "feed price")
}

func (s *pgStore) CreateMarketAction(ctx context.Context, a *schema.MarketAction) error {
	return pgCreate(ctx, s.db, a, "market action")
}

func (s *pgStore) CreateChainEvent(ctx context.Context, e *schema.ChainEvent) error {
	return pgCreate(ctx, s.db, e, "chain event")
}

func (s *pgStore) GetAccount(ctx context.Context, id string) (*schema.Account, error) {
	return pgGet[schema.Account](ctx, s.db, id, "account")
}

func (s *pgStore) CreateAccount(ctx context.Context, a *schema.Account) error {
	return pgCreate(ctx, s.db, a, "account")
}

func (s *pgStore) GetActiveAccount(ctx context.Context, id string) (*schema.ActiveAccount, error) {
	return pgGet[schema.ActiveAccount](ctx, s.db, id, "active account")
}

func (s *pgStore) CreateActiveAccount(ctx context.Context, a *schema.ActiveAccount) error {
	return pgCreate(ctx, s.db, a, "active account")
}

func (s *pgStore) GetMarketHourlySnapshot(ctx context.Context, id string) (*schema.MarketHourlySnapshot, error) {
	return pgGet[schema.MarketHourlySnapshot](ctx, s.db, id, "market hourly snapshot")
}

func (s *pgStore) SaveMarketHourlySnapshot(ctx context.Context, snap *schema.MarketHourlySnapshot) error {
	return pgSave(ctx, s.db, snap, "market hourly snapshot")
}

func (s *pgStore) GetMarketDailySnapshot(ctx context.Context, id string) (*schema.MarketDailySnapshot, error) {
	return pgGet[schema.MarketDailySnapshot](ctx, s.db, id, "market daily snapshot")
}

func (s *pgStore) SaveMarketDailySnapshot(ctx context.Context, snap *schema.MarketDailySnapshot) error {
	return pgSave(ctx, s.db, snap, "market daily snapshot")
}

func (s *pgStore) GetUsageHourlySnapshot(ctx context.Context, id string) (*schema.UsageHourlySnapshot, error) {
	return pgGet[schema.UsageHourlySnapshot](ctx, s.db, id, "usage hourly snapshot")
}

func (s *pgStore) SaveUsageHourlySnapshot(ctx context.Context, snap *schema.UsageHourlySnapshot) error {
	return pgSave(ctx, s.db, snap, "usage hourly snapshot")
}

func (s *pgStore) GetUsageDailySnapshot(ctx context.Context, id string) (*schema.UsageDailySnapshot, error) {
	return pgGet[schema.UsageDailySnapshot](ctx, s.db, id, "usage daily snapshot")
}

func (s *pgStore) SaveUsageDailySnapshot(ctx context.Context, snap *schema.UsageDailySnapshot) error {
	return pgSave(ctx, s.db, snap, "usage daily snapshot")
}

func (s *pgStore) GetFinancialsSnapshot(ctx context.Context, id string) (*schema.FinancialsSnapshot, error) {
	return pgGet[schema.FinancialsSnapshot](ctx, s.db, id, "financials snapshot")
}

func (s *pgStore) SaveFinancialsSnapshot(ctx context.Context, snap *schema.FinancialsSnapshot) error {
	return pgSave(ctx, s.db, snap, "financials snapshot")
}

func (s *pgStore) GetBlockBuffer(ctx context.Context, id string) (*schema.BlockBuffer, error) {
	return pgGet[schema.BlockBuffer](ctx, s.db, id, "block buffer")
}

func (s *pgStore) SaveBlockBuffer(ctx context.Context, b *schema.BlockBuffer) error {
	return pgSave(ctx, s.db, b, "block buffer")
}
