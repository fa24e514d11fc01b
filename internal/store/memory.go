package store

import (
	"context"
	"slices"
	"sync"

	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

// memoryStore is an in-memory implementation of Store used by engine tests.
// It mirrors the Postgres store's semantics: getters return (nil, nil) when
// absent, Save upserts, Create ignores duplicates. Entities are stored by
// value and slice fields are cloned so callers can never mutate stored state
// through a returned pointer.
type memoryStore struct {
	mu sync.RWMutex

	protocols       map[string]schema.Protocol
	markets         map[string]schema.Market
	tokens          map[string]schema.Token
	rates           map[string]schema.InterestRate
	rateSnapshots   map[string]schema.RateSnapshot
	feedPrices      map[string]schema.FeedPrice
	actions         map[string]schema.MarketAction
	events          map[string]schema.ChainEvent
	accounts        map[string]schema.Account
	activeAccounts  map[string]schema.ActiveAccount
	marketHourly    map[string]schema.MarketHourlySnapshot
	marketDaily     map[string]schema.MarketDailySnapshot
	usageHourly     map[string]schema.UsageHourlySnapshot
	usageDaily      map[string]schema.UsageDailySnapshot
	financials      map[string]schema.FinancialsSnapshot
	blockBuffers    map[string]schema.BlockBuffer
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() Store {
	return &memoryStore{
		protocols:      make(map[string]schema.Protocol),
		markets:        make(map[string]schema.Market),
		tokens:         make(map[string]schema.Token),
		rates:          make(map[string]schema.InterestRate),
		rateSnapshots:  make(map[string]schema.RateSnapshot),
		feedPrices:     make(map[string]schema.FeedPrice),
		actions:        make(map[string]schema.MarketAction),
		events:         make(map[string]schema.ChainEvent),
		accounts:       make(map[string]schema.Account),
		activeAccounts: make(map[string]schema.ActiveAccount),
		marketHourly:   make(map[string]schema.MarketHourlySnapshot),
		marketDaily:    make(map[string]schema.MarketDailySnapshot),
		usageHourly:    make(map[string]schema.UsageHourlySnapshot),
		usageDaily:     make(map[string]schema.UsageDailySnapshot),
		financials:     make(map[string]schema.FinancialsSnapshot),
		blockBuffers:   make(map[string]schema.BlockBuffer),
	}
}

func memGet[T any](s *memoryStore, m map[string]T, id string, clone func(*T)) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := m[id]
	if !ok {
		return nil, nil
	}
	if clone != nil {
		clone(&rec)
	}
	return &rec, nil
}

func memputLocked[T any](m map[string]T, id string, rec T, clone func(*T)) {
	if clone != nil {
		clone(&rec)
	}
	m[id] = rec
}

func cloneProtocol(p *schema.Protocol) {
	p.MarketIDs = slices.Clone(p.MarketIDs)
}

func cloneMarket(m *schema.Market) {
	m.RateIDs = slices.Clone(m.RateIDs)
}

func cloneMarketHourly(s *schema.MarketHourlySnapshot) {
	s.RateIDs = slices.Clone(s.RateIDs)
}

func cloneMarketDaily(s *schema.MarketDailySnapshot) {
	s.RateIDs = slices.Clone(s.RateIDs)
}

func cloneBlockBuffer(b *schema.BlockBuffer) {
	b.Blocks = slices.Clone(b.Blocks)
}

func (s *memoryStore) GetProtocol(_ context.Context, id string) (*schema.Protocol, error) {
	return memGet(s, s.protocols, id, cloneProtocol)
}

func (s *memoryStore) SaveProtocol(_ context.Context, p *schema.Protocol) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	memputLocked(s.protocols, p.ID, *p, cloneProtocol)
	return nil
}

func (s *memoryStore) GetMarket(_ context.Context, id string) (*schema.Market, error) {
	return memGet(s, s.markets, id, cloneMarket)
}

func (s *memoryStore) SaveMarket(_ context.Context, m *schema.Market) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	memputLocked(s.markets, m.ID, *m, cloneMarket)
	return nil
}

func (s *memoryStore) GetToken(_ context.Context, id string) (*schema.Token, error) {
	return memGet(s, s.tokens, id, nil)
}

func (s *memoryStore) SaveToken(_ context.Context, t *schema.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[t.ID] = *t
	return nil
}

func (s *memoryStore) GetInterestRate(_ context.Context, id string) (*schema.InterestRate, error) {
	return memGet(s, s.rates, id, nil)
}

func (s *memoryStore) SaveInterestRate(_ context.Context, r *schema.InterestRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[r.ID] = *r
	return nil
}

func (s *memoryStore) CreateRateSnapshot(_ context.Context, r *schema.RateSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rateSnapshots[r.ID]; exists {
		return nil
	}
	s.rateSnapshots[r.ID] = *r
	return nil
}

func (s *memoryStore) GetFeedPrice(_ context.Context, id string) (*schema.FeedPrice, error) {
	return memGet(s, s.feedPrices, id, nil)
}

func (s *memoryStore) SaveFeedPrice(_ context.Context, f *schema.FeedPrice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedPrices[f.ID] = *f
	return nil
}

func (s *memoryStore) CreateMarketAction(_ context.Context, a *schema.MarketAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.actions[a.ID]; exists {
		return nil
	}
	s.actions[a.ID] = *a
	return nil
}

func (s *memoryStore) CreateChainEvent(_ context.Context, e *schema.ChainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.events[e.ID]; exists {
		return nil
	}
	s.events[e.ID] = *e
	return nil
}

func (s *memoryStore) GetAccount(_ context.Context, id string) (*schema.Account, error) {
	return memGet(s, s.accounts, id, nil)
}

func (s *memoryStore) CreateAccount(_ context.Context, a *schema.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[a.ID]; exists {
		return nil
	}
	s.accounts[a.ID] = *a
	return nil
}

func (s *memoryStore) GetActiveAccount(_ context.Context, id string) (*schema.ActiveAccount, error) {
	return memGet(s, s.activeAccounts, id, nil)
}

func (s *memoryStore) CreateActiveAccount(_ context.Context, a *schema.ActiveAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.activeAccounts[a.ID]; exists {
		return nil
	}
	s.activeAccounts[a.ID] = *a
	return nil
}

func (s *memoryStore) GetMarketHourlySnapshot(_ context.Context, id string) (*schema.MarketHourlySnapshot, error) {
	return memGet(s, s.marketHourly, id, cloneMarketHourly)
}

func (s *memoryStore) SaveMarketHourlySnapshot(_ context.Context, snap *schema.MarketHourlySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	memputLocked(s.marketHourly, snap.ID, *snap, cloneMarketHourly)
	return nil
}

func (s *memoryStore) GetMarketDailySnapshot(_ context.Context, id string) (*schema.MarketDailySnapshot, error) {
	return memGet(s, s.marketDaily, id, cloneMarketDaily)
}

func (s *memoryStore) SaveMarketDailySnapshot(_ context.Context, snap *schema.MarketDailySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	memputLocked(s.marketDaily, snap.ID, *snap, cloneMarketDaily)
	return nil
}

func (s *memoryStore) GetUsageHourlySnapshot(_ context.Context, id string) (*schema.UsageHourlySnapshot, error) {
	return memGet(s, s.usageHourly, id, nil)
}

func (s *memoryStore) SaveUsageHourlySnapshot(_ context.Context, snap *schema.UsageHourlySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usageHourly[snap.ID] = *snap
	return nil
}

func (s *memoryStore) GetUsageDailySnapshot(_ context.Context, id string) (*schema.UsageDailySnapshot, error) {
	return memGet(s, s.usageDaily, id, nil)
}

func (s *memoryStore) SaveUsageDailySnapshot(_ context.Context, snap *schema.UsageDailySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usageDaily[snap.ID] = *snap
	return nil
}

func (s *memoryStore) GetFinancialsSnapshot(_ context.Context, id string) (*schema.FinancialsSnapshot, error) {
	return memGet(s, s.financials, id, nil)
}

func (s *memoryStore) SaveFinancialsSnapshot(_ context.Context, snap *schema.FinancialsSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.financials[snap.ID] = *snap
	return nil
}

func (s *memoryStore) GetBlockBuffer(_ context.Context, id string) (*schema.BlockBuffer, error) {
	return memGet(s, s.blockBuffers, id, cloneBlockBuffer)
}

func (s *memoryStore) SaveBlockBuffer(_ context.Context, b *schema.BlockBuffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	memputLocked(s.blockBuffers, b.ID, *b, cloneBlockBuffer)
	return nil
}
