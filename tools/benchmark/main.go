// Command benchmark replays a synthetic chain event stream through the
// aggregation engine against the in-memory store and reports per-action
// processing latency. It is a development tool for sizing event backlogs,
// not part of the indexer runtime.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bambooloan/lending-indexer/internal/adapter"
	"github.com/bambooloan/lending-indexer/internal/deployment"
	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/engine"
	"github.com/bambooloan/lending-indexer/internal/logger"
	"github.com/bambooloan/lending-indexer/internal/store"
)

// Config holds the benchmark parameters
type Config struct {
	Events      int
	Markets     int
	Accounts    int
	AccrueEvery int
	FeedEvery   int
	Seed        int64
	OutputFile  string
	Debug       bool
}

// actionStats accumulates latencies for one event action
type actionStats struct {
	action    domain.EventAction
	durations []time.Duration
	total     time.Duration
}

func parseFlags() Config {
	var cfg Config
	flag.IntVar(&cfg.Events, "events", 100000, "number of events to replay")
	flag.IntVar(&cfg.Markets, "markets", 4, "number of listed markets")
	flag.IntVar(&cfg.Accounts, "accounts", 500, "number of distinct actor accounts")
	flag.IntVar(&cfg.AccrueEvery, "accrue-every", 25, "emit an accrue_interest event every N events")
	flag.IntVar(&cfg.FeedEvery, "feed-every", 100, "emit an oracle feed event every N events")
	flag.Int64Var(&cfg.Seed, "seed", 1, "random seed for the event stream")
	flag.StringVar(&cfg.OutputFile, "output", "", "write the report to a markdown file instead of stdout")
	flag.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	if err := logger.Initialize(logger.Config{Debug: cfg.Debug}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Flush(time.Second)

	dep := buildDeployment(cfg.Markets)
	events := generateEvents(cfg, dep)

	eng := engine.New(store.NewMemoryStore(), dep, adapter.NewClock())
	ctx := context.Background()

	stats := make(map[domain.EventAction]*actionStats)
	start := time.Now()

	for _, ev := range events {
		action := ev.Action()
		began := time.Now()
		if err := eng.Process(ctx, ev); err != nil {
			fmt.Printf("Event at height %d failed: %v\n", ev.Block.Height, err)
			os.Exit(1)
		}
		took := time.Since(began)

		s, ok := stats[action]
		if !ok {
			s = &actionStats{action: action}
			stats[action] = s
		}
		s.durations = append(s.durations, took)
		s.total += took
	}

	elapsed := time.Since(start)
	report := buildReport(cfg, stats, len(events), elapsed)

	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, []byte(report), 0644); err != nil {
			fmt.Printf("Failed to write report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", cfg.OutputFile)
		return
	}
	fmt.Print(report)
}

// buildDeployment fabricates an in-scope asset table with the given number
// of markets, mirroring the shape of a real deployment descriptor
func buildDeployment(markets int) *deployment.Deployment {
	assets := make(map[string]deployment.AssetListing, markets)
	for i := 0; i < markets; i++ {
		asset := fmt.Sprintf("uasset%d", i)
		assets[asset] = deployment.AssetListing{
			DerivativeAddress:  fmt.Sprintf("persistence1passet%d", i),
			Name:               fmt.Sprintf("Bench Asset %d", i),
			Symbol:             fmt.Sprintf("BA%d", i),
			Decimals:           6,
			DerivativeDecimals: 6,
			ReserveFactor:      decimal.RequireFromString("0.25"),
		}
	}
	return &deployment.Deployment{
		Network:            domain.NetworkTestnet,
		ProtocolAddress:    "persistence1benchmarket",
		PriceOracleAddress: "persistence1benchoracle",
		Name:               "Benchmark Loan",
		Slug:               "benchmark-loan",
		SchemaVersion:      "1.0.0",
		SubgraphVersion:    "1.0.0",
		MethodologyVersion: "1.0.0",
		Assets:             assets,
	}
}

// generateEvents produces a deterministic event stream: one listing and one
// seeded accrual per market up front, then a random mix of actor actions
// with periodic accruals and oracle feeds. Heights strictly increase and
// timestamps advance with them.
func generateEvents(cfg Config, dep *deployment.Deployment) []*domain.ChainEvent {
	rng := rand.New(rand.NewSource(cfg.Seed))

	assets := make([]string, 0, len(dep.Assets))
	for asset := range dep.Assets {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	var height uint64 = 1000
	var ts int64 = 1672531200
	next := func() (uint64, int64) {
		height++
		ts += 6
		return height, ts
	}

	base := func(action domain.EventAction, attrs ...domain.Attribute) *domain.ChainEvent {
		h, t := next()
		all := append([]domain.Attribute{{Key: "action", Value: string(action)}}, attrs...)
		return &domain.ChainEvent{
			Type:       "wasm",
			Attributes: all,
			Block:      domain.BlockHeader{Hash: fmt.Sprintf("block%d", h), Height: h, Time: t},
			TxHash:     fmt.Sprintf("tx%d", h),
		}
	}

	events := make([]*domain.ChainEvent, 0, cfg.Events+2*len(assets))

	// Listings and one accrual each so exchange rates are non-zero before
	// borrows arrive.
	for _, asset := range assets {
		events = append(events, base(domain.ActionInitAsset,
			domain.Attribute{Key: "asset", Value: asset}))
		events = append(events, base(domain.ActionAccrueInterest,
			domain.Attribute{Key: "asset", Value: asset},
			domain.Attribute{Key: "liquidity_index", Value: "1.01"},
			domain.Attribute{Key: "borrow_index", Value: "1.02"},
			domain.Attribute{Key: "liquidity_rate", Value: "0.5"},
			domain.Attribute{Key: "borrow_rate", Value: "1.1"}))
	}

	actorActions := []domain.EventAction{
		domain.ActionDeposit, domain.ActionRedeem, domain.ActionBorrow, domain.ActionRepay,
	}

	for i := 0; i < cfg.Events; i++ {
		asset := assets[rng.Intn(len(assets))]
		actor := fmt.Sprintf("persistence1actor%d", rng.Intn(cfg.Accounts))
		amount := fmt.Sprintf("%d", 1000+rng.Intn(10_000_000))

		switch {
		case cfg.AccrueEvery > 0 && i%cfg.AccrueEvery == cfg.AccrueEvery-1:
			events = append(events, base(domain.ActionAccrueInterest,
				domain.Attribute{Key: "asset", Value: asset},
				domain.Attribute{Key: "liquidity_index", Value: fmt.Sprintf("1.%02d", rng.Intn(100))},
				domain.Attribute{Key: "borrow_index", Value: fmt.Sprintf("1.%02d", rng.Intn(100))},
				domain.Attribute{Key: "liquidity_rate", Value: fmt.Sprintf("0.%02d", 1+rng.Intn(99))},
				domain.Attribute{Key: "borrow_rate", Value: fmt.Sprintf("1.%02d", rng.Intn(100))}))
		case cfg.FeedEvery > 0 && i%cfg.FeedEvery == cfg.FeedEvery-1:
			listing, _ := dep.Listing(asset)
			events = append(events, base(domain.ActionFeedPrice,
				domain.Attribute{Key: "asset", Value: listing.DerivativeAddress},
				domain.Attribute{Key: "price", Value: fmt.Sprintf("%d.%02d", 1+rng.Intn(5), rng.Intn(100))}))
		default:
			action := actorActions[rng.Intn(len(actorActions))]
			attrs := []domain.Attribute{{Key: "asset", Value: asset}}
			switch action {
			case domain.ActionDeposit:
				attrs = append(attrs,
					domain.Attribute{Key: "to", Value: actor},
					domain.Attribute{Key: "amount", Value: amount})
			case domain.ActionRedeem:
				attrs = append(attrs,
					domain.Attribute{Key: "user", Value: actor},
					domain.Attribute{Key: "burn_amount", Value: amount})
			default:
				attrs = append(attrs,
					domain.Attribute{Key: "sender", Value: actor},
					domain.Attribute{Key: "amount", Value: amount})
			}
			events = append(events, base(action, attrs...))
		}
	}

	return events
}

// buildReport renders the latency table as markdown
func buildReport(cfg Config, stats map[domain.EventAction]*actionStats, total int, elapsed time.Duration) string {
	actions := make([]*actionStats, 0, len(stats))
	for _, s := range stats {
		actions = append(actions, s)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i].action < actions[j].action })

	var b strings.Builder
	fmt.Fprintf(&b, "# Engine replay benchmark\n\n")
	fmt.Fprintf(&b, "- Events: %d (markets: %d, accounts: %d, seed: %d)\n", total, cfg.Markets, cfg.Accounts, cfg.Seed)
	fmt.Fprintf(&b, "- Elapsed: %s\n", formatDuration(elapsed))
	fmt.Fprintf(&b, "- Throughput: %s\n\n", formatRate(total, elapsed))

	fmt.Fprintf(&b, "| Action | Count | Avg | P50 | P95 | P99 | Max |\n")
	fmt.Fprintf(&b, "|--------|-------|-----|-----|-----|-----|-----|\n")
	for _, s := range actions {
		sorted := make([]time.Duration, len(s.durations))
		copy(sorted, s.durations)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		avg := s.total / time.Duration(len(s.durations))
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s | %s |\n",
			s.action, len(s.durations),
			formatDuration(avg),
			formatDuration(percentile(sorted, 50)),
			formatDuration(percentile(sorted, 95)),
			formatDuration(percentile(sorted, 99)),
			formatDuration(sorted[len(sorted)-1]))
	}

	return b.String()
}
