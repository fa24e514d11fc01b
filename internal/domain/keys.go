package domain

import (
	"fmt"
	"strconv"
)

// Composite entity keys. Every persisted entity id is produced by exactly one
// of the constructors below so the id space stays collision-free and stable
// under replay.

// EventKey identifies an audit event row
type EventKey struct {
	BlockHash string
	Height    uint64
	EventType string
}

func (k EventKey) String() string {
	return fmt.Sprintf("%s-%d-%s", k.BlockHash, k.Height, k.EventType)
}

// ActionKey identifies a deposit/withdraw/borrow/repay action entity.
// The action discriminator keeps ids distinct when several action types
// share one transaction.
type ActionKey struct {
	TxHash string
	Height uint64
	Action ActionType
}

func (k ActionKey) String() string {
	return fmt.Sprintf("%s-%d-%s", k.TxHash, k.Height, k.Action)
}

// RateKey identifies a market's current interest rate record
type RateKey struct {
	Side     InterestRateSide
	Type     InterestRateType
	MarketID string
}

func (k RateKey) String() string {
	return fmt.Sprintf("%s-%s-%s", k.Side, k.Type, k.MarketID)
}

// RateSnapshotKey identifies an immutable per-bucket clone of a rate record
type RateSnapshotKey struct {
	RateID string
	Bucket int64
}

func (k RateSnapshotKey) String() string {
	return k.RateID + "-" + strconv.FormatInt(k.Bucket, 10)
}

// MarketSnapshotKey identifies an hourly or daily market snapshot
type MarketSnapshotKey struct {
	MarketID string
	Bucket   int64
}

func (k MarketSnapshotKey) String() string {
	return k.MarketID + "-" + strconv.FormatInt(k.Bucket, 10)
}

// UsageSnapshotKey identifies a protocol-wide usage snapshot
type UsageSnapshotKey struct {
	Granularity Granularity
	Bucket      int64
}

func (k UsageSnapshotKey) String() string {
	return string(k.Granularity) + "-" + strconv.FormatInt(k.Bucket, 10)
}

// FinancialsKey identifies the daily protocol financial snapshot
type FinancialsKey struct {
	Bucket int64
}

func (k FinancialsKey) String() string {
	return strconv.FormatInt(k.Bucket, 10)
}

// ActiveAccountKey marks an account as active within one bucket
type ActiveAccountKey struct {
	Granularity Granularity
	Account     string
	Bucket      int64
}

func (k ActiveAccountKey) String() string {
	return fmt.Sprintf("%s-%s-%d", k.Granularity, k.Account, k.Bucket)
}

// HourBucket maps a unix timestamp to its hourly bucket index.
// Integer division keeps the mapping stable under replay.
func HourBucket(ts int64) int64 {
	return ts / SecondsPerHour
}

// DayBucket maps a unix timestamp to its daily bucket index
func DayBucket(ts int64) int64 {
	return ts / SecondsPerDay
}
