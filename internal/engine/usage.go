package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/bambooloan/lending-indexer/internal/domain"
	"github.com/bambooloan/lending-indexer/internal/logger"
	"github.com/bambooloan/lending-indexer/internal/store/schema"
)

// snapshotUsage records one actor-bearing action in the hour and day usage
// buckets. A never-before-seen account bumps the protocol's unique-user
// counter; a first-activity-this-bucket account bumps the bucket's active
// user counter via a created-once sentinel row. Interest accrual events
// carry no actor and never reach this path.
func (e *Engine) snapshotUsage(ctx context.Context, blockNumber uint64, blockTimestamp int64, accountID string, action domain.ActionType) error {
	protocol, err := e.store.GetProtocol(ctx, e.dep.ProtocolAddress)
	if err != nil {
		return err
	}
	if protocol == nil {
		logger.WarnCtx(ctx, "protocol not found", zap.String("handler", "snapshotUsage"), zap.String("protocol", e.dep.ProtocolAddress))
		return nil
	}

	account, err := e.store.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		if err := e.store.CreateAccount(ctx, &schema.Account{ID: accountID}); err != nil {
			return err
		}
		protocol.CumulativeUniqueUsers++
		if err := e.store.SaveProtocol(ctx, protocol); err != nil {
			return err
		}
	}

	dayBucket := domain.DayBucket(blockTimestamp)
	dailyID := domain.UsageSnapshotKey{Granularity: domain.GranularityDaily, Bucket: dayBucket}.String()
	daily, err := e.store.GetUsageDailySnapshot(ctx, dailyID)
	if err != nil {
		return err
	}
	if daily == nil {
		daily = &schema.UsageDailySnapshot{ID: dailyID, ProtocolID: protocol.ID}
	}
	dailyActive, err := e.markAccountActive(ctx, domain.GranularityDaily, accountID, dayBucket)
	if err != nil {
		return err
	}
	if dailyActive {
		daily.DailyActiveUsers++
	}
	daily.CumulativeUniqueUsers = protocol.CumulativeUniqueUsers
	daily.TotalPoolCount = protocol.TotalPoolCount
	daily.DailyTransactionCount++
	switch action {
	case domain.ActionTypeDeposit:
		daily.DailyDepositCount++
	case domain.ActionTypeWithdraw:
		daily.DailyWithdrawCount++
	case domain.ActionTypeBorrow:
		daily.DailyBorrowCount++
	case domain.ActionTypeRepay:
		daily.DailyRepayCount++
	case domain.ActionTypeLiquidate:
		daily.DailyLiquidateCount++
	}
	daily.BlockNumber = blockNumber
	daily.Timestamp = blockTimestamp
	if err := e.store.SaveUsageDailySnapshot(ctx, daily); err != nil {
		return err
	}

	hourBucket := domain.HourBucket(blockTimestamp)
	hourlyID := domain.UsageSnapshotKey{Granularity: domain.GranularityHourly, Bucket: hourBucket}.String()
	hourly, err := e.store.GetUsageHourlySnapshot(ctx, hourlyID)
	if err != nil {
		return err
	}
	if hourly == nil {
		hourly = &schema.UsageHourlySnapshot{ID: hourlyID, ProtocolID: protocol.ID}
	}
	hourlyActive, err := e.markAccountActive(ctx, domain.GranularityHourly, accountID, hourBucket)
	if err != nil {
		return err
	}
	if hourlyActive {
		hourly.HourlyActiveUsers++
	}
	hourly.CumulativeUniqueUsers = protocol.CumulativeUniqueUsers
	hourly.HourlyTransactionCount++
	switch action {
	case domain.ActionTypeDeposit:
		hourly.HourlyDepositCount++
	case domain.ActionTypeWithdraw:
		hourly.HourlyWithdrawCount++
	case domain.ActionTypeBorrow:
		hourly.HourlyBorrowCount++
	case domain.ActionTypeRepay:
		hourly.HourlyRepayCount++
	case domain.ActionTypeLiquidate:
		hourly.HourlyLiquidateCount++
	}
	hourly.BlockNumber = blockNumber
	hourly.Timestamp = blockTimestamp
	return e.store.SaveUsageHourlySnapshot(ctx, hourly)
}

// markAccountActive creates the bucket-activity sentinel for an account.
// Returns true when the sentinel did not yet exist, meaning this is the
// account's first activity in the bucket.
func (e *Engine) markAccountActive(ctx context.Context, g domain.Granularity, accountID string, bucket int64) (bool, error) {
	id := domain.ActiveAccountKey{Granularity: g, Account: accountID, Bucket: bucket}.String()
	existing, err := e.store.GetActiveAccount(ctx, id)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if err := e.store.CreateActiveAccount(ctx, &schema.ActiveAccount{ID: id}); err != nil {
		return false, err
	}
	return true, nil
}
