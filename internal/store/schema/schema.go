package schema

// All returns every model for migration, ordered so referenced tables are
// created before their referrers.
func All() []any {
	return []any{
		&Protocol{},
		&Token{},
		&Market{},
		&InterestRate{},
		&RateSnapshot{},
		&FeedPrice{},
		&MarketAction{},
		&ChainEvent{},
		&Account{},
		&ActiveAccount{},
		&MarketHourlySnapshot{},
		&MarketDailySnapshot{},
		&UsageHourlySnapshot{},
		&UsageDailySnapshot{},
		&FinancialsSnapshot{},
		&BlockBuffer{},
	}
}
