package domain

import "github.com/shopspring/decimal"

// Velocity limit thresholds. Fixed by policy, not runtime-configurable.
const DailyCountLimit = 3

var (
	DailyAmountLimit  = decimal.NewFromInt(5000)
	WeeklyAmountLimit = decimal.NewFromInt(20000)
)

// PassesDailyAmount reports whether loading amount on top of what was already
// loaded today stays within the daily dollar cap.
func PassesDailyAmount(amount, loadedToday decimal.Decimal) bool {
	return amount.Add(loadedToday).LessThanOrEqual(DailyAmountLimit)
}

// PassesWeeklyAmount reports whether loading amount on top of what was already
// loaded this week stays within the weekly dollar cap.
func PassesWeeklyAmount(amount, loadedThisWeek decimal.Decimal) bool {
	return amount.Add(loadedThisWeek).LessThanOrEqual(WeeklyAmountLimit)
}

// PassesDailyCount reports whether one more accepted attempt stays within the
// daily attempt-count cap.
func PassesDailyCount(attemptsToday int) bool {
	return attemptsToday+1 <= DailyCountLimit
}

// PassesAllLimits combines the three velocity checks. Counters must already be
// rollover-adjusted for the attempt's timestamp.
func PassesAllLimits(amount, loadedToday, loadedThisWeek decimal.Decimal, attemptsToday int) bool {
	return PassesDailyAmount(amount, loadedToday) &&
		PassesWeeklyAmount(amount, loadedThisWeek) &&
		PassesDailyCount(attemptsToday)
}
